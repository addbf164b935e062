// internal/app/features/products/handler.go
// Package products provides the product catalog API behind the Site
// Admin panel's products table.
package products

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	productstore "github.com/vendaro/cartdeck/internal/app/store/products"
	"github.com/vendaro/cartdeck/internal/app/system/auditlog"
	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/app/system/jsonutil"
	"github.com/vendaro/cartdeck/internal/app/system/listview"
	"github.com/vendaro/cartdeck/internal/app/system/normalize"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Handler handles product catalog API requests.
type Handler struct {
	store       *productstore.Store
	auditLogger *auditlog.Logger
	logger      *zap.Logger
}

// NewHandler creates a new products handler.
func NewHandler(store *productstore.Store, auditLogger *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		store:       store,
		auditLogger: auditLogger,
		logger:      logger,
	}
}

// list handles GET /api/products. Query parameters: search, status,
// category, site_id, date_from, date_to, page, page_size.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctrl := listview.NewController(h.store.Records(), productstore.ListConfig())
	listview.ApplyQuery(ctrl, r)
	jsonutil.OK(w, ctrl.View())
}

// get handles GET /api/products/{id}.
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product, ok := h.store.Get(id)
	if !ok {
		jsonutil.NotFound(w, "product not found")
		return
	}
	jsonutil.OK(w, product)
}

type createRequest struct {
	SiteID      string `json:"site_id"`
	Name        string `json:"name"`
	SKU         string `json:"sku"`
	Category    string `json:"category"`
	PriceCents  int64  `json:"price_cents"`
	Stock       int    `json:"stock"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

func (in *createRequest) validate() map[string]string {
	fields := map[string]string{}
	if normalize.Name(in.Name) == "" {
		fields["name"] = "required"
	}
	if normalize.QueryParam(in.SiteID) == "" {
		fields["site_id"] = "required"
	}
	if in.PriceCents < 0 {
		fields["price_cents"] = "must not be negative"
	}
	if in.Stock < 0 {
		fields["stock"] = "must not be negative"
	}
	return fields
}

// create handles POST /api/products.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var in createRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if fields := in.validate(); len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	product := h.store.Create(productstore.CreateInput{
		SiteID:      in.SiteID,
		Name:        in.Name,
		SKU:         in.SKU,
		Category:    in.Category,
		PriceCents:  in.PriceCents,
		Stock:       in.Stock,
		Status:      in.Status,
		Description: in.Description,
	})

	u, _ := auth.CurrentUser(r)
	h.auditLogger.Created(r, u, models.AuditEntityProduct, product.Name, product.ID)
	h.logger.Info("product created", zap.String("id", product.ID), zap.String("sku", product.SKU))

	jsonutil.Created(w, product)
}

type updateRequest struct {
	Name        *string `json:"name"`
	SKU         *string `json:"sku"`
	Category    *string `json:"category"`
	PriceCents  *int64  `json:"price_cents"`
	Stock       *int    `json:"stock"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
}

// update handles PUT /api/products/{id}. Absent fields keep their values.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in updateRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if in.PriceCents != nil && *in.PriceCents < 0 {
		jsonutil.ValidationError(w, map[string]string{"price_cents": "must not be negative"})
		return
	}
	if in.Stock != nil && *in.Stock < 0 {
		jsonutil.ValidationError(w, map[string]string{"stock": "must not be negative"})
		return
	}

	product, err := h.store.Update(id, productstore.UpdateInput{
		Name:        in.Name,
		SKU:         in.SKU,
		Category:    in.Category,
		PriceCents:  in.PriceCents,
		Stock:       in.Stock,
		Status:      in.Status,
		Description: in.Description,
	})
	if err != nil {
		if errors.Is(err, listview.ErrNotFound) {
			jsonutil.NotFound(w, "product not found")
			return
		}
		h.logger.Error("product update failed", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "could not update product")
		return
	}

	u, _ := auth.CurrentUser(r)
	h.auditLogger.Updated(r, u, models.AuditEntityProduct, product.Name, product.ID)

	jsonutil.OK(w, product)
}

// delete handles DELETE /api/products/{id}.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, ok := h.store.Get(id)
	if !ok {
		jsonutil.NotFound(w, "product not found")
		return
	}
	if err := h.store.Delete(id); err != nil {
		jsonutil.NotFound(w, "product not found")
		return
	}

	u, _ := auth.CurrentUser(r)
	h.auditLogger.Deleted(r, u, models.AuditEntityProduct, product.Name, product.ID)
	h.logger.Info("product deleted", zap.String("id", id))

	jsonutil.NoContent(w)
}
