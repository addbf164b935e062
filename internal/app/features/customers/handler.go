// internal/app/features/customers/handler.go
// Package customers provides the customer management API behind the
// Site Admin panel's customers table.
package customers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	customerstore "github.com/vendaro/cartdeck/internal/app/store/customers"
	"github.com/vendaro/cartdeck/internal/app/system/auditlog"
	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/app/system/jsonutil"
	"github.com/vendaro/cartdeck/internal/app/system/listview"
	"github.com/vendaro/cartdeck/internal/app/system/normalize"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Handler handles customer management API requests.
type Handler struct {
	store       *customerstore.Store
	auditLogger *auditlog.Logger
	logger      *zap.Logger
}

// NewHandler creates a new customers handler.
func NewHandler(store *customerstore.Store, auditLogger *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		store:       store,
		auditLogger: auditLogger,
		logger:      logger,
	}
}

// list handles GET /api/customers. Query parameters: search, status,
// country, site_id, date_from, date_to, page, page_size.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctrl := listview.NewController(h.store.Records(), customerstore.ListConfig())
	listview.ApplyQuery(ctrl, r)
	jsonutil.OK(w, ctrl.View())
}

// get handles GET /api/customers/{id}.
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	customer, ok := h.store.Get(id)
	if !ok {
		jsonutil.NotFound(w, "customer not found")
		return
	}
	jsonutil.OK(w, customer)
}

type createRequest struct {
	SiteID   string `json:"site_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Country  string `json:"country"`
	Status   string `json:"status"`
}

func (in *createRequest) validate() map[string]string {
	fields := map[string]string{}
	if normalize.Name(in.FullName) == "" {
		fields["full_name"] = "required"
	}
	if normalize.Email(in.Email) == "" {
		fields["email"] = "required"
	}
	if normalize.QueryParam(in.SiteID) == "" {
		fields["site_id"] = "required"
	}
	return fields
}

// create handles POST /api/customers.
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

	customer := h.store.Create(customerstore.CreateInput{
		SiteID:   in.SiteID,
		FullName: in.FullName,
		Email:    in.Email,
		Country:  in.Country,
		Status:   in.Status,
	})

	u, _ := auth.CurrentUser(r)
	h.auditLogger.Created(r, u, models.AuditEntityCustomer, customer.FullName, customer.ID)
	h.logger.Info("customer created", zap.String("id", customer.ID))

	jsonutil.Created(w, customer)
}

type updateRequest struct {
	FullName        *string `json:"full_name"`
	Email           *string `json:"email"`
	Country         *string `json:"country"`
	TotalOrders     *int    `json:"total_orders"`
	TotalSpentCents *int64  `json:"total_spent_cents"`
	Status          *string `json:"status"`
}

// update handles PUT /api/customers/{id}. Absent fields keep their values.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in updateRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	customer, err := h.store.Update(id, customerstore.UpdateInput{
		FullName:        in.FullName,
		Email:           in.Email,
		Country:         in.Country,
		TotalOrders:     in.TotalOrders,
		TotalSpentCents: in.TotalSpentCents,
		Status:          in.Status,
	})
	if err != nil {
		if errors.Is(err, listview.ErrNotFound) {
			jsonutil.NotFound(w, "customer not found")
			return
		}
		h.logger.Error("customer update failed", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "could not update customer")
		return
	}

	u, _ := auth.CurrentUser(r)
	h.auditLogger.Updated(r, u, models.AuditEntityCustomer, customer.FullName, customer.ID)

	jsonutil.OK(w, customer)
}

// delete handles DELETE /api/customers/{id}.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	customer, ok := h.store.Get(id)
	if !ok {
		jsonutil.NotFound(w, "customer not found")
		return
	}
	if err := h.store.Delete(id); err != nil {
		jsonutil.NotFound(w, "customer not found")
		return
	}

	u, _ := auth.CurrentUser(r)
	h.auditLogger.Deleted(r, u, models.AuditEntityCustomer, customer.FullName, customer.ID)
	h.logger.Info("customer deleted", zap.String("id", id))

	jsonutil.NoContent(w)
}
