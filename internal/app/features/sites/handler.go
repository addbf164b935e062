// internal/app/features/sites/handler.go
// Package sites provides the site management API behind the Super
// Admin panel's sites table.
package sites

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	sitestore "github.com/vendaro/cartdeck/internal/app/store/sites"
	"github.com/vendaro/cartdeck/internal/app/system/auditlog"
	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/app/system/jsonutil"
	"github.com/vendaro/cartdeck/internal/app/system/listview"
	"github.com/vendaro/cartdeck/internal/app/system/normalize"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Handler handles site management API requests.
type Handler struct {
	store       *sitestore.Store
	auditLogger *auditlog.Logger
	logger      *zap.Logger
}

// NewHandler creates a new sites handler.
func NewHandler(store *sitestore.Store, auditLogger *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		store:       store,
		auditLogger: auditLogger,
		logger:      logger,
	}
}

// list handles GET /api/sites. Query parameters: search, status,
// industry, plan, date_from, date_to, page, page_size.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctrl := listview.NewController(h.store.Records(), sitestore.ListConfig())
	listview.ApplyQuery(ctrl, r)

	view := ctrl.View()
	jsonutil.OK(w, listResponse{
		Records: view.Records,
		Window:  view.Window,
		Stats:   view.Stats,
		// The industry distribution card wants shares, not counts.
		IndustryShare: industryShare(view.Stats),
	})
}

type listResponse struct {
	Records       []models.Site       `json:"records"`
	Window        listview.PageWindow `json:"window"`
	Stats         listview.Summary    `json:"stats"`
	IndustryShare map[string]float64  `json:"industry_share"`
}

// industryShare turns the per-industry counters into percentages of
// the total site count.
func industryShare(stats listview.Summary) map[string]float64 {
	total := stats["total"]
	share := make(map[string]float64, len(models.SiteIndustries()))
	for _, industry := range models.SiteIndustries() {
		share[industry] = listview.Percent(stats["industry_"+industry], total)
	}
	return share
}

// get handles GET /api/sites/{id}.
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	site, ok := h.store.Get(id)
	if !ok {
		jsonutil.NotFound(w, "site not found")
		return
	}
	jsonutil.OK(w, site)
}

type createRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	OwnerEmail  string `json:"owner_email"`
	Industry    string `json:"industry"`
	Plan        string `json:"plan"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

func (in *createRequest) validate() map[string]string {
	fields := map[string]string{}
	if normalize.Name(in.Name) == "" {
		fields["name"] = "required"
	}
	if normalize.Email(in.OwnerEmail) == "" {
		fields["owner_email"] = "required"
	}
	if !validIndustry(in.Industry) {
		fields["industry"] = "unknown industry"
	}
	return fields
}

func validIndustry(industry string) bool {
	industry = normalize.Status(industry)
	for _, known := range models.SiteIndustries() {
		if industry == known {
			return true
		}
	}
	return false
}

// create handles POST /api/sites.
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

	site := h.store.Create(sitestore.CreateInput{
		Name:        in.Name,
		Slug:        in.Slug,
		OwnerEmail:  in.OwnerEmail,
		Industry:    in.Industry,
		Plan:        in.Plan,
		Status:      in.Status,
		Description: in.Description,
	})

	u, _ := auth.CurrentUser(r)
	h.auditLogger.Created(r, u, models.AuditEntitySite, site.Name, site.ID)
	h.logger.Info("site created", zap.String("id", site.ID), zap.String("slug", site.Slug))

	jsonutil.Created(w, site)
}

type updateRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	OwnerEmail  *string `json:"owner_email"`
	Industry    *string `json:"industry"`
	Plan        *string `json:"plan"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
}

// update handles PUT /api/sites/{id}. Absent fields keep their values.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in updateRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if in.Industry != nil && !validIndustry(*in.Industry) {
		jsonutil.ValidationError(w, map[string]string{"industry": "unknown industry"})
		return
	}

	site, err := h.store.Update(id, sitestore.UpdateInput{
		Name:        in.Name,
		Slug:        in.Slug,
		OwnerEmail:  in.OwnerEmail,
		Industry:    in.Industry,
		Plan:        in.Plan,
		Status:      in.Status,
		Description: in.Description,
	})
	if err != nil {
		if errors.Is(err, listview.ErrNotFound) {
			jsonutil.NotFound(w, "site not found")
			return
		}
		h.logger.Error("site update failed", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "could not update site")
		return
	}

	u, _ := auth.CurrentUser(r)
	h.auditLogger.Updated(r, u, models.AuditEntitySite, site.Name, site.ID)

	jsonutil.OK(w, site)
}

// delete handles DELETE /api/sites/{id}.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	site, ok := h.store.Get(id)
	if !ok {
		jsonutil.NotFound(w, "site not found")
		return
	}
	if err := h.store.Delete(id); err != nil {
		jsonutil.NotFound(w, "site not found")
		return
	}

	u, _ := auth.CurrentUser(r)
	h.auditLogger.Deleted(r, u, models.AuditEntitySite, site.Name, site.ID)
	h.logger.Info("site deleted", zap.String("id", id))

	jsonutil.NoContent(w)
}
