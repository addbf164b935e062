// internal/app/features/auditlogs/handler.go
// Package auditlogs provides the audit-log panel API: the filterable
// activity table and its CSV export.
package auditlogs

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	auditstore "github.com/vendaro/cartdeck/internal/app/store/auditlogs"
	"github.com/vendaro/cartdeck/internal/app/system/auditlog"
	"github.com/vendaro/cartdeck/internal/app/system/jsonutil"
	"github.com/vendaro/cartdeck/internal/app/system/listview"
)

// Handler handles audit-log API requests.
type Handler struct {
	store       *auditstore.Store
	auditLogger *auditlog.Logger
	logger      *zap.Logger
}

// NewHandler creates a new auditlogs handler.
func NewHandler(store *auditstore.Store, auditLogger *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		store:       store,
		auditLogger: auditLogger,
		logger:      logger,
	}
}

// list handles GET /api/auditlogs. Query parameters: search, action,
// entity_type, status, date_from, date_to, page, page_size.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctrl := listview.NewController(h.store.Records(), auditstore.ListConfig())
	listview.ApplyQuery(ctrl, r)
	jsonutil.OK(w, ctrl.View())
}

// get handles GET /api/auditlogs/{id}.
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	entry, ok := h.store.Get(id)
	if !ok {
		jsonutil.NotFound(w, "audit entry not found")
		return
	}
	jsonutil.OK(w, entry)
}
