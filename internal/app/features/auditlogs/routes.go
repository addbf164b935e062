// internal/app/features/auditlogs/routes.go
package auditlogs

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendaro/cartdeck/internal/app/system/auth"
)

// Routes returns a router with the audit-log endpoints.
//
// When mounted at /api/auditlogs:
//   - GET /api/auditlogs            - list with filters, pagination, stats
//   - GET /api/auditlogs/export.csv - CSV of the filtered result set
//   - GET /api/auditlogs/{id}       - fetch one entry
//
// The audit trail is read-only over HTTP; entries are appended by the
// audit logger.
func Routes(h *Handler, sessionMgr *auth.SessionManager) http.Handler {
	r := chi.NewRouter()
	r.Use(sessionMgr.RequireSignedIn)

	r.Get("/", h.list)
	r.Get("/export.csv", h.exportCSV)
	r.Get("/{id}", h.get)

	return r
}
