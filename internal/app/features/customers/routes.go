// internal/app/features/customers/routes.go
package customers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Routes returns a router with the customer management endpoints.
//
// When mounted at /api/customers:
//   - GET    /api/customers            - list with filters, pagination, stats
//   - POST   /api/customers            - create
//   - GET    /api/customers/export.csv - CSV of the filtered result set
//   - GET    /api/customers/{id}       - fetch one
//   - PUT    /api/customers/{id}       - partial update
//   - DELETE /api/customers/{id}       - delete
//
// Support staff can read and update (block/unblock); deletion is for
// admin roles.
func Routes(h *Handler, sessionMgr *auth.SessionManager) http.Handler {
	r := chi.NewRouter()
	r.Use(sessionMgr.RequireSignedIn)

	r.Get("/", h.list)
	r.Get("/export.csv", h.exportCSV)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)

	r.Group(func(gr chi.Router) {
		gr.Use(sessionMgr.RequireRole(models.RoleSuperAdmin, models.RoleSiteAdmin))
		gr.Post("/", h.create)
		gr.Delete("/{id}", h.delete)
	})

	return r
}
