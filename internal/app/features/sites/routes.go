// internal/app/features/sites/routes.go
package sites

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Routes returns a router with the site management endpoints.
//
// When mounted at /api/sites:
//   - GET    /api/sites        - list with filters, pagination, stats
//   - POST   /api/sites        - create
//   - GET    /api/sites/{id}   - fetch one
//   - PUT    /api/sites/{id}   - partial update
//   - DELETE /api/sites/{id}   - delete
func Routes(h *Handler, sessionMgr *auth.SessionManager) http.Handler {
	r := chi.NewRouter()
	r.Use(sessionMgr.RequireRole(models.RoleSuperAdmin))

	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)

	return r
}
