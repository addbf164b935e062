// internal/app/features/admins/routes.go
package admins

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Routes returns a router with the admin management endpoints.
//
// When mounted at /api/admins:
//   - GET    /api/admins        - list with filters, pagination, stats
//   - POST   /api/admins        - create
//   - GET    /api/admins/{id}   - fetch one
//   - PUT    /api/admins/{id}   - partial update
//   - DELETE /api/admins/{id}   - delete
//
// Only super admins manage the team.
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
