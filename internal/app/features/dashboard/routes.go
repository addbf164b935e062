// internal/app/features/dashboard/routes.go
package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Routes returns a router with the dashboard endpoints.
//
// When mounted at /api/dashboard:
//   - GET  /api/dashboard         - overview stats across collections
//   - POST /api/dashboard/refresh - re-seed the mock datasets
func Routes(h *Handler, sessionMgr *auth.SessionManager) http.Handler {
	r := chi.NewRouter()
	r.Use(sessionMgr.RequireSignedIn)

	r.Get("/", h.get)

	// Re-seeding wipes every collection, so it is super admin only.
	r.Group(func(gr chi.Router) {
		gr.Use(sessionMgr.RequireRole(models.RoleSuperAdmin))
		gr.Post("/refresh", h.refresh)
	})

	return r
}
