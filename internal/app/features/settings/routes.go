// internal/app/features/settings/routes.go
package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Routes returns a router with the platform settings endpoints.
//
// When mounted at /api/settings:
//   - GET /api/settings - current settings
//   - PUT /api/settings - replace settings
func Routes(h *Handler, sessionMgr *auth.SessionManager) http.Handler {
	r := chi.NewRouter()
	r.Use(sessionMgr.RequireRole(models.RoleSuperAdmin))

	r.Get("/", h.get)
	r.Put("/", h.update)

	return r
}
