// internal/app/features/products/routes.go
package products

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Routes returns a router with the product catalog endpoints.
//
// When mounted at /api/products:
//   - GET    /api/products            - list with filters, pagination, stats
//   - POST   /api/products            - create
//   - GET    /api/products/export.csv - CSV of the filtered result set
//   - GET    /api/products/{id}       - fetch one
//   - PUT    /api/products/{id}       - partial update
//   - DELETE /api/products/{id}       - delete
//
// Site admins manage catalogs; super admins can step in.
func Routes(h *Handler, sessionMgr *auth.SessionManager) http.Handler {
	r := chi.NewRouter()
	r.Use(sessionMgr.RequireRole(models.RoleSuperAdmin, models.RoleSiteAdmin))

	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/export.csv", h.exportCSV)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)

	return r
}
