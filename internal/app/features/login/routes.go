// internal/app/features/login/routes.go
package login

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the sign-in endpoint.
//
// When mounted at /api/login:
//   - POST /api/login - password sign-in
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.handleLogin)
	return r
}
