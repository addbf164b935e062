// internal/app/features/session/session.go
// Package session exposes the current sign-in state to the panels'
// frontends, including the CSRF token they must echo on mutations.
package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"

	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/app/system/jsonutil"
)

// Handler handles session introspection requests.
type Handler struct{}

// NewHandler creates a new session handler.
func NewHandler() *Handler {
	return &Handler{}
}

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	AdminID       string `json:"admin_id,omitempty"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	Role          string `json:"role,omitempty"`
	CSRFToken     string `json:"csrf_token"`
}

// get handles GET /api/session. Anonymous callers still get a CSRF
// token so the login form can submit.
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	resp := sessionResponse{CSRFToken: csrf.Token(r)}
	if u, ok := auth.CurrentUser(r); ok {
		resp.Authenticated = true
		resp.AdminID = u.ID
		resp.Name = u.Name
		resp.Email = u.Email
		resp.Role = u.Role
	}
	jsonutil.OK(w, resp)
}

// Routes returns a router with the session endpoint.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.get)
	return r
}
