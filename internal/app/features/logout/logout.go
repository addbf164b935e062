// internal/app/features/logout/logout.go
// Package logout provides sign-out for the admin panels.
package logout

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vendaro/cartdeck/internal/app/system/auditlog"
	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/app/system/jsonutil"
)

// Handler handles sign-out requests.
type Handler struct {
	sessionMgr  *auth.SessionManager
	auditLogger *auditlog.Logger
	logger      *zap.Logger
}

// NewHandler creates a new logout handler.
func NewHandler(sessionMgr *auth.SessionManager, auditLogger *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		sessionMgr:  sessionMgr,
		auditLogger: auditLogger,
		logger:      logger,
	}
}

// handleLogout handles POST /api/logout. Signing out twice is fine;
// the second call is a no-op 204.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if u, ok := auth.CurrentUser(r); ok {
		h.auditLogger.Logout(r, u)
		h.logger.Info("admin signed out", zap.String("admin_id", u.ID))
	}
	h.sessionMgr.DestroySession(w, r)
	jsonutil.NoContent(w)
}

// Routes returns a router with the sign-out endpoint.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.handleLogout)
	return r
}
