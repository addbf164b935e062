// internal/app/features/login/handler.go
// Package login provides password sign-in for the admin panels.
package login

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	adminstore "github.com/vendaro/cartdeck/internal/app/store/admins"
	"github.com/vendaro/cartdeck/internal/app/store/ratelimit"
	"github.com/vendaro/cartdeck/internal/app/system/auditlog"
	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/app/system/authutil"
	"github.com/vendaro/cartdeck/internal/app/system/jsonutil"
	"github.com/vendaro/cartdeck/internal/app/system/normalize"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Handler handles sign-in requests.
type Handler struct {
	admins         *adminstore.Store
	sessionMgr     *auth.SessionManager
	auditLogger    *auditlog.Logger
	rateLimitStore *ratelimit.Store // nil if rate limiting disabled
	logger         *zap.Logger
}

// NewHandler creates a new login handler.
func NewHandler(
	admins *adminstore.Store,
	sessionMgr *auth.SessionManager,
	auditLogger *auditlog.Logger,
	rateLimitStore *ratelimit.Store,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		admins:         admins,
		sessionMgr:     sessionMgr,
		auditLogger:    auditLogger,
		rateLimitStore: rateLimitStore,
		logger:         logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Admin models.Admin `json:"admin"`
}

// handleLogin handles POST /api/login.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	email := normalize.Email(in.Email)
	if email == "" || in.Password == "" {
		jsonutil.BadRequest(w, "email and password are required")
		return
	}

	// Rate limit before touching credentials.
	if h.rateLimitStore != nil {
		allowed, _, lockedUntil := h.rateLimitStore.CheckAllowed(email)
		if !allowed {
			h.auditLogger.LoginFailed(r, email, "rate limited")
			msg := "too many failed attempts, try again later"
			if lockedUntil != nil {
				msg = "too many failed attempts, locked until " + lockedUntil.Format(time.RFC3339)
			}
			jsonutil.TooManyRequests(w, msg)
			return
		}
	}

	admin, found := h.admins.ByEmail(email)
	if !found {
		h.recordFailure(r, email, "unknown email")
		jsonutil.Unauthorized(w, "invalid email or password")
		return
	}

	if admin.Status != models.StatusActive {
		h.auditLogger.LoginFailed(r, email, "account inactive")
		jsonutil.Forbidden(w, "account is inactive")
		return
	}

	if !authutil.CheckPassword(in.Password, admin.PasswordHash) {
		h.recordFailure(r, email, "wrong password")
		jsonutil.Unauthorized(w, "invalid email or password")
		return
	}

	if h.rateLimitStore != nil {
		h.rateLimitStore.ClearOnSuccess(email)
	}

	if err := h.sessionMgr.CreateSession(w, r, admin.ID, admin.Role, ""); err != nil {
		h.logger.Error("session create failed", zap.String("admin_id", admin.ID), zap.Error(err))
		jsonutil.InternalError(w, "could not create session")
		return
	}

	now := time.Now()
	if updated, err := h.admins.Update(admin.ID, adminstore.UpdateInput{LastLoginAt: &now}); err == nil {
		admin = updated
	}

	h.auditLogger.LoginSuccess(r, admin, "password")
	h.logger.Info("admin signed in", zap.String("admin_id", admin.ID), zap.String("role", admin.Role))

	jsonutil.OK(w, loginResponse{Admin: admin})
}

// recordFailure logs and counts a failed attempt. Lockout state changes
// get their own audit entry so the trail shows when an account locked.
func (h *Handler) recordFailure(r *http.Request, email, reason string) {
	h.auditLogger.LoginFailed(r, email, reason)
	if h.rateLimitStore == nil {
		return
	}
	if lockedOut, _ := h.rateLimitStore.RecordFailure(email); lockedOut {
		h.auditLogger.LoginFailed(r, email, "locked out after repeated failures")
		h.logger.Warn("login lockout triggered", zap.String("email", email))
	}
}
