// internal/app/features/authgoogle/authgoogle.go
// Package authgoogle provides Google OAuth sign-in for admin accounts.
// Google auth only signs in existing admins; it never creates accounts.
package authgoogle

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	adminstore "github.com/vendaro/cartdeck/internal/app/store/admins"
	"github.com/vendaro/cartdeck/internal/app/store/oauthstate"
	"github.com/vendaro/cartdeck/internal/app/system/auditlog"
	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Handler provides Google OAuth handlers.
type Handler struct {
	admins          *adminstore.Store
	sessionMgr      *auth.SessionManager
	auditLogger     *auditlog.Logger
	oauthStateStore *oauthstate.Store
	oauthConfig     *oauth2.Config
	logger          *zap.Logger
}

// NewHandler creates a new Google OAuth Handler.
func NewHandler(
	admins *adminstore.Store,
	sessionMgr *auth.SessionManager,
	auditLogger *auditlog.Logger,
	oauthStateStore *oauthstate.Store,
	clientID string,
	clientSecret string,
	baseURL string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		admins:          admins,
		sessionMgr:      sessionMgr,
		auditLogger:     auditLogger,
		oauthStateStore: oauthStateStore,
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  baseURL + "/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		logger: logger,
	}
}

// Routes returns a chi.Router with Google OAuth routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.startAuth)
	r.Get("/callback", h.handleCallback)
	return r
}

// startAuth initiates the Google OAuth flow.
func (h *Handler) startAuth(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	h.oauthStateStore.Create(state)

	url := h.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// handleCallback processes the Google OAuth callback.
func (h *Handler) handleCallback(w http.ResponseWriter, r *http.Request) {
	// Verify state before anything else.
	state := r.URL.Query().Get("state")
	if !h.oauthStateStore.Verify(state) {
		h.logger.Warn("invalid oauth state")
		http.Redirect(w, r, "/login?error=invalid_state", http.StatusSeeOther)
		return
	}

	if errMsg := r.URL.Query().Get("error"); errMsg != "" {
		h.logger.Warn("oauth error from google", zap.String("error", errMsg))
		http.Redirect(w, r, "/login?error="+errMsg, http.StatusSeeOther)
		return
	}

	code := r.URL.Query().Get("code")
	token, err := h.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		h.logger.Error("oauth code exchange failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=token_exchange_failed", http.StatusSeeOther)
		return
	}

	userInfo, err := h.getUserInfo(r.Context(), token)
	if err != nil {
		h.logger.Error("oauth userinfo fetch failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=userinfo_failed", http.StatusSeeOther)
		return
	}

	admin, found := h.admins.ByEmail(userInfo.Email)
	if !found {
		h.auditLogger.LoginFailed(r, userInfo.Email, "no admin account for Google identity")
		http.Redirect(w, r, "/login?error=user_not_found", http.StatusSeeOther)
		return
	}

	if admin.Status != models.StatusActive {
		h.auditLogger.LoginFailed(r, admin.Email, "account inactive")
		http.Redirect(w, r, "/login?error=account_disabled", http.StatusSeeOther)
		return
	}

	if err := h.sessionMgr.CreateSession(w, r, admin.ID, admin.Role, ""); err != nil {
		h.logger.Error("session create failed", zap.String("admin_id", admin.ID), zap.Error(err))
		http.Redirect(w, r, "/login?error=session_error", http.StatusSeeOther)
		return
	}

	now := time.Now()
	_, _ = h.admins.Update(admin.ID, adminstore.UpdateInput{LastLoginAt: &now})

	h.auditLogger.LoginSuccess(r, admin, "google")

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// GoogleUserInfo represents user info from Google.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// getUserInfo fetches user info from Google.
func (h *Handler) getUserInfo(ctx context.Context, token *oauth2.Token) (*GoogleUserInfo, error) {
	client := h.oauthConfig.Client(ctx, token)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var userInfo GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, err
	}

	return &userInfo, nil
}
