// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	adminsfeature "github.com/vendaro/cartdeck/internal/app/features/admins"
	auditlogsfeature "github.com/vendaro/cartdeck/internal/app/features/auditlogs"
	authgooglefeature "github.com/vendaro/cartdeck/internal/app/features/authgoogle"
	customersfeature "github.com/vendaro/cartdeck/internal/app/features/customers"
	dashboardfeature "github.com/vendaro/cartdeck/internal/app/features/dashboard"
	healthfeature "github.com/vendaro/cartdeck/internal/app/features/health"
	loginfeature "github.com/vendaro/cartdeck/internal/app/features/login"
	logoutfeature "github.com/vendaro/cartdeck/internal/app/features/logout"
	productsfeature "github.com/vendaro/cartdeck/internal/app/features/products"
	sessionfeature "github.com/vendaro/cartdeck/internal/app/features/session"
	settingsfeature "github.com/vendaro/cartdeck/internal/app/features/settings"
	sitesfeature "github.com/vendaro/cartdeck/internal/app/features/sites"
	adminstore "github.com/vendaro/cartdeck/internal/app/store/admins"
	"github.com/vendaro/cartdeck/internal/app/store/oauthstate"
	"github.com/vendaro/cartdeck/internal/app/store/ratelimit"
	"github.com/vendaro/cartdeck/internal/app/system/auditlog"
	"github.com/vendaro/cartdeck/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend setup, and any Startup
// hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the in-memory stores bundled in Deps
//   - logger: the fully configured zap.Logger for this app
//
// This function should:
//  1. Create a router (chi, standard mux, etc.)
//  2. Mount feature routers for different parts of the application
//  3. Add any additional middleware needed for specific routes
//  4. Return the configured router as an http.Handler
//
// Cartdeck serves a JSON API consumed by the SPA admin panels. Every
// route under /api uses session auth plus CSRF; the panels fetch the
// CSRF token from GET /api/session and echo it on mutations. The Google
// OAuth flow under /auth/google is browser-redirect based and is
// protected by its own single-use state tokens instead.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Set up the UserFetcher so LoadSessionUser fetches fresh admin data
	// on each request. This ensures role changes and deactivated accounts
	// take effect immediately.
	sessionMgr.SetUserFetcher(adminstore.NewFetcher(deps.Stores.Admins, logger))

	// Create the audit logger for security and admin event tracking.
	auditConfig := auditlog.Config{
		Auth:  appCfg.AuditLogAuth,
		Admin: appCfg.AuditLogAdmin,
	}
	auditLogger := auditlog.New(deps.Stores.AuditLogs, logger, auditConfig)

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────────

	// Request id first so every later log line can carry it.
	r.Use(chimw.RequestID)

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Session middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// CSRF protection middleware with path-based exemption for the OAuth
	// redirect flow. Cookie name is "cartdeck_csrf" to avoid collisions
	// with other services on the same domain.
	csrfOpts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("cartdeck_csrf"),
		csrf.FieldName("csrf_token"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"CSRF token invalid or missing"}`))
		})),
	}
	// In dev mode, trust localhost origins for CSRF validation.
	trustedOrigins := []string{
		"localhost:8080",
		"localhost:3000",
		"127.0.0.1:8080",
		"127.0.0.1:3000",
	}
	if !secure {
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins(trustedOrigins))
	}
	if appCfg.SessionDomain != "" {
		csrfOpts = append(csrfOpts, csrf.Domain(appCfg.SessionDomain))
	}
	csrfProtect := csrf.Protect([]byte(appCfg.CSRFKey), csrfOpts...)

	// Wrap CSRF middleware to skip the Google OAuth redirect flow; the
	// single-use state token issued at the start of the flow protects it.
	csrfMiddleware := func(next http.Handler) http.Handler {
		csrfHandler := csrfProtect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if strings.HasPrefix(req.URL.Path, "/auth/google") {
				next.ServeHTTP(w, req)
				return
			}
			csrfHandler.ServeHTTP(w, req)
		})
	}
	r.Use(csrfMiddleware)

	// ─────────────────────────────────────────────────────────────────────────────
	// Routes
	// ─────────────────────────────────────────────────────────────────────────────

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Stores, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// Session introspection (also issues CSRF tokens to anonymous callers)
	r.Mount("/api/session", sessionfeature.Routes(sessionfeature.NewHandler()))

	// Rate limiting for login attempts (nil if disabled)
	var rateLimitStore *ratelimit.Store
	if appCfg.RateLimitEnabled {
		rateLimitStore = ratelimit.New(
			appCfg.RateLimitLoginAttempts,
			appCfg.RateLimitLoginWindow,
			appCfg.RateLimitLoginLockout,
		)
	}

	// Authentication
	loginHandler := loginfeature.NewHandler(
		deps.Stores.Admins,
		sessionMgr,
		auditLogger,
		rateLimitStore,
		logger,
	)
	r.Mount("/api/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, auditLogger, logger)
	r.Mount("/api/logout", logoutfeature.Routes(logoutHandler))

	// Google OAuth (only mount if configured)
	if appCfg.GoogleClientID != "" && appCfg.GoogleClientSecret != "" {
		oauthStateStore := oauthstate.New()
		googleHandler := authgooglefeature.NewHandler(
			deps.Stores.Admins,
			sessionMgr,
			auditLogger,
			oauthStateStore,
			appCfg.GoogleClientID,
			appCfg.GoogleClientSecret,
			appCfg.BaseURL,
			logger,
		)
		r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))
		logger.Info("Google OAuth enabled", zap.String("redirect_url", appCfg.BaseURL+"/auth/google/callback"))
	}

	// Admin account management (super admin only)
	adminsHandler := adminsfeature.NewHandler(deps.Stores.Admins, auditLogger, logger)
	r.Mount("/api/admins", adminsfeature.Routes(adminsHandler, sessionMgr))

	// Merchant site management (super admin only)
	sitesHandler := sitesfeature.NewHandler(deps.Stores.Sites, auditLogger, logger)
	r.Mount("/api/sites", sitesfeature.Routes(sitesHandler, sessionMgr))

	// Product catalog
	productsHandler := productsfeature.NewHandler(deps.Stores.Products, auditLogger, logger)
	r.Mount("/api/products", productsfeature.Routes(productsHandler, sessionMgr))

	// Customer accounts
	customersHandler := customersfeature.NewHandler(deps.Stores.Customers, auditLogger, logger)
	r.Mount("/api/customers", customersfeature.Routes(customersHandler, sessionMgr))

	// Audit log browsing and CSV export
	auditLogsHandler := auditlogsfeature.NewHandler(deps.Stores.AuditLogs, auditLogger, logger)
	r.Mount("/api/auditlogs", auditlogsfeature.Routes(auditLogsHandler, sessionMgr))

	// Platform settings (super admin only)
	settingsHandler := settingsfeature.NewHandler(deps.Stores.Settings, auditLogger, logger)
	r.Mount("/api/settings", settingsfeature.Routes(settingsHandler, sessionMgr))

	// Dashboard overview and mock data refresh
	dashboardHandler := dashboardfeature.NewHandler(deps.Stores, appCfg.SeedPassword, logger)
	r.Mount("/api/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	return r, nil
}
