// internal/app/features/health/health.go
package health

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vendaro/cartdeck/internal/app/system/seeding"
)

// Handler provides health check endpoints.
type Handler struct {
	stores  seeding.Stores
	started time.Time
	logger  *zap.Logger
}

// NewHandler creates a new health check Handler.
func NewHandler(stores seeding.Stores, logger *zap.Logger) *Handler {
	return &Handler{
		stores:  stores,
		started: time.Now(),
		logger:  logger,
	}
}

// Response represents the health check response.
type Response struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Seeded        bool   `json:"seeded"`
}

// Routes returns a chi.Router with health check routes mounted.
// Provides /health (full check), /health/ready, and /health/live.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Check)
	r.Get("/ready", h.Ready)
	r.Get("/live", h.Live)
	return r
}

// MountRootEndpoints adds probe endpoints directly on the root router,
// following the Kubernetes convention:
//   - /ready (or /readyz) - readiness probe
//   - /livez - liveness probe
func MountRootEndpoints(r chi.Router, h *Handler) {
	r.Get("/ready", h.Ready)
	r.Get("/readyz", h.Ready)
	r.Get("/livez", h.Live)
}

// Check reports overall service health. With in-memory stores the only
// meaningful signal is whether startup seeding populated them.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	resp := Response{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
		Seeded:        h.seeded(),
	}
	if !resp.Seeded {
		resp.Status = "degraded"
		h.logger.Warn("health check: stores are empty")
	}

	w.Header().Set("Content-Type", "application/json")
	if resp.Status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(resp)
}

// Ready checks if the service is ready to accept requests.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !h.seeded() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"not ready"}`))
		return
	}
	w.Write([]byte(`{"status":"ready"}`))
}

// Live checks if the service is alive.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"alive"}`))
}

func (h *Handler) seeded() bool {
	return len(h.stores.Admins.All()) > 0
}
