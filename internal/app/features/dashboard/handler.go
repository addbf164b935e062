// internal/app/features/dashboard/handler.go
// Package dashboard provides the panel landing page API: headline
// counts across every collection plus the re-seed action that resets
// the mock data.
package dashboard

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/app/system/jsonutil"
	"github.com/vendaro/cartdeck/internal/app/system/listview"
	"github.com/vendaro/cartdeck/internal/app/system/seeding"
	"github.com/vendaro/cartdeck/internal/domain/models"

	adminstore "github.com/vendaro/cartdeck/internal/app/store/admins"
	auditstore "github.com/vendaro/cartdeck/internal/app/store/auditlogs"
	customerstore "github.com/vendaro/cartdeck/internal/app/store/customers"
	productstore "github.com/vendaro/cartdeck/internal/app/store/products"
	sitestore "github.com/vendaro/cartdeck/internal/app/store/sites"
)

// Handler handles dashboard API requests.
type Handler struct {
	stores      seeding.Stores
	devPassword string
	logger      *zap.Logger
}

// NewHandler creates a new dashboard handler. devPassword is the
// password reapplied to seeded admin accounts on refresh.
func NewHandler(stores seeding.Stores, devPassword string, logger *zap.Logger) *Handler {
	return &Handler{
		stores:      stores,
		devPassword: devPassword,
		logger:      logger,
	}
}

type overview struct {
	Admins      listview.Summary    `json:"admins"`
	Sites       listview.Summary    `json:"sites"`
	Products    listview.Summary    `json:"products"`
	Customers   listview.Summary    `json:"customers"`
	AuditLogs   listview.Summary    `json:"audit_logs"`
	Recent      []models.AuditEntry `json:"recent_activity"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// get handles GET /api/dashboard. Each collection's summary is the
// same one its panel shows above the table.
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.overview())
}

func (h *Handler) overview() overview {
	now := time.Now()

	recent := listview.Filter(h.stores.AuditLogs.All(), listview.NewCriteria(), auditstore.ListConfig().Filter)
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return overview{
		Admins:      listview.Summarize(h.stores.Admins.All(), adminstore.ListConfig().Counters, now),
		Sites:       listview.Summarize(h.stores.Sites.All(), sitestore.ListConfig().Counters, now),
		Products:    listview.Summarize(h.stores.Products.All(), productstore.ListConfig().Counters, now),
		Customers:   listview.Summarize(h.stores.Customers.All(), customerstore.ListConfig().Counters, now),
		AuditLogs:   listview.Summarize(h.stores.AuditLogs.All(), auditstore.ListConfig().Counters, now),
		Recent:      recent,
		GeneratedAt: now,
	}
}

// refresh handles POST /api/dashboard/refresh: it re-seeds every store
// with fresh mock data and returns the new overview. Id counters keep
// counting, so ids minted before the refresh never come back.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	if err := seeding.SeedAll(h.stores, h.devPassword, h.logger); err != nil {
		h.logger.Error("reseed failed", zap.Error(err))
		jsonutil.InternalError(w, "could not refresh mock data")
		return
	}

	if u, ok := auth.CurrentUser(r); ok {
		h.logger.Info("mock data refreshed", zap.String("by", u.ID))
	}

	jsonutil.OK(w, h.overview())
}
