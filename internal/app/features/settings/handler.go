// internal/app/features/settings/handler.go
// Package settings provides the platform settings API for the Super
// Admin panel's settings page.
package settings

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	settingsstore "github.com/vendaro/cartdeck/internal/app/store/settings"
	"github.com/vendaro/cartdeck/internal/app/system/auditlog"
	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/app/system/htmlsanitize"
	"github.com/vendaro/cartdeck/internal/app/system/jsonutil"
	"github.com/vendaro/cartdeck/internal/app/system/normalize"
)

// Handler handles platform settings API requests.
type Handler struct {
	store       *settingsstore.Store
	auditLogger *auditlog.Logger
	logger      *zap.Logger
}

// NewHandler creates a new settings handler.
func NewHandler(store *settingsstore.Store, auditLogger *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		store:       store,
		auditLogger: auditLogger,
		logger:      logger,
	}
}

// get handles GET /api/settings.
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.store.Get())
}

type updateRequest struct {
	PlatformName     string `json:"platform_name"`
	SupportEmail     string `json:"support_email"`
	DefaultCurrency  string `json:"default_currency"`
	SignupsEnabled   bool   `json:"signups_enabled"`
	MaintenanceMode  bool   `json:"maintenance_mode"`
	MaintenanceNote  string `json:"maintenance_note"`
	AnnouncementHTML string `json:"announcement_html"`
}

// update handles PUT /api/settings. The settings form always submits
// the whole document.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var in updateRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	// Currency codes are stored uppercase (ISO 4217).
	currency := strings.ToUpper(normalize.Status(in.DefaultCurrency))

	fields := map[string]string{}
	if normalize.Name(in.PlatformName) == "" {
		fields["platform_name"] = "required"
	}
	if normalize.Email(in.SupportEmail) == "" {
		fields["support_email"] = "required"
	}
	if len(currency) != 3 {
		fields["default_currency"] = "must be a 3-letter code"
	}
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	u, _ := auth.CurrentUser(r)
	input := settingsstore.UpdateInput{
		PlatformName:     normalize.Name(in.PlatformName),
		SupportEmail:     normalize.Email(in.SupportEmail),
		DefaultCurrency:  currency,
		SignupsEnabled:   in.SignupsEnabled,
		MaintenanceMode:  in.MaintenanceMode,
		MaintenanceNote:  normalize.Name(in.MaintenanceNote),
		AnnouncementHTML: htmlsanitize.Sanitize(in.AnnouncementHTML),
	}
	if u != nil {
		input.UpdatedByID = u.ID
		input.UpdatedByName = u.Name
	}

	saved := h.store.Save(input)
	h.auditLogger.SettingsUpdated(r, u)
	h.logger.Info("platform settings updated", zap.String("by", input.UpdatedByID))

	jsonutil.OK(w, saved)
}
