// internal/domain/models/settings.go
package models

import "time"

// Default platform settings.
const (
	DefaultPlatformName    = "Cartdeck"
	DefaultSupportEmail    = "support@cartdeck.dev"
	DefaultCurrency        = "USD"
	DefaultMaintenanceNote = ""
)

// PlatformSettings is the singleton configuration document edited in
// the settings panel.
type PlatformSettings struct {
	PlatformName     string     `json:"platform_name"`
	SupportEmail     string     `json:"support_email"`
	DefaultCurrency  string     `json:"default_currency"`
	SignupsEnabled   bool       `json:"signups_enabled"`
	MaintenanceMode  bool       `json:"maintenance_mode"`
	MaintenanceNote  string     `json:"maintenance_note"`
	AnnouncementHTML string     `json:"announcement_html"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
	UpdatedByID      string     `json:"updated_by_id,omitempty"`
	UpdatedByName    string     `json:"updated_by_name,omitempty"`
}

// DefaultPlatformSettings returns the settings used before anyone has
// saved the form.
func DefaultPlatformSettings() PlatformSettings {
	return PlatformSettings{
		PlatformName:    DefaultPlatformName,
		SupportEmail:    DefaultSupportEmail,
		DefaultCurrency: DefaultCurrency,
		SignupsEnabled:  true,
	}
}
