// internal/app/store/settings/settingsstore.go
package settingsstore

import (
	"sync"
	"time"

	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Store holds the singleton platform settings document.
type Store struct {
	mu       sync.RWMutex
	settings models.PlatformSettings
	saved    bool
}

// New creates a settings store seeded with the defaults.
func New() *Store {
	return &Store{settings: models.DefaultPlatformSettings()}
}

// Get returns the current settings.
func (s *Store) Get() models.PlatformSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateInput holds the fields for updating settings.
type UpdateInput struct {
	PlatformName     string
	SupportEmail     string
	DefaultCurrency  string
	SignupsEnabled   bool
	MaintenanceMode  bool
	MaintenanceNote  string
	AnnouncementHTML string
	UpdatedByID      string
	UpdatedByName    string
}

// Save replaces the settings document and stamps who changed it.
func (s *Store) Save(in UpdateInput) models.PlatformSettings {
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = models.PlatformSettings{
		PlatformName:     in.PlatformName,
		SupportEmail:     in.SupportEmail,
		DefaultCurrency:  in.DefaultCurrency,
		SignupsEnabled:   in.SignupsEnabled,
		MaintenanceMode:  in.MaintenanceMode,
		MaintenanceNote:  in.MaintenanceNote,
		AnnouncementHTML: in.AnnouncementHTML,
		UpdatedAt:        &now,
		UpdatedByID:      in.UpdatedByID,
		UpdatedByName:    in.UpdatedByName,
	}
	s.saved = true
	return s.settings
}

// Exists reports whether settings have been saved since startup.
func (s *Store) Exists() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saved
}

// Reset restores the defaults. Used by the dashboard re-seed action.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = models.DefaultPlatformSettings()
	s.saved = false
}
