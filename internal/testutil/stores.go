// internal/testutil/stores.go
package testutil

import (
	"testing"
	"time"

	"go.uber.org/zap"

	adminstore "github.com/vendaro/cartdeck/internal/app/store/admins"
	auditstore "github.com/vendaro/cartdeck/internal/app/store/auditlogs"
	customerstore "github.com/vendaro/cartdeck/internal/app/store/customers"
	productstore "github.com/vendaro/cartdeck/internal/app/store/products"
	settingsstore "github.com/vendaro/cartdeck/internal/app/store/settings"
	sitestore "github.com/vendaro/cartdeck/internal/app/store/sites"
	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/app/system/seeding"
)

// SeedPassword is the password shared by all seeded admin accounts in
// tests. Hashing is the slow part of seeding, so tests use a short one.
const SeedPassword = "cartdeck-dev"

// EmptyStores returns a fresh, unseeded set of stores.
func EmptyStores() seeding.Stores {
	return seeding.Stores{
		Admins:    adminstore.New(),
		Sites:     sitestore.New(),
		Products:  productstore.New(),
		Customers: customerstore.New(),
		AuditLogs: auditstore.New(),
		Settings:  settingsstore.New(),
	}
}

// SeededStores returns stores loaded with the shipped mock datasets.
func SeededStores(t *testing.T) seeding.Stores {
	t.Helper()
	s := EmptyStores()
	if err := seeding.SeedAll(s, SeedPassword, zap.NewNop()); err != nil {
		t.Fatalf("seed stores: %v", err)
	}
	return s
}

// NewSessionManager returns a session manager suitable for handler
// tests. The key is test-only; secure cookies are off.
func NewSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager("test-session-key-0123456789abcdef", "test-session", "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	return sm
}
