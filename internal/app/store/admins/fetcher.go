// internal/app/store/admins/fetcher.go
package admins

import (
	"context"

	"go.uber.org/zap"

	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Fetcher implements auth.UserFetcher backed by the admin store.
// It is used by the session middleware to load fresh admin data on
// each request so role changes and deactivations apply immediately.
type Fetcher struct {
	store  *Store
	logger *zap.Logger
}

// NewFetcher creates a UserFetcher that reads from the given store.
func NewFetcher(store *Store, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		store:  store,
		logger: logger,
	}
}

// FetchUser retrieves an admin by ID and returns nil if the admin is
// not found or is inactive. This implements auth.UserFetcher.
func (f *Fetcher) FetchUser(ctx context.Context, adminID string) *auth.SessionUser {
	admin, ok := f.store.Get(adminID)
	if !ok {
		return nil
	}
	if admin.Status != models.StatusActive {
		return nil
	}

	return &auth.SessionUser{
		ID:    admin.ID,
		Name:  admin.FullName,
		Email: admin.Email,
		Role:  admin.Role,
	}
}
