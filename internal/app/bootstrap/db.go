// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	adminstore "github.com/vendaro/cartdeck/internal/app/store/admins"
	auditstore "github.com/vendaro/cartdeck/internal/app/store/auditlogs"
	customerstore "github.com/vendaro/cartdeck/internal/app/store/customers"
	productstore "github.com/vendaro/cartdeck/internal/app/store/products"
	settingsstore "github.com/vendaro/cartdeck/internal/app/store/settings"
	sitestore "github.com/vendaro/cartdeck/internal/app/store/sites"
	"github.com/vendaro/cartdeck/internal/app/system/seeding"
)

// ConnectDB builds the backend this app serves from.
//
// WAFFLE calls this after configuration is loaded but before Startup.
// In most WAFFLE apps this is where database and cache connections are
// established; cartdeck's authoritative data lives in process memory, so
// the only work here is constructing the empty stores. Seeding them with
// the mock datasets happens in Startup.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	deps := Deps{
		Stores: seeding.Stores{
			Admins:    adminstore.New(),
			Sites:     sitestore.New(),
			Products:  productstore.New(),
			Customers: customerstore.New(),
			AuditLogs: auditstore.New(),
			Settings:  settingsstore.New(),
		},
	}

	logger.Info("initialized in-memory stores")
	return deps, nil
}
