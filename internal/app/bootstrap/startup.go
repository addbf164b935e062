// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/vendaro/cartdeck/internal/app/system/seeding"
)

// Startup runs once after ConnectDB completes, but before the HTTP
// handler is built and requests are served.
//
// This is the place for one-time initialization that depends on having
// live backends and fully loaded configuration. For cartdeck that means
// loading the mock datasets into the stores so the panels have data to
// show from the first request.
//
// Returning a non-nil error will abort startup and prevent the server
// from starting. Returning nil signals that initialization succeeded.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	if err := seeding.SeedAll(deps.Stores, appCfg.SeedPassword, logger); err != nil {
		logger.Error("failed to seed mock data", zap.Error(err))
		return err
	}
	return nil
}
