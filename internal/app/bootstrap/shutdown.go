// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown is an optional hook invoked during WAFFLE's shutdown phase.
//
// This function is called after the HTTP server has stopped accepting new
// requests and existing requests have been drained (or the shutdown timeout
// has elapsed). It is your opportunity to gracefully clean up resources.
//
// Cartdeck holds everything in process memory and keeps no external
// connections, so there is nothing to flush or disconnect; the final
// store sizes are logged for diagnostics.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	logger.Info("shutting down",
		zap.Int("admins", len(deps.Stores.Admins.All())),
		zap.Int("sites", len(deps.Stores.Sites.All())),
		zap.Int("products", len(deps.Stores.Products.All())),
		zap.Int("customers", len(deps.Stores.Customers.All())),
		zap.Int("audit_logs", len(deps.Stores.AuditLogs.All())))
	return nil
}
