// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/krishivishwa/agriadmin/internal/app/resources"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
	"github.com/krishivishwa/agriadmin/internal/app/system/viewdata"
)

// Startup runs one-time application initialization after the backend
// client is built, but before the HTTP handler is constructed. It loads
// the shared templates, applies any timeout overrides from the
// environment, and seeds the view layer's site identity.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeout overrides applied from environment", zap.Int("count", n))
	}
	viewdata.Init(appCfg.SiteName)
	return nil
}
