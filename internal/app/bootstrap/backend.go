// internal/app/bootstrap/backend.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

// ConnectBackend builds the store backend client. An unreachable
// backend is logged but does not abort startup; the health endpoint
// and per-request errors surface the outage.
func ConnectBackend(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	client := backend.New(appCfg.BackendBaseURL, logger)

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()

	if err := client.Ping(pingCtx); err != nil {
		logger.Warn("store backend unreachable at startup",
			zap.String("backend", appCfg.BackendBaseURL),
			zap.Error(err),
		)
	} else {
		logger.Info("store backend reachable", zap.String("backend", appCfg.BackendBaseURL))
	}

	return Deps{Backend: client}, nil
}

// EnsureSchema is a no-op; the console owns no storage.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	return nil
}
