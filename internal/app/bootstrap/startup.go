// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"sync"
	"time"

	aboutstore "github.com/dalemusser/coophub/internal/app/store/about"
	"github.com/dalemusser/coophub/internal/app/store/audit"
	"github.com/dalemusser/coophub/internal/app/system/timeouts"
	"github.com/dalemusser/coophub/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// background is cancelled on Shutdown and stops the rate limiter sweepers.
var background struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

// retention prunes audit events; nil when retention is disabled.
var retention *workers.AuditRetention

func backgroundCtx() context.Context {
	background.mu.Lock()
	defer background.mu.Unlock()
	if background.ctx == nil {
		background.ctx, background.cancel = context.WithCancel(context.Background())
	}
	return background.ctx
}

func stopBackground() {
	background.mu.Lock()
	defer background.mu.Unlock()
	if background.cancel != nil {
		background.cancel()
		background.ctx, background.cancel = nil, nil
	}
	if retention != nil {
		retention.Stop()
		retention = nil
	}
}

// Startup applies timeout overrides from the environment, makes sure the
// About page singleton exists before the first request and starts the
// audit retention worker.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv("COOPHUB"); n > 0 {
		c := timeouts.Current()
		logger.Info("timeouts overridden from environment",
			zap.Int("overrides", n),
			zap.Duration("ping", c.Ping),
			zap.Duration("short", c.Short),
			zap.Duration("medium", c.Medium),
			zap.Duration("long", c.Long))
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()
	if _, err := aboutstore.New(deps.MongoDatabase).GetOrCreate(ctx); err != nil {
		logger.Error("about page bootstrap failed", zap.Error(err))
		return err
	}

	if appCfg.AuditRetention > 0 {
		background.mu.Lock()
		retention = workers.NewAuditRetention(audit.New(deps.MongoDatabase), logger, time.Hour, appCfg.AuditRetention)
		retention.Start()
		background.mu.Unlock()
	}
	return nil
}
