package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"gigbook/internal/infra/cache"
	"gigbook/internal/pkg/config"
	"gigbook/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewConflictCache,
	),
)

// NewConflictCache uses Redis when CACHE_REDIS_ADDR is set. An unreachable
// Redis at startup is only logged; the cache degrades to misses.
func NewConflictCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.ConflictCache {
	if !cfg.Cache.Enabled() {
		logger.Info("snapshot cache disabled")
		return cache.NewNoopCache()
	}

	client := cache.NewRedisClient(cfg.Cache)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				logger.Warn("redis unreachable, serving without cache",
					slog.String("addr", cfg.Cache.RedisAddr),
					slog.String("error", err.Error()))
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisConflictCache(client, cfg.Cache, logger)
}
