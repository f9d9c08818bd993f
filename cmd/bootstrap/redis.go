package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gas-booking/internal/infra/ratelimit"
	"gas-booking/internal/pkg/clock"
	"gas-booking/internal/pkg/config"
	"gas-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const redisPingTimeout = 5 * time.Second

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewRateLimiter,
	),
)

// NewRateLimiter uses Redis when enabled so every instance shares one ledger;
// otherwise limits are tracked per process.
func NewRateLimiter(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (shared.RateLimiter, error) {
	if !cfg.Redis.Enabled {
		slog.Info("rate limiter using process memory")
		return ratelimit.NewMemoryLimiter(clk), nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	slog.Info("rate limiter using redis", "addr", cfg.Redis.Addr)
	return ratelimit.NewRedisLimiter(rdb, clk, cfg.Redis.Prefix), nil
}
