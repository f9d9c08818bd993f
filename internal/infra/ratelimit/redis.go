package ratelimit

import (
	"context"
	"fmt"
	"time"

	"gas-booking/internal/pkg/clock"

	"github.com/redis/go-redis/v9"
)

// tryProceedScript stores the last permitted call time in milliseconds and
// lets the key expire once the interval has passed.
var tryProceedScript = redis.NewScript(`
	local key = KEYS[1]
	local now_ms = tonumber(ARGV[1])
	local interval_ms = tonumber(ARGV[2])

	local last = redis.call('GET', key)
	if last and (now_ms - tonumber(last)) < interval_ms then
		return 0
	end

	redis.call('SET', key, now_ms, 'PX', interval_ms)
	return 1
`)

type RedisLimiter struct {
	rdb    redis.Scripter
	clock  clock.Clock
	prefix string
}

func NewRedisLimiter(rdb redis.Scripter, clk clock.Clock, prefix string) *RedisLimiter {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &RedisLimiter{rdb: rdb, clock: clk, prefix: prefix}
}

func (l *RedisLimiter) TryProceed(ctx context.Context, key string, minInterval time.Duration) (bool, error) {
	if minInterval <= 0 {
		return true, nil
	}
	args := []any{
		l.clock.Now().UnixMilli(),
		minInterval.Milliseconds(),
	}
	allowed, err := tryProceedScript.Run(ctx, l.rdb, []string{l.prefix + ":" + key}, args...).Int()
	if err != nil {
		return false, fmt.Errorf("rate limit script: %w", err)
	}
	return allowed == 1, nil
}
