package ratelimit

import (
	"context"

	"github.com/fogonlabs/fogon/internal/config"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var Module = fx.Module("ratelimit",
	fx.Provide(provideTokenBucket),
	fx.Provide(NewClaimSubmitLimiter),
)

func provideTokenBucket(lc fx.Lifecycle, cfg config.Config) *TokenBucket {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return NewTokenBucket(client)
}
