package events

import (
	"context"

	"github.com/fogonlabs/fogon/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("events",
	fx.Provide(NewHub),
	fx.Provide(provideNotifier),
)

// provideNotifier wires the redis bridge in front of the hub when a
// redis address is configured; otherwise mutations notify in-process.
func provideNotifier(lc fx.Lifecycle, cfg config.Config, hub *Hub, log *zap.Logger) Notifier {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			hub.Close()
			return nil
		},
	})

	if cfg.RedisAddr == "" {
		return hub
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	bridge := NewBridge(hub, client, log)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return err
			}
			bridge.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			bridge.Stop()
			return client.Close()
		},
	})
	return bridge
}
