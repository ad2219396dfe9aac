package events

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisChannel = "fogon:content"

// Bridge fans change notifications out through redis pub/sub so every
// replica coalesces and pushes the same refreshes to its own clients.
type Bridge struct {
	hub    *Hub
	client *redis.Client
	log    *zap.Logger
	cancel context.CancelFunc
	done   chan struct{}
}

func NewBridge(hub *Hub, client *redis.Client, log *zap.Logger) *Bridge {
	return &Bridge{
		hub:    hub,
		client: client,
		log:    log.Named("events.bridge"),
	}
}

// Notify publishes to redis; the subscription loop feeds the local hub,
// so local and remote writers take the same path.
func (b *Bridge) Notify(table string) {
	if err := b.client.Publish(context.Background(), redisChannel, table).Err(); err != nil {
		b.log.Warn("publish failed, notifying locally", zap.Error(err))
		b.hub.Notify(table)
	}
}

func (b *Bridge) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.done = make(chan struct{})

	sub := b.client.Subscribe(ctx, redisChannel)
	go func() {
		defer close(b.done)
		defer sub.Close()

		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				table := strings.TrimSpace(msg.Payload)
				if table != "" {
					b.hub.Notify(table)
				}
			}
		}
	}()
}

func (b *Bridge) Stop() {
	if b.cancel != nil {
		b.cancel()
		<-b.done
	}
}
