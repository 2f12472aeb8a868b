package ws

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/radieske/nba-fanbot-poc/pkg/contracts/events"
)

// StartRedisSubscriber inicia uma goroutine que escuta o canal Redis
// Pub/Sub de takes e repassa cada take recebida para os clientes WebSocket
// inscritos no jogo, via Hub.
func StartRedisSubscriber(ctx context.Context, r *redis.Client, channel string, hub *Hub, log *zap.Logger) {
	sub := r.Subscribe(ctx, channel)
	ch := sub.Channel()
	go func() {
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close() // encerra a inscrição ao finalizar o contexto
				return
			case msg := <-ch:
				if msg == nil {
					continue
				}
				var take events.TakePosted
				if err := json.Unmarshal([]byte(msg.Payload), &take); err != nil {
					log.Warn("invalid pubsub payload", zap.Error(err))
					continue
				}
				hub.Broadcast(take, []byte(msg.Payload))
			}
		}
	}()
}
