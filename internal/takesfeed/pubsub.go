package takesfeed

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// ChannelTakesBroadcast é o canal Redis Pub/Sub usado para fan-out das
// takes para o WebSocket do takes-service
const ChannelTakesBroadcast = "takes_broadcast"

// RedisBroadcaster publica mensagens num canal Redis Pub/Sub
type RedisBroadcaster struct{ r *redis.Client }

func NewRedisBroadcaster(r *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{r: r}
}

func (b *RedisBroadcaster) Publish(ctx context.Context, channel string, payload []byte) error {
	return b.r.Publish(ctx, channel, payload).Err()
}
