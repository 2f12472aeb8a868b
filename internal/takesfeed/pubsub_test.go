package takesfeed

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcasterPublish(t *testing.T) {
	mr, client := testRedis(t)
	b := NewRedisBroadcaster(client)
	ctx := context.Background()

	sub := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = sub.Close() })

	ps := sub.Subscribe(ctx, ChannelTakesBroadcast)
	t.Cleanup(func() { _ = ps.Close() })
	_, err := ps.Receive(ctx) // espera a confirmação do subscribe
	require.NoError(t, err)

	payload := []byte(`{"game_id":"G1"}`)
	require.NoError(t, b.Publish(ctx, ChannelTakesBroadcast, payload))

	select {
	case msg := <-ps.Channel():
		assert.Equal(t, string(payload), msg.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("mensagem não chegou no canal de broadcast")
	}
}
