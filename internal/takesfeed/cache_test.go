package takesfeed

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/nba-fanbot-poc/pkg/contracts/events"
)

func testRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func sampleTake(gameID string) events.TakePosted {
	return events.TakePosted{
		TakeID:     "take-1",
		GameID:     gameID,
		Text:       "BAM JUST BRICKED 3 STRAIGHT 🤡",
		ExternalID: "tw-123",
		Events:     []string{"cold_streak"},
		PostedAt:   time.Date(2026, 1, 10, 20, 30, 0, 0, time.UTC),
	}
}

func TestCacheSetAndGetLatest(t *testing.T) {
	_, client := testRedis(t)
	cache := NewRedisCache(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.SetLatest(ctx, sampleTake("G1")))

	got, ok, err := cache.GetLatest(ctx, "G1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleTake("G1"), got)
}

func TestCacheMiss(t *testing.T) {
	_, client := testRedis(t)
	cache := NewRedisCache(client, time.Hour)

	_, ok, err := cache.GetLatest(context.Background(), "nunca-visto")
	require.NoError(t, err, "miss não é erro")
	assert.False(t, ok)
}

func TestCacheOverwriteKeepsNewest(t *testing.T) {
	_, client := testRedis(t)
	cache := NewRedisCache(client, time.Hour)
	ctx := context.Background()

	first := sampleTake("G1")
	require.NoError(t, cache.SetLatest(ctx, first))

	second := first
	second.TakeID = "take-2"
	second.Text = "HERRO IS COOKING 🔥"
	require.NoError(t, cache.SetLatest(ctx, second))

	got, ok, err := cache.GetLatest(ctx, "G1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "take-2", got.TakeID)
}

func TestCacheIsPerGame(t *testing.T) {
	_, client := testRedis(t)
	cache := NewRedisCache(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.SetLatest(ctx, sampleTake("G1")))

	_, ok, err := cache.GetLatest(ctx, "G2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheTTLExpiry(t *testing.T) {
	mr, client := testRedis(t)
	cache := NewRedisCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetLatest(ctx, sampleTake("G1")))

	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.GetLatest(ctx, "G1")
	require.NoError(t, err)
	assert.False(t, ok)
}
