package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/nba-fanbot-poc/internal/takesfeed"
	"github.com/radieske/nba-fanbot-poc/pkg/contracts/events"
)

func testAPI(t *testing.T) (*API, *takesfeed.RedisCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := takesfeed.NewRedisCache(client, time.Hour)
	api := &API{Cache: cache, Now: time.Now}
	return api, cache
}

func TestLatestTake(t *testing.T) {
	api, cache := testAPI(t)
	srv := httptest.NewServer(api.Router())
	t.Cleanup(srv.Close)

	want := events.TakePosted{
		TakeID:   "take-1",
		GameID:   "G1",
		Text:     "BAM JUST BRICKED 3 STRAIGHT 🤡",
		Events:   []string{"cold_streak"},
		PostedAt: time.Date(2026, 1, 10, 20, 30, 0, 0, time.UTC),
	}
	require.NoError(t, cache.SetLatest(context.Background(), want))

	res, err := http.Get(srv.URL + "/v1/games/G1/takes/latest")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got events.TakePosted
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, want, got)
}

func TestLatestTakeNotFound(t *testing.T) {
	api, _ := testAPI(t)
	srv := httptest.NewServer(api.Router())
	t.Cleanup(srv.Close)

	res, err := http.Get(srv.URL + "/v1/games/sem-take/takes/latest")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
