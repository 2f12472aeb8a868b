package takesfeed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/nba-fanbot-poc/pkg/contracts/events"
)

// RedisCache guarda a última take publicada por jogo.
// Client: cliente Redis
// TTL: tempo de expiração dos registros
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisCache cria uma instância de cache Redis com TTL configurável
func NewRedisCache(c *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: c, TTL: ttl}
}

// key gera a chave Redis da última take de um jogo
func key(gameID string) string { return "takes:latest:" + gameID }

// SetLatest armazena a take mais recente de um jogo com o TTL definido
func (r *RedisCache) SetLatest(ctx context.Context, e events.TakePosted) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, key(e.GameID), b, r.TTL).Err()
}

// GetLatest lê a take mais recente de um jogo; segundo retorno false em cache miss
func (r *RedisCache) GetLatest(ctx context.Context, gameID string) (events.TakePosted, bool, error) {
	b, err := r.Client.Get(ctx, key(gameID)).Bytes()
	if err == redis.Nil {
		return events.TakePosted{}, false, nil
	}
	if err != nil {
		return events.TakePosted{}, false, err
	}
	var e events.TakePosted
	if err := json.Unmarshal(b, &e); err != nil {
		return events.TakePosted{}, false, err
	}
	return e, true, nil
}
