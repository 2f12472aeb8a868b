package takesfeed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/nba-fanbot-poc/pkg/contracts/events"
)

// Processor consome takes publicadas do Kafka, atualiza o cache da última
// take por jogo e repassa o evento para o canal de broadcast.
// Callbacks de métricas podem ser usadas para monitoramento de cada etapa.
type Processor struct {
	Log         *zap.Logger
	Reader      *kafka.Reader
	Cache       *RedisCache
	Broadcaster *RedisBroadcaster
	Channel     string

	OnConsumed func()       // métricas (counter++)
	OnCached   func()       // métricas
	OnError    func(string) // métricas por fase
}

// Run inicia o loop principal de consumo e processamento das mensagens Kafka
func (p *Processor) Run(ctx context.Context) error {
	for {
		m, err := p.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err() // encerra se o contexto for cancelado
			}
			p.Log.Warn("kafka read failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("read")
			}
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if p.OnConsumed != nil {
			p.OnConsumed()
		}

		var ev events.TakePosted
		if err := json.Unmarshal(m.Value, &ev); err != nil {
			p.Log.Warn("invalid message", zap.Error(err))
			if p.OnError != nil {
				p.OnError("decode")
			}
			continue
		}

		// Atualiza o cache da última take do jogo
		if err := p.Cache.SetLatest(ctx, ev); err != nil {
			p.Log.Warn("redis set failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("cache")
			}
			// não bloqueia o broadcast se falhar o cache
		} else if p.OnCached != nil {
			p.OnCached()
		}

		// Repassa para o WebSocket via Redis Pub/Sub
		pubCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
		if err := p.Broadcaster.Publish(pubCtx, p.Channel, m.Value); err != nil {
			p.Log.Warn("ws broadcast publish failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("broadcast")
			}
		}
		cancel()
	}
}
