package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	sharedcache "github.com/radieske/nba-fanbot-poc/internal/shared/cache"
	"github.com/radieske/nba-fanbot-poc/internal/shared/config"
	sharedkafka "github.com/radieske/nba-fanbot-poc/internal/shared/kafka"
	"github.com/radieske/nba-fanbot-poc/internal/shared/logger"
	"github.com/radieske/nba-fanbot-poc/internal/shared/metrics"
	"github.com/radieske/nba-fanbot-poc/internal/takesfeed"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer redisClient.Close()

	// Consumer group do feed de takes
	brokers := strings.Split(cfg.KafkaBrokers, ",")
	reader := sharedkafka.NewReader(brokers, cfg.TopicTakePosted, "takes-feed")
	defer reader.Close()

	// Métricas Prometheus para monitoramento do processamento
	consumed := prometheus.NewCounter(prometheus.CounterOpts{Name: "takes_feed_messages_consumed_total", Help: "mensagens consumidas"})
	cached := prometheus.NewCounter(prometheus.CounterOpts{Name: "takes_feed_cache_sets_total", Help: "sets no cache"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "takes_feed_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(consumed, cached, errorsBy)

	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})

	proc := &takesfeed.Processor{
		Log:         log,
		Reader:      reader,
		Cache:       takesfeed.NewRedisCache(redisClient, 6*time.Hour),
		Broadcaster: takesfeed.NewRedisBroadcaster(redisClient),
		Channel:     cfg.RedisPubSubChannel,

		OnConsumed: func() { consumed.Inc() },
		OnCached:   func() { cached.Inc() },
		OnError:    func(stage string) { errorsBy.WithLabelValues(stage).Inc() },
	}

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("takes-feed-worker started")
	if err := proc.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("processor stopped with error", zap.Error(err))
	}
	log.Info("takes-feed-worker stopped")
}
