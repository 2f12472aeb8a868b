package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/nba-fanbot-poc/internal/fanbot/agent"
	"github.com/radieske/nba-fanbot-poc/internal/fanbot/classify"
	"github.com/radieske/nba-fanbot-poc/internal/fanbot/draft"
	"github.com/radieske/nba-fanbot-poc/internal/fanbot/gate"
	"github.com/radieske/nba-fanbot-poc/internal/fanbot/publisher"
	"github.com/radieske/nba-fanbot-poc/internal/fanbot/similarity"
	"github.com/radieske/nba-fanbot-poc/internal/fanbot/snapshot"
	"github.com/radieske/nba-fanbot-poc/internal/llm"
	"github.com/radieske/nba-fanbot-poc/internal/provider/nba"
	"github.com/radieske/nba-fanbot-poc/internal/shared/config"
	"github.com/radieske/nba-fanbot-poc/internal/shared/db"
	"github.com/radieske/nba-fanbot-poc/internal/shared/logger"
	"github.com/radieske/nba-fanbot-poc/internal/shared/metrics"
	"github.com/radieske/nba-fanbot-poc/internal/sink/twitter"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Persistência: Postgres por padrão, memória para rodar local sem banco
	var store snapshot.Store
	healthFn := func(ctx context.Context) error { return nil }
	if os.Getenv("STORE") == "memory" {
		store = snapshot.NewMemory()
		log.Warn("using in-memory snapshot store, history is lost on restart")
	} else {
		pg, err := db.ConnectPostgres(cfg.PostgresDSN)
		if err != nil {
			log.Fatal("postgres connect", zap.Error(err))
		}
		defer pg.Close()
		store = snapshot.NewPostgres(pg)
		healthFn = pg.PingContext
	}

	// Métricas Prometheus por estágio do ciclo
	cycles := prometheus.NewCounter(prometheus.CounterOpts{Name: "fanbot_cycles_total", Help: "ciclos executados"})
	posted := prometheus.NewCounter(prometheus.CounterOpts{Name: "fanbot_takes_posted_total", Help: "takes publicadas"})
	skips := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "fanbot_cycle_skips_total", Help: "ciclos sem post por motivo"}, []string{"reason"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "fanbot_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(cycles, posted, skips, errorsBy)

	metrics.StartMetricsServer(cfg.MetricsPort, healthFn)

	// Drafter: LLM quando configurado, templates como base e fallback
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	templates := draft.NewTemplateDrafter(rng)
	var drafter agent.Drafter = templates
	if cfg.LLMBaseURL != "" {
		drafter = &draft.LLMDrafter{
			Client:   llm.New(cfg.LLMBaseURL, cfg.LLMAPIKey),
			Fallback: templates,
			Log:      log,
		}
	}

	scorer := similarity.NewScorer(similarity.Vocabulary{
		Keywords: cfg.Keywords,
		Entities: cfg.Roster,
	})

	brokers := strings.Split(cfg.KafkaBrokers, ",")
	pub := publisher.NewKafkaPublisher(brokers, cfg.TopicTakePosted, log)
	defer pub.Close()

	bot := &agent.Agent{
		Log:      log,
		Store:    store,
		Provider: nba.New(cfg.StatsBaseURL, cfg.TeamID),
		Classifier: classify.New(classify.Thresholds{
			HotStreakPoints:  cfg.HotStreakPoints,
			ColdStreakMisses: cfg.ColdStreakMisses,
			TeamRunPoints:    cfg.TeamRunPoints,
		}),
		Drafter:   drafter,
		Gate:      gate.New(store, scorer, cfg.Cooldown, cfg.SimilarityThreshold),
		Sink:      twitter.New(cfg.SocialBaseURL, cfg.SocialToken),
		Publisher: pub,
		Now:       time.Now,

		OnCycle:  func() { cycles.Inc() },
		OnPosted: func() { posted.Inc() },
		OnSkip:   func(reason string) { skips.WithLabelValues(reason).Inc() },
		OnError:  func(stage string) { errorsBy.WithLabelValues(stage).Inc() },
	}

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("fanbot-worker started",
		zap.Duration("poll_min", cfg.PollMin),
		zap.Duration("poll_max", cfg.PollMax),
	)

	// Um ciclo por vez, intervalo sorteado entre min e max (cadência menos
	// previsível, como um torcedor de verdade)
	for {
		if err := bot.RunCycle(ctx); err != nil {
			log.Error("cycle failed, will retry on next tick", zap.Error(err))
		}

		wait := cfg.PollMin
		if cfg.PollMax > cfg.PollMin {
			wait += time.Duration(rng.Int63n(int64(cfg.PollMax - cfg.PollMin)))
		}

		select {
		case <-ctx.Done():
			log.Info("fanbot-worker stopped")
			return
		case <-time.After(wait):
		}
	}
}
