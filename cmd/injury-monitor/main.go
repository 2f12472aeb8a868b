package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/nba-fanbot-poc/internal/injury"
	"github.com/radieske/nba-fanbot-poc/internal/llm"
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

	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	processed := prometheus.NewCounter(prometheus.CounterOpts{Name: "injury_posts_processed_total", Help: "posts do insider processados"})
	reposted := prometheus.NewCounter(prometheus.CounterOpts{Name: "injury_posts_reposted_total", Help: "notícias de lesão repostadas"})
	prometheus.MustRegister(processed, reposted)

	metrics.StartMetricsServer(cfg.MetricsPort, pg.PingContext)

	detector := &injury.Detector{Log: log}
	if cfg.LLMBaseURL != "" {
		detector.LLM = llm.New(cfg.LLMBaseURL, cfg.LLMAPIKey)
	}

	social := twitter.New(cfg.SocialBaseURL, cfg.SocialToken)
	monitor := &injury.Monitor{
		Log:      log,
		Insider:  cfg.InsiderUsername,
		Social:   social,
		Reposter: social,
		Detector: detector,
		Repo:     injury.NewPostgres(pg),
		Now:      time.Now,

		OnProcessed: func() { processed.Inc() },
		OnReposted:  func() { reposted.Inc() },
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("injury-monitor started",
		zap.String("insider", cfg.InsiderUsername),
		zap.Duration("interval", cfg.InjuryInterval),
	)

	ticker := time.NewTicker(cfg.InjuryInterval)
	defer ticker.Stop()

	for {
		if err := monitor.Run(ctx); err != nil {
			log.Error("injury job failed, will retry on next tick", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			log.Info("injury-monitor stopped")
			return
		case <-ticker.C:
		}
	}
}
