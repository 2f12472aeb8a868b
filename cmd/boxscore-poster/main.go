package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/nba-fanbot-poc/internal/boxscore"
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

	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	posted := prometheus.NewCounter(prometheus.CounterOpts{Name: "boxscore_summaries_posted_total", Help: "resumos publicados"})
	runs := prometheus.NewCounter(prometheus.CounterOpts{Name: "boxscore_runs_total", Help: "execuções do job"})
	prometheus.MustRegister(posted, runs)

	metrics.StartMetricsServer(cfg.MetricsPort, pg.PingContext)

	poster := &boxscore.Poster{
		Log:      log,
		Team:     cfg.TeamTricode,
		Provider: nba.New(cfg.StatsBaseURL, cfg.TeamID),
		Repo:     boxscore.NewPostgres(pg),
		Sink:     twitter.New(cfg.SocialBaseURL, cfg.SocialToken),
		Now:      time.Now,
		OnPosted: func() { posted.Inc() },
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("boxscore-poster started", zap.Duration("interval", cfg.BoxScoreInterval))

	ticker := time.NewTicker(cfg.BoxScoreInterval)
	defer ticker.Stop()

	// roda imediatamente na subida, depois a cada intervalo
	for {
		runs.Inc()
		if err := poster.Run(ctx); err != nil {
			log.Error("boxscore job failed, will retry on next tick", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			log.Info("boxscore-poster stopped")
			return
		case <-ticker.C:
		}
	}
}
