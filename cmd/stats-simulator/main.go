package main

import (
	"context"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/nba-fanbot-poc/internal/shared/config"
	"github.com/radieske/nba-fanbot-poc/internal/shared/logger"
	"github.com/radieske/nba-fanbot-poc/internal/shared/metrics"
	"github.com/radieske/nba-fanbot-poc/internal/simulator"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	scoreboardHits := prometheus.NewCounter(prometheus.CounterOpts{Name: "simulator_scoreboard_requests_total", Help: "consultas ao scoreboard"})
	boxScoreHits := prometheus.NewCounter(prometheus.CounterOpts{Name: "simulator_boxscore_requests_total", Help: "consultas ao box score"})
	prometheus.MustRegister(scoreboardHits, boxScoreHits)

	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error { return nil })

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	srv := &simulator.Server{
		Log:            log,
		Game:           simulator.NewGame(rng, cfg.TeamID, cfg.TeamTricode),
		ScoreboardHits: scoreboardHits,
		BoxScoreHits:   boxScoreHits,
	}

	httpSrv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: srv.Router(),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	log.Info("stats-simulator listening", zap.String("addr", httpSrv.Addr))
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("http server", zap.Error(err))
	}
	log.Info("stats-simulator stopped")
}
