package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kiryu-dev/gomoku/internal/config"
	"github.com/kiryu-dev/gomoku/internal/transport/api"
	"github.com/kiryu-dev/gomoku/internal/transport/ws"
	"github.com/kiryu-dev/gomoku/internal/usecase/ai"
	"github.com/kiryu-dev/gomoku/internal/usecase/game"
	"github.com/kiryu-dev/gomoku/internal/usecase/hub"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfgPath := flag.String("config", "./config.yml", "path to config")
	flag.Parse()
	cfg, err := config.New(*cfgPath)
	if err != nil {
		panic(err)
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	var (
		sessions = hub.New(cfg.Game.BoardSize, cfg.Sessions.SweepPeriod, logger, hub.WithIdleTTL(cfg.Sessions.IdleTTL))
		selector = ai.New(logger,
			ai.WithDepth(cfg.Ai.SearchDepth),
			ai.WithCandidateRadius(cfg.Ai.CandidateRadius),
			ai.WithSeed(cfg.Ai.Seed))
		games  = game.New(sessions, selector, cfg.AiCell(), logger, game.WithDefaults(cfg.Game.Mode, cfg.Game.Difficulty))
		router = api.NewRouter(games, logger)
	)
	defer sessions.Close()
	router.Handle("/ws", ws.New(games, logger))
	server := api.NewServer(cfg.Server, router, logger)

	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	errGroup, ctx := errgroup.WithContext(context.Background())
	errGroup.Go(func() error {
		select {
		case s := <-sigChan:
			return errors.Errorf("captured signal: %v", s)
		case <-ctx.Done():
			return nil
		}
	})
	errGroup.Go(func() error {
		return server.ListenAndServe()
	})
	errGroup.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Info("failed to shutdown http server: " + err.Error())
		}
		return nil
	})
	if err := errGroup.Wait(); err != nil {
		logger.Info("gracefully shutting down the server: " + err.Error())
	}
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	if cfg.Development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
