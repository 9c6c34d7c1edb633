package api

import (
	"context"
	"net/http"

	"github.com/kiryu-dev/gomoku/internal/config"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type server struct {
	srv    *http.Server
	logger *zap.Logger
}

func NewServer(cfg config.ServerConfig, handler http.Handler, logger *zap.Logger) *server {
	return &server{
		srv: &http.Server{
			Addr:         cfg.Addr,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger: logger,
	}
}

// ListenAndServe blocks until the server stops. A shutdown is not an error.
func (s *server) ListenAndServe() error {
	s.logger.Info("starting listening address: " + s.srv.Addr)
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return errors.WithMessage(err, "listen and serve")
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
