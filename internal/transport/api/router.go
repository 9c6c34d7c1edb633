package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kiryu-dev/gomoku/internal/domain"
	"go.uber.org/zap"
)

const gameIdParam = "id"

// NewRouter wires the REST routes. Callers may mount more handlers on the
// returned router.
func NewRouter(game domain.GameUseCase, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	h := &handlers{game: game, logger: logger}
	r.Get("/health", h.healthCheck)
	r.Route("/api/games", func(r chi.Router) {
		r.Post("/", h.create)
		r.Route("/{"+gameIdParam+"}", func(r chi.Router) {
			r.Get("/", h.state)
			r.Post("/moves", h.move)
			r.Post("/reset", h.reset)
		})
	})
	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("handled request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("elapsed", time.Since(start)))
		})
	}
}
