package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/family-task-api/internal/config"
	"github.com/yukikurage/family-task-api/internal/database"
)

// Server owns the HTTP listener.
type Server struct {
	cfg  *config.Config
	log  *slog.Logger
	http *http.Server
}

// New builds a Server listening on cfg.ServerAddr().
func New(cfg *config.Config, pool *database.DatabasePool, log *slog.Logger) *Server {
	gin.SetMode(cfg.GinMode)

	return &Server{
		cfg: cfg,
		log: log,
		http: &http.Server{
			Addr:              cfg.ServerAddr(),
			Handler:           NewRouter(cfg, pool, log),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until ctx is cancelled, then drains in-flight requests for
// up to cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.log.Info("shutting down HTTP server", "timeout", s.cfg.ShutdownTimeout)
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("HTTP server shut down gracefully")
	return nil
}
