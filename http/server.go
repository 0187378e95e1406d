package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type Server struct {
	server          *http.Server
	logger          zerolog.Logger
	shutdownTimeout time.Duration
}

func NewServer(cfg ServerConfig, handler http.Handler, logger zerolog.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:         cfg.Addr,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Run serves until ctx is cancelled, then drains outstanding requests.
func (s *Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.server.Addr).Msg("starting server")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		s.logger.Info().Msg("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("graceful shutdown failed")
		return s.server.Close()
	}

	s.logger.Info().Msg("server exited")
	return nil
}
