package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"interest-calculator/config"
	httpLayer "interest-calculator/http"
	"interest-calculator/logging"
	"interest-calculator/repository"
	"interest-calculator/service"
)

type ServeCmd struct {
	cfgPath string
}

func NewServeCmd() *cobra.Command {
	sc := &ServeCmd{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the calculator HTTP API",
		RunE:  sc.run,
	}

	cmd.Flags().StringVarP(&sc.cfgPath, "config", "c", "", "Path to a config file (yaml, json or toml)")

	return cmd
}

func (sc *ServeCmd) run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(sc.cfgPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	sessions, closeSessions, err := newSessionRepository(ctx, cfg.Session, logger)
	if err != nil {
		return err
	}
	defer closeSessions()

	interest := service.NewInterestService(service.Limits{
		MaxPrincipal:   cfg.Limits.MaxPrincipal,
		MaxRatePercent: cfg.Limits.MaxRatePercent,
		MaxYears:       cfg.Limits.MaxYears,
	})

	deps := httpLayer.Dependencies{
		Interest:   interest,
		Calculator: service.NewCalculatorService(sessions, interest),
		Logger:     logger,
	}
	if cfg.RateLimit.Enabled {
		limiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
		defer limiter.Stop()
		deps.RateLimiter = limiter
	}

	server := httpLayer.NewServer(httpLayer.ServerConfig{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, httpLayer.NewRouter(deps), logger)

	return server.Run(ctx)
}

func newSessionRepository(
	ctx context.Context,
	cfg config.SessionConfig,
	logger zerolog.Logger,
) (repository.SessionRepository, func(), error) {
	if cfg.Store != "redis" {
		logger.Info().Dur("ttl", cfg.TTL).Msg("using in-memory session store")
		repo := repository.NewSessionRepositoryMemory(cfg.TTL)
		return repo, repo.Stop, nil
	}

	repo := repository.NewRedisSessionRepository(cfg.RedisAddr, cfg.TTL)
	if err := repo.Ping(ctx); err != nil {
		_ = repo.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	logger.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.TTL).Msg("using redis session store")

	return repo, func() {
		if err := repo.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close redis client")
		}
	}, nil
}
