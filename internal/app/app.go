package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/helpdesk-backend/internal/adapter/kafka"
	"github.com/heartmarshall/helpdesk-backend/internal/adapter/postgres"
	messagerepo "github.com/heartmarshall/helpdesk-backend/internal/adapter/postgres/message"
	ticketrepo "github.com/heartmarshall/helpdesk-backend/internal/adapter/postgres/ticket"
	"github.com/heartmarshall/helpdesk-backend/internal/adapter/redis"
	"github.com/heartmarshall/helpdesk-backend/internal/auth"
	"github.com/heartmarshall/helpdesk-backend/internal/config"
	authsvc "github.com/heartmarshall/helpdesk-backend/internal/service/auth"
	"github.com/heartmarshall/helpdesk-backend/internal/service/message"
	"github.com/heartmarshall/helpdesk-backend/internal/service/query"
	"github.com/heartmarshall/helpdesk-backend/internal/service/ticket"
	"github.com/heartmarshall/helpdesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/helpdesk-backend/internal/transport/rest"
)

// Run is the application entry point for `helpdesk serve`. It connects to
// the database, applies migrations when enabled, wires repositories,
// services and transport, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		applied, err := postgres.NewMigrator(cfg.Database.DSN, logger).Up(ctx)
		if err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	limiter, closeLimiter, err := newRateLimitStore(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer closeLimiter()

	events := kafka.NewProducer(cfg.Kafka.BrokerList(), cfg.Kafka.Topic, logger)
	defer func() {
		if err := events.Close(); err != nil {
			logger.Warn("close event producer", slog.String("error", err.Error()))
		}
	}()
	if events.Enabled() {
		logger.Info("ticket events enabled", slog.String("topic", cfg.Kafka.Topic))
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHTTPHandler(cfg, pool, limiter, events, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// NewHTTPHandler wires repositories, services and handlers on top of pool
// and returns the complete HTTP handler.
func NewHTTPHandler(
	cfg *config.Config,
	pool *pgxpool.Pool,
	limiter middleware.RateLimitStore,
	events *kafka.Producer,
	logger *slog.Logger,
) http.Handler {
	tickets := ticketrepo.New(pool)
	messages := messagerepo.New(pool)
	tx := postgres.NewTxManager(pool)

	checker := auth.NewCredentialChecker(cfg.Admin.Username, cfg.Admin.Password)

	ticketService := ticket.NewService(logger, tickets, messages, tx, events)
	messageService := message.NewService(logger, tickets, messages, tx, events)
	queryService := query.NewService(logger, tickets)
	authService := authsvc.NewService(logger, checker)

	return rest.NewRouter(rest.RouterDeps{
		Tickets:   rest.NewTicketHandler(ticketService, messageService, logger),
		Admin:     rest.NewAdminHandler(ticketService, messageService, queryService, logger),
		Auth:      rest.NewAuthHandler(authService, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Checker:   checker,
		Limiter:   limiter,
		Server:    cfg.Server,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
		Logger:    logger,
	})
}

// newRateLimitStore returns a Redis-backed store when an address is
// configured, otherwise an in-process one.
func newRateLimitStore(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (middleware.RateLimitStore, func(), error) {
	if !cfg.Enabled() {
		store := middleware.NewMemoryStore(time.Minute)
		logger.Info("rate limit store: memory")
		return store, store.Stop, nil
	}

	client, err := redis.NewClient(ctx, cfg.Addr, cfg.Password, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("rate limit store: redis", slog.String("addr", cfg.Addr))

	return redis.NewRateLimitStore(client, cfg.KeyPrefix), func() {
		if err := client.Close(); err != nil {
			logger.Warn("close redis client", slog.String("error", err.Error()))
		}
	}, nil
}
