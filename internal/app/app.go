// Package app wires configuration, storage, services and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"

	"github.com/heartmarshall/peritagem-backend/internal/adapter/postgres"
	historyrepo "github.com/heartmarshall/peritagem-backend/internal/adapter/postgres/history"
	inspectionrepo "github.com/heartmarshall/peritagem-backend/internal/adapter/postgres/inspection"
	intakerepo "github.com/heartmarshall/peritagem-backend/internal/adapter/postgres/intake"
	profilerepo "github.com/heartmarshall/peritagem-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/peritagem-backend/internal/auth"
	"github.com/heartmarshall/peritagem-backend/internal/config"
	authsvc "github.com/heartmarshall/peritagem-backend/internal/service/auth"
	inspectionsvc "github.com/heartmarshall/peritagem-backend/internal/service/inspection"
	intakesvc "github.com/heartmarshall/peritagem-backend/internal/service/intake"
	profilesvc "github.com/heartmarshall/peritagem-backend/internal/service/profile"
	"github.com/heartmarshall/peritagem-backend/internal/telemetry"
	"github.com/heartmarshall/peritagem-backend/internal/transport/dataloader"
	"github.com/heartmarshall/peritagem-backend/internal/transport/middleware"
	"github.com/heartmarshall/peritagem-backend/internal/transport/rest"
)

// Run starts the server and blocks until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, os.Stdout)
	version := BuildVersion()

	logger.Info("starting application",
		slog.String("version", version),
		slog.String("log_level", cfg.Log.Level),
	)

	providers, err := telemetry.Init(ctx, cfg.Telemetry, version, os.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown", slog.String("error", err.Error()))
		}
	}()

	lifecycle, err := telemetry.NewLifecycle(otel.GetMeterProvider(), otel.GetTracerProvider())
	if err != nil {
		return fmt.Errorf("telemetry instruments: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	// Repositories.
	txm := postgres.NewTxManager(pool)
	profiles := profilerepo.New(pool)
	inspections := inspectionrepo.New(pool)
	history := historyrepo.New(pool)
	intake := intakerepo.New(pool)

	// Services.
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, profiles, jwtMgr, cfg.Auth)
	inspectionService := inspectionsvc.NewService(
		logger, inspections, history, profiles,
		dataloader.NewActorResolver(profiles), lifecycle,
		inspectionsvc.Limits{
			DefaultPageSize: cfg.Inspection.DefaultPageSize,
			MaxPageSize:     cfg.Inspection.MaxPageSize,
		},
	)
	intakeService := intakesvc.NewService(logger, intake, inspections, profiles, txm)
	profileService := profilesvc.NewService(logger, profiles)

	limiter := middleware.NewRateLimiter(cfg.Auth.LoginRatePerMinute, logger)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(pool, version),
		Auth:        rest.NewAuthHandler(authService, logger),
		Inspections: rest.NewInspectionHandler(inspectionService, logger),
		Intake:      rest.NewIntakeHandler(intakeService, logger),
		Profiles:    rest.NewProfileHandler(profileService, logger),
	}, limiter.Limit())

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		dataloader.Middleware(profiles),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

func migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(pool, logger)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up(ctx)
}
