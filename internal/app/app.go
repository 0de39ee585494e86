package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/bankpanel-backend/internal/adapter/postgres"
	clientrepo "github.com/heartmarshall/bankpanel-backend/internal/adapter/postgres/client"
	"github.com/heartmarshall/bankpanel-backend/internal/adapter/postgres/identity"
	"github.com/heartmarshall/bankpanel-backend/internal/adapter/postgres/searchparam"
	authpkg "github.com/heartmarshall/bankpanel-backend/internal/auth"
	"github.com/heartmarshall/bankpanel-backend/internal/config"
	authsvc "github.com/heartmarshall/bankpanel-backend/internal/service/auth"
	clientsvc "github.com/heartmarshall/bankpanel-backend/internal/service/client"
	"github.com/heartmarshall/bankpanel-backend/internal/telemetry"
	"github.com/heartmarshall/bankpanel-backend/internal/transport/middleware"
	"github.com/heartmarshall/bankpanel-backend/internal/transport/rest"
	"github.com/heartmarshall/bankpanel-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, wires services and serves HTTP until ctx
// is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

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

	if !cfg.Database.SkipMigrations {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv, err := wire(logger, pool, cfg, registry)
	if err != nil {
		return err
	}
	defer srv.limiter.Stop()

	if cfg.Auth.HasAdminSeed() {
		if err := srv.auth.SeedAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	return serve(ctx, logger, cfg.Server, srv.handler)
}

// server is the wired application graph.
type server struct {
	handler http.Handler
	auth    *authsvc.Service
	limiter *middleware.RateLimiter
}

// wire builds repositories, services and the HTTP router on top of pool.
// The caller must stop the returned rate limiter.
func wire(logger *slog.Logger, pool *pgxpool.Pool, cfg *config.Config, registry *prometheus.Registry) (*server, error) {
	// Infrastructure.
	txm := postgres.NewTxManager(pool)
	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	hasher := authpkg.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	// Repositories.
	clients := clientrepo.New(pool)
	searches := searchparam.New(pool)
	users := identity.New(pool)

	// Services.
	authService := authsvc.NewService(logger, users, hasher, jwtMgr, txm, cfg.Auth)
	clientService := clientsvc.NewService(logger, clients, searches, txm, cfg.Clients)

	// Telemetry.
	metrics := telemetry.NewMetrics(registry)
	if err := telemetry.RegisterPoolMetrics(pool, registry); err != nil {
		return nil, fmt.Errorf("register pool metrics: %w", err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	handler := rest.NewRouter(logger, rest.RouterDeps{
		Health:           rest.NewHealthHandler(pool, BuildVersion()),
		Account:          rest.NewAccountHandler(authService, logger),
		Clients:          rest.NewClientHandler(clientService, logger),
		Tokens:           authService,
		CORS:             cfg.CORS,
		Limiter:          limiter,
		AccountPerMinute: cfg.RateLimit.AccountPerMinute,
		Recorder:         metrics,
		MetricsHandler:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	})

	return &server{handler: handler, auth: authService, limiter: limiter}, nil
}

// serve runs the HTTP server until ctx is done, then shuts it down within
// the configured timeout.
func serve(ctx context.Context, logger *slog.Logger, cfg config.ServerConfig, handler http.Handler) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("http server stopped")
	return nil
}
