package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/lavkashop/lavka/internal"
	"github.com/lavkashop/lavka/internal/email"
	"github.com/lavkashop/lavka/internal/handler"
	"github.com/lavkashop/lavka/internal/jobs"
	"github.com/lavkashop/lavka/internal/middleware"
	"github.com/lavkashop/lavka/internal/router"
	"github.com/lavkashop/lavka/internal/routes"
	"github.com/lavkashop/lavka/internal/service"
	"github.com/lavkashop/lavka/internal/store"
	"github.com/lavkashop/lavka/internal/store/jsonfile"
	"github.com/lavkashop/lavka/internal/store/postgres"
	"github.com/lavkashop/lavka/internal/telemetry"
)

func run() error {
	ctx := context.Background()

	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	sentryCleanup, err := telemetry.InitSentry(telemetry.SentryConfig{
		DSN:         cfg.SentryDSN,
		Environment: cfg.Env,
	}, logger)
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	defer sentryCleanup()

	st, cleanup, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	// Order confirmations go out only when SMTP is configured.
	var sender email.Sender = email.NopSender{}
	if cfg.Email.Enabled() {
		sender = email.NewSMTPSender(email.SMTPConfig{
			Host:     cfg.Email.Host,
			Port:     int(cfg.Email.Port),
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
			From:     cfg.Email.From,
			FromName: cfg.Email.FromName,
		}, logger)
		logger.Info("SMTP sender configured", "host", cfg.Email.Host, "port", cfg.Email.Port)
	}

	tokenCleaner := jobs.NewTokenCleaner(st, logger, jobs.DefaultCleanupInterval)
	tokenCleaner.Start(ctx)
	defer tokenCleaner.Stop()

	metrics := middleware.NewMetrics("lavka")
	defaultRateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	defer defaultRateLimiter.Stop()

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.MaxBodySize(middleware.DefaultMaxBodySize),
		middleware.Timeout(middleware.DefaultTimeout),
		defaultRateLimiter.Middleware,
		router.Logger(logger),
		middleware.WithRequestLogger(logger),
		router.CORS([]string{"*"}),
	)

	// The browser storefront is plain static files.
	r.Static("/static/", "./public")

	routes.RegisterAPIRoutes(r, routes.APIDeps{
		Products: handler.NewProductHandler(service.NewCatalogService(st)),
		Cart:     handler.NewCartHandler(service.NewCartService(st)),
		Wishlist: handler.NewWishlistHandler(service.NewWishlistService(st)),
		Promos:   handler.NewPromoHandler(service.NewPromoService(st)),
		Orders:   handler.NewOrderHandler(service.NewOrderService(st, sender, logger)),
		Auth:     handler.NewAuthHandler(service.NewUserService(st)),
		Metrics:  metrics,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting server", "address", addr, "store", cfg.StoreDriver, "env", cfg.Env)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// openStore builds the configured store backend. The postgres path
// runs pending migrations before opening the pool.
func openStore(ctx context.Context, cfg *internal.Config, logger *slog.Logger) (store.Store, func(), error) {
	switch cfg.StoreDriver {
	case internal.StoreDriverPostgres:
		logger.Info("Connecting to database...")
		sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection failed: %w", err)
		}
		defer sqlDB.Close()

		if err := sqlDB.Ping(); err != nil {
			return nil, nil, fmt.Errorf("database ping failed: %w", err)
		}

		logger.Info("Running database migrations...")
		if err := internal.RunMigrations(sqlDB); err != nil {
			return nil, nil, fmt.Errorf("migration failed: %w", err)
		}
		logger.Info("Database migrations completed")

		db, err := postgres.Open(ctx, cfg.DatabaseUrl)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		return db, db.Close, nil

	default:
		db, err := jsonfile.Open(cfg.StorePath, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open json store: %w", err)
		}
		return db, func() {}, nil
	}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
