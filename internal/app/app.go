package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/utafrali/storefront/internal/config"
	"github.com/utafrali/storefront/internal/event"
	handler "github.com/utafrali/storefront/internal/handler/http"
	"github.com/utafrali/storefront/internal/repository/postgres"
	"github.com/utafrali/storefront/internal/service"
	redisstore "github.com/utafrali/storefront/internal/store/redis"
	"github.com/utafrali/storefront/internal/webhook"
	"github.com/utafrali/storefront/pkg/database"
	"github.com/utafrali/storefront/pkg/health"
	"github.com/utafrali/storefront/pkg/httpclient"
	pkgkafka "github.com/utafrali/storefront/pkg/kafka"
	"github.com/utafrali/storefront/pkg/tracing"
)

const serviceName = "storefront"

// App wires together all dependencies and runs the storefront server.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	pool           *pgxpool.Pool
	rdb            *redis.Client
	producer       *pkgkafka.Producer
	tracerShutdown tracing.ShutdownFunc
	httpServer     *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tracerShutdown, err := tracing.Init(ctx, tracing.Config{
		ServiceName:  serviceName,
		Environment:  cfg.Environment,
		OTLPEndpoint: cfg.OTELEndpoint,
		SampleRate:   cfg.OTELSampleRate,
		Enabled:      cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	// Initialize PostgreSQL pool.
	pool, err := database.NewPostgresPool(ctx, database.DefaultPostgresConfig(cfg.DatabaseURL), logger)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if cfg.RunMigrations {
		if err := database.RunMigrations(ctx, pool, postgres.Migrations(), logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	// Initialize Redis client.
	rdb, err := database.NewRedisClient(ctx, database.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("connected to Redis",
		slog.String("addr", cfg.RedisAddr),
		slog.Int("db", cfg.RedisDB),
	)

	// Initialize Kafka producer.
	producer := pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Webhook forwarding through a circuit breaker.
	webhookClient := httpclient.NewCircuitBreakerClient(
		httpclient.New(httpclient.DefaultConfig()),
		httpclient.DefaultCircuitBreakerConfig("order-webhook"),
		logger,
	)
	forwarder := webhook.NewForwarder(cfg.WebhookURL, webhookClient, logger)
	if !forwarder.Enabled() {
		logger.Warn("POWER_AUTOMATE_URL not set, order webhook forwarding disabled")
	}

	// Build the dependency graph.
	orderRepo := postgres.NewOrderRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	eventProducer := event.NewProducer(producer, logger)
	sessions := redisstore.NewSessionStore(rdb, time.Duration(cfg.CartTTL)*time.Hour)

	orderService := service.NewOrderService(orderRepo, eventProducer, forwarder, logger)
	catalogService := service.NewCatalogService(itemRepo)
	cartService := service.NewCartService(sessions, catalogService, eventProducer, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("postgres", pool.Ping)
	healthHandler.Register("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	healthHandler.Register("kafka", producer.Ping)

	// HTTP router.
	router := handler.NewRouter(handler.RouterDeps{
		Orders:  orderService,
		Catalog: catalogService,
		Carts:   cartService,
		Health:  healthHandler,
		Static:  os.DirFS(cfg.StaticDir),
		Logger:  logger,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		pool:           pool,
		rdb:            rdb,
		producer:       producer,
		tracerShutdown: tracerShutdown,
		httpServer:     httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	if err := a.rdb.Close(); err != nil {
		a.logger.Error("redis close error", slog.String("error", err.Error()))
	}

	a.pool.Close()

	if err := a.tracerShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
