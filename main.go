package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"apiproducts/internal/config"
	"apiproducts/internal/database"
	"apiproducts/internal/logging"
	"apiproducts/internal/models"
	"apiproducts/internal/repositories"
	"apiproducts/internal/server"
	"apiproducts/pkg/rabbitmq"

	"go.uber.org/zap"
)

func main() {
	if err := config.LoadEnvFile(".env"); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	cfg, err := config.Load(config.NewViper())
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	st, err := openStore(cfg.Database, logger)
	if err != nil {
		return err
	}
	defer st.close()

	deps := server.Dependencies{
		Products: st.products,
		Ping:     st.ping,
		Logger:   logger,
	}

	if cfg.RabbitMQ.Enabled {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQ.URL,
			Exchange: cfg.RabbitMQ.Exchange,
			Queue:    cfg.RabbitMQ.Queue,
		}, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		defer mqClient.Close()
		deps.Publisher = mqClient

		if err := mqClient.Consume(auditProductEvent(logger)); err != nil {
			logger.Warn("failed to start product event consumer", zap.Error(err))
		}
	}

	app := server.NewApp(deps)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("port", cfg.AppPort))
		serverErr <- app.Listen(cfg.AppPort)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		logger.Info("shutting down server", zap.String("signal", sig.String()))
	}

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}

// store bundles the product repository with the lifecycle hooks of whatever backs it.
type store struct {
	products repositories.ProductRepository
	ping     func(ctx context.Context) error
	close    func()
}

func openStore(cfg config.DatabaseConfig, logger *zap.Logger) (*store, error) {
	if cfg.Driver == config.DriverMemory {
		logger.Info("using in-memory product repository")
		return &store{
			products: repositories.NewMemoryProductRepository(),
			close:    func() {},
		}, nil
	}

	db, err := database.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			_ = database.Close(db)
			return nil, err
		}
	}
	logger.Info("connected to database", zap.String("driver", cfg.Driver))

	return &store{
		products: repositories.NewGORMProductRepository(db),
		ping:     func(ctx context.Context) error { return database.Ping(ctx, db) },
		close: func() {
			if err := database.Close(db); err != nil {
				logger.Warn("failed to close database", zap.Error(err))
			}
		},
	}, nil
}

// auditProductEvent logs every product event read back from the queue.
func auditProductEvent(logger *zap.Logger) func(models.ProductEvent) error {
	return func(event models.ProductEvent) error {
		if event.ProductID == "" {
			return errors.New("product event without product_id")
		}
		logger.Info("product event received",
			zap.String("event_type", event.Type),
			zap.String("product_id", event.ProductID),
			zap.Time("occurred_at", event.OccurredAt),
		)
		return nil
	}
}
