package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodorder/cmd"
	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/kafka"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/metrics"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource it opens, so failures return through the defers.
func run() error {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.DBMigrationsEnabled {
		if err = postgres.Migrate(ctx, config.DSN()); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	gormDB, err := gorm.Open(pgdriver.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	defer func() {
		if closeErr := sqlDB.Close(); closeErr != nil {
			logger.Error("close database", "error", closeErr)
		}
	}()

	publisher, closePublisher, err := newPublisher(config, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closePublisher.Close(); closeErr != nil {
			logger.Error("close event publisher", "error", closeErr)
		}
	}()

	m := metrics.New(prometheus.DefaultRegisterer)
	app := cmd.NewCompositionRoot(config, gormDB, publisher, m, logger)

	router, err := httpadapter.NewRouter(ctx, app.CreateServer(), prometheus.DefaultGatherer)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		logger.Info("http server listening", "addr", addr)
		if err := router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return router.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

// newPublisher falls back to a no-op publisher when no brokers are configured.
func newPublisher(config cmd.Config, logger *slog.Logger) (ports.OrderEventPublisher, io.Closer, error) {
	if !config.KafkaEnabled() {
		logger.Warn("kafka brokers not configured, order events are discarded")
		return kafka.NoopPublisher{}, io.NopCloser(nil), nil
	}

	publisher, err := kafka.NewOrderEventPublisher(config.KafkaBrokers, config.KafkaOrderChangedTopic, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to kafka: %w", err)
	}
	return publisher, publisher, nil
}
