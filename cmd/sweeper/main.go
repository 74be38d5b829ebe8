package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/phygrid/engine/internal/adapter"
	"github.com/phygrid/engine/internal/config"
	"github.com/phygrid/engine/internal/logger"
	"github.com/phygrid/engine/internal/store"
	"github.com/phygrid/engine/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Expiry Sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	dataStore := store.NewPGStore(db)
	clockAdapter := adapter.NewClock()

	expirySweeper := sweeper.NewExpirySweeper(&sweeper.ExpirySweeperConfig{
		Interval:       cfg.ExpirySweeper.Interval,
		BatchSize:      cfg.ExpirySweeper.BatchSize,
		WorkerPoolSize: cfg.ExpirySweeper.Worker.WorkerPoolSize,
	}, dataStore, clockAdapter)

	go func() {
		if err := expirySweeper.Start(ctx); err != nil {
			logger.FatalCtx(ctx, "Sweeper failed", zap.Error(err), zap.String("sweeper", expirySweeper.Name()))
		}
	}()
	logger.InfoCtx(ctx, "Sweeper started", zap.String("sweeper", expirySweeper.Name()))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down sweeper...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := expirySweeper.Stop(shutdownCtx); err != nil {
		logger.Error(err, zap.String("sweeper", expirySweeper.Name()))
	}
	logger.Info("Sweeper stopped")
}
