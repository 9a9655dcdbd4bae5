package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courier/api"
	"courier/cmd"
	"courier/internal/adapters/out/postgres"
	"courier/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout  = 15 * time.Second
	slowSQLThreshold = 200 * time.Millisecond
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zapLogger := logger.New(logger.Config{Level: configs.LogLevel, Format: configs.LogFormat})
	defer func() { _ = zapLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, configs, zapLogger); err != nil {
		zapLogger.Error("Service stopped with error", zap.Error(err))
		_ = zapLogger.Sync()
		log.Fatalf("courier: %v", err)
	}
}

func run(ctx context.Context, configs cmd.Config, zapLogger *zap.Logger) error {
	gormLogger := logger.NewGormLogger(
		zapLogger.Named("gorm"),
		logger.GormLevel(configs.LogLevel),
		logger.WithSlowThreshold(slowSQLThreshold),
	)
	gormDB, err := postgres.Open(ctx, configs.Database(), gormLogger)
	if err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(ctx, configs, gormDB, zapLogger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			zapLogger.Error("Failed to release resources", zap.Error(closeErr))
		}
	}()

	doc, err := api.Load(ctx)
	if err != nil {
		return fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort),
		Handler:           app.CreateRouter(doc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zapLogger.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		zapLogger.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
