package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Alphadriven28/Stockflow/internal/config"
	"github.com/Alphadriven28/Stockflow/internal/domain"
	httpapi "github.com/Alphadriven28/Stockflow/internal/http"
	"github.com/Alphadriven28/Stockflow/internal/logger"
	"github.com/Alphadriven28/Stockflow/internal/metrics"
	"github.com/Alphadriven28/Stockflow/internal/repository"
	"github.com/Alphadriven28/Stockflow/internal/service"
)

func main() {
	configPath := flag.String("config", os.Getenv("STOCKFLOW_CONFIG"), "path to config file (yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logCfg := logger.Config{
		IsDevelopment:     cfg.IsDevelopment(),
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	appLogger, err := logger.New(logCfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	mem := repository.NewMemoryStore()
	if cfg.Store.SeedDemoData {
		if err := repository.SeedDemoData(context.Background(), mem, time.Now(), cfg.Store.ActivityLogLimit); err != nil {
			appLogger.Fatal("seed demo data", zap.Error(err))
		}
	}

	opts := []service.Option{
		service.WithPageSize(cfg.Store.PageSize),
		service.WithCurrentUser(domain.User{
			ID:    repository.DemoUser().ID,
			Name:  cfg.User.Name,
			Email: cfg.User.Email,
			Role:  domain.Role(cfg.User.Role),
		}),
	}
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		opts = append(opts, service.WithRecorder(m))
	}

	repos := service.NewMemoryRepositories(mem, cfg.Store.ActivityLogLimit, cfg.Store.NotificationLimit)
	store := service.NewInventoryStore(repos, repository.NewMemoryTx(mem), appLogger.Named("store"), opts...)

	var metricsHandler http.Handler
	if m != nil {
		m.Watch(store)
		metricsHandler = m.Handler()
	}

	srv := httpapi.NewServer(store, appLogger.Named("http"), metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           srv.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		appLogger.Error("shutdown error", zap.Error(err))
	}
}
