//	@title			Data Lake Receiver API
//	@version		1.0
//	@description	Minimal ingestion service that accepts file uploads and persists them to a filesystem or S3-compatible backend.
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Static access token. Format: **Bearer {token}**

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/datalake/receiver/internal/auth"
	"github.com/datalake/receiver/internal/config"
	"github.com/datalake/receiver/internal/metrics"
	appMiddleware "github.com/datalake/receiver/internal/middleware"
	"github.com/datalake/receiver/internal/receiver"
	"github.com/datalake/receiver/internal/storage"

	_ "github.com/datalake/receiver/docs/swagger"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	store, err := storage.New(storage.Config{
		Type:      cfg.StorageType,
		Directory: cfg.StorageDirectory,
		Endpoint:  cfg.StorageEndpoint,
		AccessKey: cfg.StorageAccessKey,
		SecretKey: cfg.StorageSecretKey,
		Bucket:    cfg.StorageBucket,
		UseSSL:    cfg.StorageUseSSL,
	}, logger)
	if err != nil {
		logger.Fatal("storage configuration invalid", zap.Error(err))
	}

	if err := store.Initialize(context.Background()); err != nil {
		logger.Fatal("storage initialization failed", zap.Error(err))
	}
	logger.Info("storage provider ready", zap.String("backend", store.Describe()))

	metrics.Init()

	gate := auth.NewGate(cfg.AuthEnabled, cfg.AuthAccessToken)
	if gate.Enabled() && cfg.AuthAccessToken == "" {
		logger.Warn("authentication is enabled but no access token is configured; all uploads will be rejected")
	}

	handler := receiver.NewHandler(store, logger)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-file-name", "X-file-path"},
		MaxAge:         300,
	}))

	// Health check and metrics
	r.Get("/health", handler.Health)
	r.Handle("/metrics", metrics.Handler())

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Upload catch-all; everything else under the root stores a file
	r.Group(func(r chi.Router) {
		r.Use(appMiddleware.RequireToken(gate, logger))
		r.Post("/*", handler.Receive)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server listening",
			zap.String("port", cfg.Port),
			zap.String("env", cfg.AppEnv),
			zap.String("backend", store.Describe()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}

func newLogger(cfg *config.Config) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if !cfg.IsProduction() {
		zcfg = zap.NewDevelopmentConfig()
	}

	switch cfg.LogLevel {
	case "debug":
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zcfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := zcfg.Build()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	return logger
}
