package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/showbook/internal/config"
	"github.com/iliyamo/showbook/internal/database"
	"github.com/iliyamo/showbook/internal/handler"
	"github.com/iliyamo/showbook/internal/middleware"
	"github.com/iliyamo/showbook/internal/repository"
	"github.com/iliyamo/showbook/internal/router"
	"github.com/iliyamo/showbook/internal/service"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("reading .env failed", "error", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.AutoSchema {
		if err := database.CreateSchema(ctx, db); err != nil {
			logger.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		logger.Info("database schema ready")
	}

	opts := []service.Option{service.WithLogger(logger)}
	if cfg.Notify.Enabled {
		opts = append(opts, service.WithNotifier(service.NewAMQPNotifier(cfg.Notify.URL, cfg.Notify.Queue)))
		logger.Info("write notifications enabled", "queue", cfg.Notify.Queue)
	}
	dir := service.NewDirectory(repository.NewStore(db), opts...)

	// Rate limiting is optional: without Redis the bucket is a no-op.
	rdb, err := config.NewRedisClient(ctx, config.LoadRedisConfig())
	if err != nil {
		logger.Warn("redis unavailable, rate limiting disabled", "error", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET not set, write routes are unauthenticated")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())

	router.RegisterRoutes(e, db)
	router.RegisterDirectory(e, handler.NewDirectoryHandler(dir), cfg.JWTSecret,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("listening", "port", cfg.Port, "env", cfg.Env)
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server closed", "error", err)
		os.Exit(1)
	}
	logger.Info("server closed")
}
