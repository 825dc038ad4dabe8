package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/settleup/settleup/internal/api"
	"github.com/settleup/settleup/internal/auth"
	"github.com/settleup/settleup/internal/cache"
	"github.com/settleup/settleup/internal/config"
	"github.com/settleup/settleup/internal/storage/sqlite"
	"github.com/settleup/settleup/pkg/logging"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (falls back to env when absent)")
	flag.Parse()

	cfg, err := config.LoadOrEnv(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level)

	store, err := sqlite.New(cfg.Storage.DatabasePath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Storage.DatabasePath)

	var settlementCache cache.Cache
	if cfg.Cache.RedisAddr != "" {
		settlementCache = cache.NewRedisCache(cfg.Cache.RedisAddr)
		slog.Info("Using Redis settlement cache", "addr", cfg.Cache.RedisAddr)
	} else {
		settlementCache = cache.NewMemoryCache()
		slog.Info("Using in-memory settlement cache")
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store)

	server := api.NewServer(api.Config{
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, store, settlementCache, jwtManager, authenticator, slog.Default())

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
