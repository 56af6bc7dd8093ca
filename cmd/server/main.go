package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/barbeariapub/dashboard-api/internal/api"
	"github.com/barbeariapub/dashboard-api/internal/infrastructure/config"
	mongodb "github.com/barbeariapub/dashboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/barbeariapub/dashboard-api/internal/infrastructure/db/redis"
	"github.com/barbeariapub/dashboard-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	registry := mongodb.NewTenantRegistry(client, cfg.Tenant.IDs, cfg.Tenant.DBPrefix, cfg.Mongo.AdminDatabase)
	log.Info().Strs("tenants", registry.Tenants()).Msg("tenant registry ready")

	// The report cache is optional: without Redis every report is computed
	// fresh on each request.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, report caching disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	e := api.NewRouter(registry, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
