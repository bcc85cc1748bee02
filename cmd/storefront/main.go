package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/esghir/sales-frontend/internal/api"
	"github.com/esghir/sales-frontend/internal/api/handler"
	"github.com/esghir/sales-frontend/internal/core/ports"
	"github.com/esghir/sales-frontend/internal/infrastructure/backend"
	"github.com/esghir/sales-frontend/internal/infrastructure/session"
	"github.com/esghir/sales-frontend/internal/pkg/config"
	"github.com/esghir/sales-frontend/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := backend.NewClient(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	}, log)

	readiness := map[string]handler.Pinger{"backend": client}

	var sessionRepo ports.SessionRepository
	switch cfg.Session.Store {
	case "redis":
		rdb, err := session.Connect(ctx, session.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis connection failed")
		}
		repo := session.NewRedisRepository(rdb)
		sessionRepo = repo
		readiness["redis"] = repo
	default:
		repo := session.NewMemoryRepository()
		repo.StartJanitor(ctx, time.Minute)
		sessionRepo = repo
		readiness["sessions"] = repo
	}

	e := api.NewRouter(cfg, client, sessionRepo, readiness, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server error")
			stop()
		}
	}()
	log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.BaseURL).Msg("storefront started")

	<-ctx.Done()
	log.Info().Msg("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown error")
	}
}
