// @title        Paywall API
// @version      1.0
// @description  Articles behind an anonymous pageview limit and a member-only section.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/99minutos/paywall-system/internal/api"
	"github.com/99minutos/paywall-system/internal/api/handler"
	"github.com/99minutos/paywall-system/internal/api/middleware"
	"github.com/99minutos/paywall-system/internal/core/service"
	mongodb "github.com/99minutos/paywall-system/internal/infrastructure/db/mongo"
	redisdb "github.com/99minutos/paywall-system/internal/infrastructure/db/redis"
	"github.com/99minutos/paywall-system/internal/pkg/config"
	"github.com/99minutos/paywall-system/internal/seed"
	"github.com/99minutos/paywall-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "paywall-api",
		Env:     cfg.Env,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Core wiring ---
	userRepo := mongodb.NewUserRepository(db)
	articleRepo := mongodb.NewArticleRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb, cfg.Session.TTL)

	seeder := seed.NewSeeder(userRepo, articleRepo,
		seed.SourceFor(cfg.Seed.Fixtures, cfg.Seed.Users, cfg.Seed.Articles),
		log.With().Str("component", "seed").Logger())
	if cfg.Seed.OnStartup {
		if _, err := seeder.SeedIfEmpty(ctx); err != nil {
			log.Fatal().Err(err).Msg("startup seeding failed")
		}
	}

	policy := service.NewAccessPolicy(userRepo, sessionStore, log.With().Str("component", "policy").Logger())

	e := api.NewRouter(api.Dependencies{
		Articles: service.NewArticleService(articleRepo, policy, log),
		Auth:     service.NewAuthService(userRepo, sessionStore, log),
		Sessions: service.NewSessionService(sessionStore, seeder, log),
		Members:  policy,
		Session: middleware.SessionConfig{
			Secret:     cfg.Session.Secret,
			CookieName: cfg.Session.CookieName,
			TTL:        cfg.Session.TTL,
			Secure:     cfg.Session.CookieSecure,
		},
		Readiness: map[string]handler.Pinger{
			"mongodb": handler.PingFunc(func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }),
			"redis":   handler.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		},
		Logger: log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
