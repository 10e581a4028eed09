// Command seed fills empty user and article collections and exits.
package main

import (
	"context"
	"flag"
	"time"

	mongodb "github.com/99minutos/paywall-system/internal/infrastructure/db/mongo"
	"github.com/99minutos/paywall-system/internal/pkg/config"
	"github.com/99minutos/paywall-system/internal/seed"
	"github.com/99minutos/paywall-system/pkg/logger"
)

func main() {
	cfg := config.LoadSeed()

	fixtures := flag.String("fixtures", cfg.Seed.Fixtures, "YAML fixture file; random data when empty")
	users := flag.Int("users", cfg.Seed.Users, "number of generated users")
	articles := flag.Int("articles", cfg.Seed.Articles, "number of generated articles")
	timeout := flag.Duration("timeout", time.Minute, "overall timeout")
	flag.Parse()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "paywall-seed",
		Env:     cfg.Env,
	})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	seeder := seed.NewSeeder(mongodb.NewUserRepository(db), mongodb.NewArticleRepository(db),
		seed.SourceFor(*fixtures, *users, *articles), log)

	seeded, err := seeder.SeedIfEmpty(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	if !seeded {
		log.Info().Msg("users already present, nothing to seed")
	}
}
