// Package seed fills empty user and article stores with initial data, either
// generated with gofakeit or read from a YAML fixture file.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/paywall-system/internal/core/domain"
	"github.com/99minutos/paywall-system/internal/core/ports"
	"github.com/99minutos/paywall-system/internal/pkg/metrics"
)

// Source produces the data written by a seed run.
type Source interface {
	Generate() ([]*domain.User, []*domain.Article, error)
}

// SourceFor reads fixturesPath when set and otherwise generates random data
// with the given counts.
func SourceFor(fixturesPath string, users, articles int) Source {
	if fixturesPath != "" {
		return NewFixtureSource(fixturesPath)
	}
	return NewFakerSource(0, users, articles)
}

// Seeder writes a Source into the stores when they hold no users.
type Seeder struct {
	users    ports.UserRepository
	articles ports.ArticleRepository
	source   Source
	log      zerolog.Logger
}

var _ ports.Seeder = (*Seeder)(nil)

func NewSeeder(users ports.UserRepository, articles ports.ArticleRepository, source Source, log zerolog.Logger) *Seeder {
	return &Seeder{users: users, articles: articles, source: source, log: log}
}

// SeedIfEmpty checks the user store and seeds only when it is empty.
// The check and the writes are not atomic.
func (s *Seeder) SeedIfEmpty(ctx context.Context) (bool, error) {
	seeded, err := s.seedIfEmpty(ctx)
	switch {
	case err != nil:
		metrics.SeedRunsTotal.WithLabelValues("error").Inc()
	case seeded:
		metrics.SeedRunsTotal.WithLabelValues("seeded").Inc()
	default:
		metrics.SeedRunsTotal.WithLabelValues("skipped").Inc()
	}
	return seeded, err
}

func (s *Seeder) seedIfEmpty(ctx context.Context) (bool, error) {
	exists, err := s.users.HasAny(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	if exists {
		return false, nil
	}

	users, articles, err := s.source.Generate()
	if err != nil {
		return false, fmt.Errorf("seed: generate: %w", err)
	}

	s.log.Info().Int("users", len(users)).Int("articles", len(articles)).Msg("seeding database")

	if err := s.users.InsertMany(ctx, users); err != nil {
		return false, fmt.Errorf("seed users: %w", err)
	}
	if err := s.articles.InsertMany(ctx, articles); err != nil {
		return false, fmt.Errorf("seed articles: %w", err)
	}

	s.log.Info().Msg("database seeded")
	return true, nil
}
