package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/paywall-system/internal/core/ports"
	"github.com/99minutos/paywall-system/internal/pkg/metrics"
)

type SessionService struct {
	sessions ports.SessionStore
	seeder   ports.Seeder
	log      zerolog.Logger
}

var _ ports.SessionService = (*SessionService)(nil)

func NewSessionService(sessions ports.SessionStore, seeder ports.Seeder, log zerolog.Logger) *SessionService {
	return &SessionService{sessions: sessions, seeder: seeder, log: log}
}

// Reset clears the session, then seeds the stores if no user exists yet.
// Two concurrent resets on an empty store may both seed.
func (s *SessionService) Reset(ctx context.Context, sessionID string) error {
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	metrics.SessionResetsTotal.Inc()

	seeded, err := s.seeder.SeedIfEmpty(ctx)
	if err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	if seeded {
		s.log.Info().Str("session", sessionID).Msg("database seeded on session reset")
	}
	return nil
}
