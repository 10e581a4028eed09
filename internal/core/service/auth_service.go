package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/paywall-system/internal/core/domain"
	"github.com/99minutos/paywall-system/internal/core/ports"
	"github.com/99minutos/paywall-system/internal/pkg/metrics"
)

// AuthService implements username-only login bound to the caller's session.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	log      zerolog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, log: log}
}

// Login attaches the user with exactly this username to the session.
// An unknown username leaves the session untouched.
func (s *AuthService) Login(ctx context.Context, sessionID, username string) (*domain.User, error) {
	if username == "" {
		metrics.LoginsTotal.WithLabelValues(metrics.LoginFailure).Inc()
		return nil, domain.ErrUserNotFound
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues(metrics.LoginFailure).Inc()
		}
		return nil, err
	}

	if err := s.sessions.SetUser(ctx, sessionID, user.ID); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues(metrics.LoginSuccess).Inc()
	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user logged in")
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.ClearUser(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// CurrentUser returns domain.ErrUserNotFound when the session has no user or the user is gone.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*domain.User, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	if !sess.LoggedIn() {
		return nil, domain.ErrUserNotFound
	}
	return s.users.FindByID(ctx, *sess.UserID)
}
