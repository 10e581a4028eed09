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

// AccessPolicy decides what a session may read.
//
// Logged-in sessions read every article, member-only or not. Anonymous sessions
// are metered: each single-article read bumps the session counter and reads
// past domain.PageviewLimit are refused. Denied reads still count.
type AccessPolicy struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	log      zerolog.Logger
}

var _ ports.MemberAuthorizer = (*AccessPolicy)(nil)

func NewAccessPolicy(users ports.UserRepository, sessions ports.SessionStore, log zerolog.Logger) *AccessPolicy {
	return &AccessPolicy{users: users, sessions: sessions, log: log}
}

// AuthorizeMember gates the member-only collection and member-only fetches.
func (p *AccessPolicy) AuthorizeMember(ctx context.Context, sessionID string) (*domain.User, error) {
	sess, err := p.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("authorize member: %w", err)
	}

	user, err := p.sessionUser(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("authorize member: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// AuthorizeArticle applies the single-article rule for article.
func (p *AccessPolicy) AuthorizeArticle(ctx context.Context, sessionID string, article *domain.Article) error {
	sess, err := p.sessions.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("authorize article: %w", err)
	}

	user, err := p.sessionUser(ctx, sess)
	if err != nil {
		return fmt.Errorf("authorize article: %w", err)
	}
	if user != nil {
		metrics.ArticleReadsTotal.WithLabelValues(metrics.ReadMember).Inc()
		return nil
	}

	views, err := p.sessions.IncrementPageViews(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("authorize article: count pageview: %w", err)
	}

	if !domain.PageviewAllowed(views) {
		metrics.ArticleReadsTotal.WithLabelValues(metrics.ReadDenied).Inc()
		p.log.Debug().
			Str("session", sessionID).
			Int64("article_id", article.ID).
			Int64("page_views", views).
			Msg("pageview limit reached")
		return domain.ErrPageviewLimitExceeded
	}

	metrics.ArticleReadsTotal.WithLabelValues(metrics.ReadGranted).Inc()
	return nil
}

// sessionUser resolves the user attached to sess. A missing or dangling user id yields nil.
func (p *AccessPolicy) sessionUser(ctx context.Context, sess *domain.Session) (*domain.User, error) {
	if !sess.LoggedIn() {
		return nil, nil
	}

	user, err := p.users.FindByID(ctx, *sess.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		p.log.Debug().Str("session", sess.ID).Int64("user_id", *sess.UserID).Msg("session references missing user")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
