package ports

import (
	"context"

	"github.com/99minutos/paywall-system/internal/core/domain"
)

// ArticleService defines the article read use-cases.
type ArticleService interface {
	ListArticles(ctx context.Context) ([]*domain.Article, error)
	// ReadArticle applies the pageview policy for the session before returning the article.
	ReadArticle(ctx context.Context, sessionID string, id int64) (*domain.Article, error)
	ListMemberArticles(ctx context.Context) ([]*domain.Article, error)
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
}

// MemberAuthorizer gates member-only routes.
type MemberAuthorizer interface {
	// AuthorizeMember returns the session's user or domain.ErrUnauthorized.
	AuthorizeMember(ctx context.Context, sessionID string) (*domain.User, error)
}

// AuthService handles username login against the session.
type AuthService interface {
	Login(ctx context.Context, sessionID, username string) (*domain.User, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, sessionID string) (*domain.User, error)
}

// SessionService handles session lifecycle operations.
type SessionService interface {
	// Reset clears the session and seeds the stores when they are empty.
	Reset(ctx context.Context, sessionID string) error
}

// Seeder fills empty stores with initial data.
type Seeder interface {
	// SeedIfEmpty seeds only when no user exists and reports whether it did.
	SeedIfEmpty(ctx context.Context) (bool, error)
}
