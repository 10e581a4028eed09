package ports

import (
	"context"

	"github.com/99minutos/paywall-system/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByUsername matches the username exactly (case-sensitive).
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// HasAny reports whether at least one user is stored.
	HasAny(ctx context.Context) (bool, error)
	// InsertMany assigns ids to the users and stores them.
	InsertMany(ctx context.Context, users []*domain.User) error
}
