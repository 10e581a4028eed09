package ports

import (
	"context"

	"github.com/99minutos/paywall-system/internal/core/domain"
)

// SessionStore keeps per-client session state keyed by session id.
// Unknown ids behave as empty sessions.
type SessionStore interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	// IncrementPageViews adds one to the counter (absent = 0) and returns the new value.
	IncrementPageViews(ctx context.Context, id string) (int64, error)
	SetUser(ctx context.Context, id string, userID int64) error
	ClearUser(ctx context.Context, id string) error
	// Clear drops both the counter and the user id.
	Clear(ctx context.Context, id string) error
}
