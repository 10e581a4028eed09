package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/paywall-system/internal/core/domain"
	"github.com/99minutos/paywall-system/internal/core/ports"
)

const (
	defaultSessionTTL = 7 * 24 * time.Hour

	fieldPageViews = "page_views"
	fieldUserID    = "user_id"
)

// SessionStore keeps session state in one Redis hash per session.
// Key format: session:<id>, fields page_views and user_id.
// Every write refreshes the key's TTL.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore wraps client. A non-positive ttl falls back to seven days.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	vals, err := s.client.HGetAll(ctx, s.key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	sess := &domain.Session{ID: id}
	if raw, ok := vals[fieldPageViews]; ok {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("session %s: bad %s %q: %w", id, fieldPageViews, raw, err)
		}
		sess.PageViews = &n
	}
	if raw, ok := vals[fieldUserID]; ok {
		uid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("session %s: bad %s %q: %w", id, fieldUserID, raw, err)
		}
		sess.UserID = &uid
	}
	return sess, nil
}

func (s *SessionStore) IncrementPageViews(ctx context.Context, id string) (int64, error) {
	key := s.key(id)

	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.HIncrBy(ctx, key, fieldPageViews, 1)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("session count pageview: %w", err)
	}
	return incr.Val(), nil
}

func (s *SessionStore) SetUser(ctx context.Context, id string, userID int64) error {
	key := s.key(id)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fieldUserID, userID)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("session set user: %w", err)
	}
	return nil
}

func (s *SessionStore) ClearUser(ctx context.Context, id string) error {
	if err := s.client.HDel(ctx, s.key(id), fieldUserID).Err(); err != nil {
		return fmt.Errorf("session clear user: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}

func (s *SessionStore) key(id string) string {
	return "session:" + id
}
