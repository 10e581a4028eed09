package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/99minutos/paywall-system/internal/core/domain"
	"github.com/99minutos/paywall-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubUserRepo struct {
	byID    map[int64]*domain.User
	findErr error
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{byID: make(map[int64]*domain.User)}
	for _, u := range users {
		clone := *u
		r.byID[u.ID] = &clone
	}
	return r
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) HasAny(_ context.Context) (bool, error) {
	return len(r.byID) > 0, nil
}

func (r *stubUserRepo) InsertMany(_ context.Context, users []*domain.User) error {
	for _, u := range users {
		u.ID = int64(len(r.byID) + 1)
		clone := *u
		r.byID[u.ID] = &clone
	}
	return nil
}

type stubArticleRepo struct {
	byID map[int64]*domain.Article
}

func newStubArticleRepo(articles ...*domain.Article) *stubArticleRepo {
	r := &stubArticleRepo{byID: make(map[int64]*domain.Article)}
	for _, a := range articles {
		clone := *a
		r.byID[a.ID] = &clone
	}
	return r
}

func (r *stubArticleRepo) List(_ context.Context, f ports.ArticleFilter) ([]*domain.Article, error) {
	out := []*domain.Article{}
	for _, a := range r.byID {
		if f.MemberOnly && !a.IsMemberOnly {
			continue
		}
		clone := *a
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubArticleRepo) FindByID(_ context.Context, id int64) (*domain.Article, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrArticleNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubArticleRepo) InsertMany(_ context.Context, articles []*domain.Article) error {
	for _, a := range articles {
		a.ID = int64(len(r.byID) + 1)
		clone := *a
		r.byID[a.ID] = &clone
	}
	return nil
}

// stubSessionStore mirrors the Redis hash semantics: unknown ids are empty sessions.
type stubSessionStore struct {
	views map[string]int64
	users map[string]int64
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{views: make(map[string]int64), users: make(map[string]int64)}
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	sess := &domain.Session{ID: id}
	if v, ok := s.views[id]; ok {
		sess.PageViews = &v
	}
	if u, ok := s.users[id]; ok {
		sess.UserID = &u
	}
	return sess, nil
}

func (s *stubSessionStore) IncrementPageViews(_ context.Context, id string) (int64, error) {
	s.views[id]++
	return s.views[id], nil
}

func (s *stubSessionStore) SetUser(_ context.Context, id string, userID int64) error {
	s.users[id] = userID
	return nil
}

func (s *stubSessionStore) ClearUser(_ context.Context, id string) error {
	delete(s.users, id)
	return nil
}

func (s *stubSessionStore) Clear(_ context.Context, id string) error {
	delete(s.views, id)
	delete(s.users, id)
	return nil
}

type stubSeeder struct {
	seeded bool
	err    error
	calls  int
}

func (s *stubSeeder) SeedIfEmpty(_ context.Context) (bool, error) {
	s.calls++
	return s.seeded, s.err
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func publicArticle(id int64) *domain.Article {
	a := domain.NewArticle("Ada Lovelace", "Notes", "An analytical engine weaves algebraic patterns.", 5, false)
	a.ID = id
	return a
}

func memberArticle(id int64) *domain.Article {
	a := domain.NewArticle("Grace Hopper", "Compilers", "Nobody believed that I had a running compiler.", 9, true)
	a.ID = id
	return a
}
