package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/paywall-system/internal/api/middleware"
	"github.com/99minutos/paywall-system/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Service stubs
// ---------------------------------------------------------------------------

type stubArticleService struct {
	listFn       func(ctx context.Context) ([]*domain.Article, error)
	readFn       func(ctx context.Context, sessionID string, id int64) (*domain.Article, error)
	listMemberFn func(ctx context.Context) ([]*domain.Article, error)
	getFn        func(ctx context.Context, id int64) (*domain.Article, error)
}

func (s *stubArticleService) ListArticles(ctx context.Context) ([]*domain.Article, error) {
	return s.listFn(ctx)
}

func (s *stubArticleService) ReadArticle(ctx context.Context, sessionID string, id int64) (*domain.Article, error) {
	return s.readFn(ctx, sessionID, id)
}

func (s *stubArticleService) ListMemberArticles(ctx context.Context) ([]*domain.Article, error) {
	return s.listMemberFn(ctx)
}

func (s *stubArticleService) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	return s.getFn(ctx, id)
}

type stubAuthService struct {
	loginFn   func(ctx context.Context, sessionID, username string) (*domain.User, error)
	logoutFn  func(ctx context.Context, sessionID string) error
	currentFn func(ctx context.Context, sessionID string) (*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, sessionID, username string) (*domain.User, error) {
	return s.loginFn(ctx, sessionID, username)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, sessionID string) (*domain.User, error) {
	return s.currentFn(ctx, sessionID)
}

type stubSessionService struct {
	resetFn func(ctx context.Context, sessionID string) error
}

func (s *stubSessionService) Reset(ctx context.Context, sessionID string) error {
	return s.resetFn(ctx, sessionID)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// newContext builds an echo context for method/path with the session already
// resolved, as middleware.Session would leave it.
func newContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.SessionIDKey, "sess-1")
	return c, rec
}
