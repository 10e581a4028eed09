package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/paywall-system/internal/core/domain"
)

type stubAuthorizer struct {
	user *domain.User
	err  error
	got  string
}

func (s *stubAuthorizer) AuthorizeMember(_ context.Context, sessionID string) (*domain.User, error) {
	s.got = sessionID
	return s.user, s.err
}

func TestRequireMember_Allows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(SessionIDKey, "sess-1")

	auth := &stubAuthorizer{user: &domain.User{ID: 1, Username: "alice"}}
	called := false
	handler := RequireMember(auth)(func(c echo.Context) error {
		called = true
		if u, _ := c.Get(UserKey).(*domain.User); u == nil || u.Username != "alice" {
			t.Fatalf("user not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if auth.got != "sess-1" {
		t.Errorf("expected session sess-1, got %q", auth.got)
	}
}

func TestRequireMember_Rejects(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(SessionIDKey, "sess-1")

	handler := RequireMember(&stubAuthorizer{err: domain.ErrUnauthorized})(func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRequireMember_NoSession(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	auth := &stubAuthorizer{user: &domain.User{ID: 1}}
	handler := RequireMember(auth)(func(c echo.Context) error { return nil })

	if err := handler(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
