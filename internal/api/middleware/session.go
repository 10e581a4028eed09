package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by the middlewares in this package.
const (
	SessionIDKey = "session_id"
	UserKey      = "user"
)

const (
	defaultCookieName = "session"
	defaultSessionTTL = 7 * 24 * time.Hour
)

// SessionConfig controls how the session cookie is issued and verified.
type SessionConfig struct {
	Secret     string
	CookieName string
	TTL        time.Duration
	Secure     bool
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Session resolves the session id carried by the signed session cookie and
// stores it under SessionIDKey. Requests without a valid cookie get a fresh
// session id and a new cookie.
func Session(cfg SessionConfig) echo.MiddlewareFunc {
	if cfg.CookieName == "" {
		cfg.CookieName = defaultCookieName
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultSessionTTL
	}
	secret := []byte(cfg.Secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(cfg.CookieName); err == nil {
				if sid, ok := parseSessionToken(cookie.Value, secret); ok {
					c.Set(SessionIDKey, sid)
					return next(c)
				}
			}

			sid := uuid.NewString()
			now := time.Now()
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
				SessionID: sid,
				RegisteredClaims: jwt.RegisteredClaims{
					IssuedAt:  jwt.NewNumericDate(now),
					ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
				},
			}).SignedString(secret)
			if err != nil {
				return err
			}

			c.SetCookie(&http.Cookie{
				Name:     cfg.CookieName,
				Value:    token,
				Path:     "/",
				Expires:  now.Add(cfg.TTL),
				MaxAge:   int(cfg.TTL.Seconds()),
				HttpOnly: true,
				Secure:   cfg.Secure,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(SessionIDKey, sid)
			return next(c)
		}
	}
}

func parseSessionToken(raw string, secret []byte) (string, bool) {
	var claims sessionClaims
	tkn, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tkn.Valid || claims.SessionID == "" {
		return "", false
	}
	return claims.SessionID, true
}

// SessionID returns the id stored by Session, or "" when the middleware did not run.
func SessionID(c echo.Context) string {
	sid, _ := c.Get(SessionIDKey).(string)
	return sid
}
