package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/99minutos/paywall-system/internal/core/domain"
	"github.com/99minutos/paywall-system/internal/core/ports"
)

// RequireMember lets the request through only when the session has a logged-in
// user, which is stored under UserKey. Must run after Session.
func RequireMember(authorizer ports.MemberAuthorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := SessionID(c)
			if sid == "" {
				return domain.ErrUnauthorized
			}

			user, err := authorizer.AuthorizeMember(c.Request().Context(), sid)
			if err != nil {
				return err
			}

			c.Set(UserKey, user)
			return next(c)
		}
	}
}
