package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/paywall-system/internal/core/domain"
	"github.com/99minutos/paywall-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login attaches the user with the given username to the session.
//
// @Summary      Login
// @Description  Username-only login; the match is exact and case-sensitive.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Username"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  object
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return err
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	// A missing username is an unknown user, not a malformed request.
	if err := c.Validate(&req); err != nil {
		return domain.ErrUserNotFound
	}

	user, err := h.authService.Login(c.Request().Context(), sid, req.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Logout detaches the user from the session. The pageview counter is kept.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /logout [delete]
func (h *AuthHandler) Logout(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), sid); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CheckSession returns the user logged in on the session.
//
// @Summary      Current session user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  object
// @Router       /check_session [get]
func (h *AuthHandler) CheckSession(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
