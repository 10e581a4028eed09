package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/paywall-system/internal/core/ports"
)

type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Clear resets the session and seeds an empty database.
//
// @Summary      Reset the session
// @Description  Clears the pageview counter and the logged-in user, then seeds the stores when no user exists.
// @Tags         session
// @Success      204
// @Failure      500  {object}  errorResponse
// @Router       /clear [get]
// @Router       /clear [delete]
func (h *SessionHandler) Clear(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return err
	}

	if err := h.service.Reset(c.Request().Context(), sid); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
