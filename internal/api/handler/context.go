package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/paywall-system/internal/api/middleware"
)

// sessionID returns the session resolved by middleware.Session. An empty id
// means the route was registered without the middleware.
func sessionID(c echo.Context) (string, error) {
	sid := middleware.SessionID(c)
	if sid == "" {
		return "", echo.NewHTTPError(http.StatusInternalServerError, "missing session")
	}
	return sid, nil
}

// articleID parses the :id path parameter.
func articleID(c echo.Context) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64("id", &id).BindError(); err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid article id")
	}
	return id, nil
}
