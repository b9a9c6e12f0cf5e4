package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/vacations-api/internal/api/middleware"
	"github.com/tripnest/vacations-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the gate and performs a
// fast-fail check before any service call: a handler mounted behind the gate
// must never run without one.
func ctxIdentity(c echo.Context) (int64, domain.Role, error) {
	userID, ok := c.Get(middleware.CtxUserID).(int64)
	if !ok || userID <= 0 {
		return 0, 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, ok := c.Get(middleware.CtxRole).(domain.Role)
	if !ok || !role.Valid() {
		return 0, 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).Int64(name, &id).BindError(); err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
