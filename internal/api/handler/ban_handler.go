package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/vacations-api/internal/core/ports"
)

// BanHandler exposes the administrative ban surface. All routes are mounted
// behind the admin gate.
type BanHandler struct {
	bans ports.BanService
}

func NewBanHandler(bans ports.BanService) *BanHandler {
	return &BanHandler{bans: bans}
}

// Create bans a user for a number of days.
//
// @Summary      Ban a user
// @Tags         bans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBanRequest  true  "Ban details"
// @Success      201   {object}  domain.Ban
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /bans/{user_id} [post]
func (h *BanHandler) Create(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}
	var req createBanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ban, err := h.bans.Ban(c.Request().Context(), userID, req.Reason, req.Days)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ban)
}

// Check reports the current ban status of a user.
//
// @Summary      Check ban status
// @Tags         bans
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  banStatusResponse
// @Failure      403  {object}  errorResponse
// @Router       /bans/{user_id} [get]
func (h *BanHandler) Check(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}
	banned, ban, err := h.bans.IsBanned(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, banStatusResponse{Banned: banned, Info: ban})
}

// Clear lifts the active bans of a user.
//
// @Summary      Unban a user
// @Tags         bans
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  unbanResponse
// @Failure      403  {object}  errorResponse
// @Router       /bans/{user_id} [delete]
func (h *BanHandler) Clear(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}
	deleted, err := h.bans.Unban(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unbanResponse{Deleted: deleted})
}
