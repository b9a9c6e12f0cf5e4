package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/vacations-api/internal/core/ports"
)

// LikeHandler exposes likes. Like/unlike act on the identity attached by
// the gate, never on a client-supplied user id.
type LikeHandler struct {
	likes     ports.LikeService
	vacations ports.VacationService
}

func NewLikeHandler(likes ports.LikeService, vacations ports.VacationService) *LikeHandler {
	return &LikeHandler{likes: likes, vacations: vacations}
}

// @Summary   Like a vacation
// @Tags      likes
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  messageResponse
// @Failure   404  {object}  errorResponse
// @Router    /vacations/{id}/like [post]
func (h *LikeHandler) Like(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	vacationID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.likes.Like(c.Request().Context(), userID, vacationID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "liked"})
}

// @Summary   Unlike a vacation
// @Tags      likes
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  messageResponse
// @Router    /vacations/{id}/like [delete]
func (h *LikeHandler) Unlike(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	vacationID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.likes.Unlike(c.Request().Context(), userID, vacationID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "unliked"})
}

// @Summary  Like count for a vacation
// @Tags     likes
// @Produce  json
// @Success  200  {object}  likeCountResponse
// @Failure  404  {object}  errorResponse
// @Router   /vacations/{id}/likes [get]
func (h *LikeHandler) Count(c echo.Context) error {
	vacationID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	view, err := h.vacations.Get(c.Request().Context(), vacationID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likeCountResponse{VacationID: vacationID, Likes: view.Likes})
}

// @Summary   Vacations liked by a user
// @Tags      likes
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  likedVacationsResponse
// @Router    /users/{id}/likes [get]
func (h *LikeHandler) LikedByUser(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	ids, err := h.likes.LikedByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likedVacationsResponse{UserID: userID, VacationIDs: ids})
}
