package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/vacations-api/internal/core/ports"
)

// VacationHandler exposes the vacation catalog. Reads are public, writes
// are mounted behind the admin gate.
type VacationHandler struct {
	vacations ports.VacationService
}

func NewVacationHandler(vacations ports.VacationService) *VacationHandler {
	return &VacationHandler{vacations: vacations}
}

// @Summary  List vacations with like counts
// @Tags     vacations
// @Produce  json
// @Success  200  {array}  ports.VacationView
// @Router   /vacations [get]
func (h *VacationHandler) List(c echo.Context) error {
	views, err := h.vacations.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// @Summary  Get a vacation with its like count
// @Tags     vacations
// @Produce  json
// @Success  200  {object}  ports.VacationView
// @Failure  404  {object}  errorResponse
// @Router   /vacations/{id} [get]
func (h *VacationHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	view, err := h.vacations.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// @Summary   Create a vacation
// @Tags      vacations
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      vacationRequest  true  "Vacation details"
// @Success   201   {object}  domain.Vacation
// @Failure   400   {object}  errorResponse
// @Router    /vacations [post]
func (h *VacationHandler) Create(c echo.Context) error {
	req, err := bindVacation(c)
	if err != nil {
		return err
	}
	vacation, err := h.vacations.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, vacation)
}

// @Summary   Update a vacation
// @Tags      vacations
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      vacationRequest  true  "Vacation details"
// @Success   200   {object}  domain.Vacation
// @Failure   404   {object}  errorResponse
// @Router    /vacations/{id} [put]
func (h *VacationHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	req, err := bindVacation(c)
	if err != nil {
		return err
	}
	vacation, err := h.vacations.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vacation)
}

// @Summary   Delete a vacation
// @Tags      vacations
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  messageResponse
// @Failure   404  {object}  errorResponse
// @Router    /vacations/{id} [delete]
func (h *VacationHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.vacations.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "vacation deleted"})
}

func bindVacation(c echo.Context) (ports.VacationInput, error) {
	var req vacationRequest
	if err := c.Bind(&req); err != nil {
		return ports.VacationInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.VacationInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ports.VacationInput{
		CountryID:   req.CountryID,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Price:       req.Price,
		Currency:    req.Currency,
		ImageName:   req.ImageName,
	}, nil
}
