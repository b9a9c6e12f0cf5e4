package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/vacations-api/internal/core/ports"
)

// CountryHandler exposes the destination catalog. Reads are public, writes
// are mounted behind the admin gate.
type CountryHandler struct {
	countries ports.CountryService
}

func NewCountryHandler(countries ports.CountryService) *CountryHandler {
	return &CountryHandler{countries: countries}
}

// @Summary  List countries
// @Tags     countries
// @Produce  json
// @Success  200  {array}  domain.Country
// @Router   /countries [get]
func (h *CountryHandler) List(c echo.Context) error {
	countries, err := h.countries.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countries)
}

// @Summary  Get a country
// @Tags     countries
// @Produce  json
// @Success  200  {object}  domain.Country
// @Failure  404  {object}  errorResponse
// @Router   /countries/{id} [get]
func (h *CountryHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	country, err := h.countries.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, country)
}

// @Summary   Create a country
// @Tags      countries
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Success   201  {object}  domain.Country
// @Failure   400  {object}  errorResponse
// @Router    /countries [post]
func (h *CountryHandler) Create(c echo.Context) error {
	var req countryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	country, err := h.countries.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, country)
}

// @Summary   Rename a country
// @Tags      countries
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  domain.Country
// @Failure   404  {object}  errorResponse
// @Router    /countries/{id} [put]
func (h *CountryHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req countryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	country, err := h.countries.Rename(c.Request().Context(), id, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, country)
}

// @Summary   Delete a country
// @Tags      countries
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  messageResponse
// @Failure   404  {object}  errorResponse
// @Router    /countries/{id} [delete]
func (h *CountryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.countries.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "country deleted"})
}
