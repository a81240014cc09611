package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nomadnav/travel-api/internal/core/ports"
)

// CountryHandler handles HTTP requests for country reference data.
type CountryHandler struct {
	service ports.CountryService
}

func NewCountryHandler(service ports.CountryService) *CountryHandler {
	return &CountryHandler{service: service}
}

// List returns the summary projection of every country.
//
// @Summary      List countries
// @Tags         countries
// @Produce      json
// @Success      200  {object}  listCountriesResponse
// @Router       /api/countries [get]
func (h *CountryHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listCountriesResponse{Items: items, Total: len(items)})
}

// Get returns one country by its 2-letter code, case-insensitively.
//
// @Summary      Get a country
// @Tags         countries
// @Produce      json
// @Param        code  path      string  true  "Country code (e.g. TH)"
// @Success      200   {object}  domain.Country
// @Failure      404   {object}  map[string]string
// @Router       /api/countries/{code} [get]
func (h *CountryHandler) Get(c echo.Context) error {
	country, err := h.service.Get(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, country)
}

// Create adds a new country entry. Admin only.
//
// @Summary      Create a country
// @Tags         countries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCountryRequest  true  "Country details"
// @Success      201   {object}  countryResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/countries [post]
func (h *CountryHandler) Create(c echo.Context) error {
	var req createCountryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	country, err := h.service.Create(c.Request().Context(), actorFromContext(c), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, countryResponse{Message: "country created", Country: country})
}

// Update applies a partial update to a country. Admin only; the code itself
// is immutable and rejected as an update field.
//
// @Summary      Update a country
// @Tags         countries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string          true  "Country code"
// @Param        body  body      map[string]any  true  "Field changes"
// @Success      200   {object}  countryResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/countries/{code} [patch]
func (h *CountryHandler) Update(c echo.Context) error {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	country, err := h.service.Update(c.Request().Context(), actorFromContext(c), c.Param("code"), fields)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, countryResponse{Message: "country updated", Country: country})
}

// Delete removes a country entry. Admin only.
//
// @Summary      Delete a country
// @Tags         countries
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string  true  "Country code"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/countries/{code} [delete]
func (h *CountryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), actorFromContext(c), c.Param("code")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "country deleted"})
}
