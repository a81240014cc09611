package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nomadnav/travel-api/internal/core/domain"
	"github.com/nomadnav/travel-api/internal/core/ports"
)

// PriceHandler handles HTTP requests for price reports.
type PriceHandler struct {
	service ports.PriceService
}

func NewPriceHandler(service ports.PriceService) *PriceHandler {
	return &PriceHandler{service: service}
}

// List returns a filtered, paginated page of price reports, newest first.
//
// @Summary      List price reports
// @Tags         prices
// @Produce      json
// @Param        country   query     string  false  "Country name filter"
// @Param        category  query     string  false  "Category filter"
// @Param        limit     query     int     false  "Page size (default 20, max 100)"
// @Param        skip      query     int     false  "Offset into the result set"
// @Success      200       {object}  listPricesResponse
// @Failure      400       {object}  map[string]string
// @Router       /api/prices [get]
func (h *PriceHandler) List(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	skip, err := queryInt(c, "skip")
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), ports.ListPricesInput{
		Country:  c.QueryParam("country"),
		Category: c.QueryParam("category"),
		Limit:    limit,
		Skip:     skip,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listPricesResponse{
		Prices:  result.Prices,
		Total:   result.Total,
		HasMore: result.HasMore,
	})
}

// Get returns a single price report by id.
//
// @Summary      Get a price report
// @Tags         prices
// @Produce      json
// @Param        id   path      string  true  "Price report id"
// @Success      200  {object}  ports.PriceView
// @Failure      404  {object}  map[string]string
// @Router       /api/prices/{id} [get]
func (h *PriceHandler) Get(c echo.Context) error {
	price, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, price)
}

// Create submits a new price report attributed to the authenticated user.
//
// @Summary      Submit a price report
// @Tags         prices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPriceRequest  true  "Price report"
// @Success      201   {object}  priceResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/prices [post]
func (h *PriceHandler) Create(c echo.Context) error {
	var req createPriceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	price, err := h.service.Create(c.Request().Context(), actorFromContext(c), ports.CreatePriceInput{
		Country:  req.Country,
		Category: req.Category,
		Item:     req.Item,
		Price:    *req.Price,
		Currency: req.Currency,
		Location: req.Location,
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, priceResponse{Message: "price report created", Price: price})
}

// Update applies a partial update to a price report. Only the owner or an
// admin may do so, and only allow-listed fields are accepted.
//
// @Summary      Update a price report
// @Tags         prices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Price report id"
// @Param        body  body      map[string]any  true  "Field changes"
// @Success      200   {object}  priceResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/prices/{id} [patch]
func (h *PriceHandler) Update(c echo.Context) error {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	price, err := h.service.Update(c.Request().Context(), actorFromContext(c), c.Param("id"), fields)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, priceResponse{Message: "price report updated", Price: price})
}

// Delete removes a price report. Only the owner or an admin may do so.
//
// @Summary      Delete a price report
// @Tags         prices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Price report id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/prices/{id} [delete]
func (h *PriceHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), actorFromContext(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "price report deleted"})
}

// queryInt parses an optional integer query parameter. A value that is
// present but not an integer is a client error, not a silent default.
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.Invalidf("%s must be an integer", name)
	}
	return n, nil
}
