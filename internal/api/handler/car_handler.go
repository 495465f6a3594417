package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rental-cars/catalog-api/internal/api/metrics"
	"github.com/rental-cars/catalog-api/internal/api/middleware"
	"github.com/rental-cars/catalog-api/internal/api/respond"
	"github.com/rental-cars/catalog-api/internal/core/domain"
	"github.com/rental-cars/catalog-api/internal/core/ports"
)

// CarHandler handles HTTP requests for the car catalog.
type CarHandler struct {
	service ports.CarService
}

func NewCarHandler(service ports.CarService) *CarHandler {
	return &CarHandler{service: service}
}

// List returns one catalog page.
//
// @Summary      List cars
// @Tags         cars
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        size    query     int     false  "Page size"
// @Param        search  query     string  false  "Partial match on plate, manufacture or model"
// @Success      200     {object}  respond.Body
// @Failure      401     {object}  respond.Body
// @Router       /api/v1/cars [get]
func (h *CarHandler) List(c echo.Context) error {
	var q listCarsQuery
	if err := c.Bind(&q); err != nil {
		return domain.ErrInvalidPayload
	}

	result, err := h.service.List(c.Request().Context(), ports.ListCarsInput{
		Page:   q.Page,
		Size:   q.Size,
		Search: q.Search,
	})
	if err != nil {
		return err
	}

	meta := toListMeta(result)
	return respond.JSON(c, http.StatusOK, "success", result.Items, &meta)
}

// Show returns a single car by id.
//
// @Summary      Get a car
// @Tags         cars
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Car id"
// @Success      200  {object}  respond.Body
// @Failure      404  {object}  respond.Body
// @Router       /api/v1/cars/{id} [get]
func (h *CarHandler) Show(c echo.Context) error {
	car, err := h.service.Show(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond.JSON(c, http.StatusOK, "success", car, nil)
}

// Create adds a car to the catalog. Admin only.
//
// @Summary      Create a car
// @Tags         cars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      carRequest  true  "Car details"
// @Success      201   {object}  respond.Body
// @Failure      400   {object}  respond.Body
// @Failure      403   {object}  respond.Body
// @Router       /api/v1/cars [post]
func (h *CarHandler) Create(c echo.Context) error {
	actor, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req carRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidPayload
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	car, err := h.service.Create(c.Request().Context(), actor, toCarInput(req))
	if err != nil {
		return err
	}
	metrics.CatalogMutationsTotal.WithLabelValues("create").Inc()

	return respond.JSON(c, http.StatusCreated, "car created successfully", car, nil)
}

// Update replaces the mutable fields of a car. Admin only.
//
// @Summary      Update a car
// @Tags         cars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "Car id"
// @Param        body  body      carRequest  true  "Car details"
// @Success      200   {object}  respond.Body
// @Failure      400   {object}  respond.Body
// @Failure      403   {object}  respond.Body
// @Failure      404   {object}  respond.Body
// @Router       /api/v1/cars/{id} [put]
func (h *CarHandler) Update(c echo.Context) error {
	actor, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req carRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidPayload
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	car, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), toCarInput(req))
	if err != nil {
		return err
	}
	metrics.CatalogMutationsTotal.WithLabelValues("update").Inc()

	return respond.JSON(c, http.StatusOK, "car updated successfully", car, nil)
}

// Remove deletes a car from the catalog. Admin only.
//
// @Summary      Remove a car
// @Tags         cars
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Car id"
// @Success      200  {object}  respond.Body
// @Failure      403  {object}  respond.Body
// @Failure      404  {object}  respond.Body
// @Router       /api/v1/cars/{id} [delete]
func (h *CarHandler) Remove(c echo.Context) error {
	actor, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	metrics.CatalogMutationsTotal.WithLabelValues("remove").Inc()

	return respond.JSON(c, http.StatusOK, "car removed successfully", nil, nil)
}
