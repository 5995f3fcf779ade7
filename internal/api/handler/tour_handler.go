package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wildtrails/tours-api/internal/core/domain"
	"github.com/wildtrails/tours-api/internal/core/ports"
)

// TourHandler exposes the tour CRUD and reporting endpoints.
type TourHandler struct {
	tours ports.TourService
}

func NewTourHandler(tours ports.TourService) *TourHandler {
	return &TourHandler{tours: tours}
}

// List returns tours matching the filter/sort/fields/pagination parameters.
//
// @Summary      List tours
// @Tags         tours
// @Produce      json
// @Param        sort    query     string  false  "Comma-separated sort fields, '-' prefix for descending"
// @Param        fields  query     string  false  "Comma-separated projection list"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  envelope
// @Security     BearerAuth
// @Router       /api/v1/tours [get]
func (h *TourHandler) List(c echo.Context) error {
	tours, err := h.tours.List(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return successList(c, http.StatusOK, len(tours), echo.Map{"tours": tours})
}

// TopTours handles GET /api/v1/tours/top-5-cheap: a canned listing of the
// five best-rated tours, cheapest first among equals.
func (h *TourHandler) TopTours(c echo.Context) error {
	query := listQuery(c)
	query["limit"] = "5"
	query["sort"] = "-ratings_average,price"
	query["fields"] = "name,ratings_average,price,summary,difficulty"

	tours, err := h.tours.List(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return successList(c, http.StatusOK, len(tours), echo.Map{"tours": tours})
}

// Get handles GET /api/v1/tours/:id.
func (h *TourHandler) Get(c echo.Context) error {
	tour, err := h.tours.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, echo.Map{"tour": tour})
}

// Create registers a new tour.
//
// @Summary      Create a tour
// @Tags         tours
// @Accept       json
// @Produce      json
// @Param        body  body      createTourRequest  true  "Tour details"
// @Success      201   {object}  envelope
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/v1/tours [post]
func (h *TourHandler) Create(c echo.Context) error {
	var req createTourRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tour, err := h.tours.Create(c.Request().Context(), ports.CreateTourInput{
		Name:         req.Name,
		Duration:     req.Duration,
		MaxGroupSize: req.MaxGroupSize,
		Difficulty:   req.Difficulty,
		Price:        req.Price,
		Summary:      req.Summary,
		Description:  req.Description,
		StartDates:   req.StartDates,
	})
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, echo.Map{"tour": tour})
}

// Update handles PATCH /api/v1/tours/:id.
func (h *TourHandler) Update(c echo.Context) error {
	var req updateTourRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tour, err := h.tours.Update(c.Request().Context(), c.Param("id"), ports.TourUpdate{
		Name:         req.Name,
		Duration:     req.Duration,
		MaxGroupSize: req.MaxGroupSize,
		Difficulty:   req.Difficulty,
		Price:        req.Price,
		Summary:      req.Summary,
		Description:  req.Description,
	})
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, echo.Map{"tour": tour})
}

// Delete handles DELETE /api/v1/tours/:id (admin, lead-guide).
func (h *TourHandler) Delete(c echo.Context) error {
	if err := h.tours.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Stats returns the per-difficulty aggregate report.
//
// @Summary      Tour statistics by difficulty
// @Tags         tours
// @Produce      json
// @Success      200  {object}  envelope
// @Router       /api/v1/tours/tour-stats [get]
func (h *TourHandler) Stats(c echo.Context) error {
	stats, err := h.tours.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, echo.Map{"stats": stats})
}

// MonthlyPlan returns the busiest months of a year, top three first.
//
// @Summary      Monthly starts plan for a year
// @Tags         tours
// @Produce      json
// @Param        year  path      int  true  "Year"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/tours/mountly-plan/{year} [get]
func (h *TourHandler) MonthlyPlan(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return domain.NewBadRequest("year must be a number")
	}

	plan, err := h.tours.MonthlyPlan(c.Request().Context(), year)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, echo.Map{"plan": plan})
}
