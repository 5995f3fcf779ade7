package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wildtrails/tours-api/internal/core/ports"
)

// ReviewHandler exposes review endpoints, both flat and nested under a tour.
type ReviewHandler struct {
	reviews ports.ReviewService
}

func NewReviewHandler(reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// List handles GET /api/v1/reviews and GET /api/v1/tours/:tourId/reviews.
// On the nested route results are scoped to that tour.
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.reviews.List(c.Request().Context(), c.Param("tourId"), listQuery(c))
	if err != nil {
		return err
	}
	return successList(c, http.StatusOK, len(reviews), echo.Map{"reviews": reviews})
}

// Get handles GET /api/v1/reviews/:id.
func (h *ReviewHandler) Get(c echo.Context) error {
	review, err := h.reviews.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, echo.Map{"review": review})
}

// Create posts a review. The tour defaults from the nested route and the
// author from the session.
//
// @Summary      Create a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      createReviewRequest  true  "Review"
// @Success      201   {object}  envelope
// @Failure      422   {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/v1/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tourID := c.Param("tourId")
	if tourID == "" {
		tourID = req.Tour
	}

	review, err := h.reviews.Create(c.Request().Context(), ports.CreateReviewInput{
		Content: req.Content,
		Rating:  req.Rating,
		TourID:  tourID,
		UserID:  user.ID,
	})
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, echo.Map{"review": review})
}

// Update handles PATCH /api/v1/reviews/:id.
func (h *ReviewHandler) Update(c echo.Context) error {
	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.reviews.Update(c.Request().Context(), c.Param("id"), ports.ReviewUpdate{
		Content: req.Content,
		Rating:  req.Rating,
	})
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, echo.Map{"review": review})
}

// Delete handles DELETE /api/v1/reviews/:id.
func (h *ReviewHandler) Delete(c echo.Context) error {
	if err := h.reviews.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
