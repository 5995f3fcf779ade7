package ports

import (
	"context"

	"github.com/wildtrails/tours-api/internal/core/domain"
)

// CreateReviewInput carries all data needed to create a review. TourID and
// UserID default from the nested route and the authenticated user.
type CreateReviewInput struct {
	Content string
	Rating  int
	TourID  string
	UserID  string
}

type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	Get(ctx context.Context, id string) (*domain.Review, error)
	List(ctx context.Context, tourID string, query ListQuery) ([]domain.Review, error)
	Update(ctx context.Context, id string, update ReviewUpdate) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
}
