package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wildtrails/tours-api/internal/core/domain"
	"github.com/wildtrails/tours-api/internal/core/ports"
)

// ReviewService orchestrates review CRUD, including the tour-nested listing.
type ReviewService struct {
	reviews ports.ReviewRepository
	log     zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, log: log}
}

func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	if input.TourID == "" {
		return nil, domain.NewValidation("review must belong to a tour")
	}
	if input.UserID == "" {
		return nil, domain.NewValidation("review must belong to a user")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.NewValidation("rating must be between 1 and 5")
	}

	now := time.Now().UTC()
	review, err := s.reviews.Create(ctx, &domain.Review{
		Content:   input.Content,
		Rating:    input.Rating,
		TourID:    input.TourID,
		UserID:    input.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("review_id", review.ID).Str("tour_id", review.TourID).Msg("review created")
	return review, nil
}

func (s *ReviewService) Get(ctx context.Context, id string) (*domain.Review, error) {
	return s.reviews.FindByID(ctx, id)
}

func (s *ReviewService) List(ctx context.Context, tourID string, query ports.ListQuery) ([]domain.Review, error) {
	return s.reviews.FindAll(ctx, tourID, query)
}

func (s *ReviewService) Update(ctx context.Context, id string, update ports.ReviewUpdate) (*domain.Review, error) {
	if update.Rating != nil && (*update.Rating < 1 || *update.Rating > 5) {
		return nil, domain.NewValidation("rating must be between 1 and 5")
	}
	return s.reviews.Update(ctx, id, update)
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	return s.reviews.Delete(ctx, id)
}
