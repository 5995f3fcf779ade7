package ports

import (
	"context"

	"github.com/wildtrails/tours-api/internal/core/domain"
)

// ReviewUpdate holds the patchable review fields; nil means unchanged.
type ReviewUpdate struct {
	Content *string
	Rating  *int
}

// ReviewRepository defines review persistence. FindAll scopes to a tour when
// tourID is non-empty.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	FindAll(ctx context.Context, tourID string, query ListQuery) ([]domain.Review, error)
	Update(ctx context.Context, id string, update ReviewUpdate) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
}
