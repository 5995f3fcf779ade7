package ports

import (
	"context"

	"github.com/wildtrails/tours-api/internal/core/domain"
)

// TourUpdate holds the patchable tour fields; nil means unchanged.
type TourUpdate struct {
	Name         *string
	Duration     *int
	MaxGroupSize *int
	Difficulty   *string
	Price        *float64
	Summary      *string
	Description  *string
}

// TourRepository defines tour persistence and the aggregate reports.
type TourRepository interface {
	Create(ctx context.Context, tour *domain.Tour) (*domain.Tour, error)
	FindByID(ctx context.Context, id string) (*domain.Tour, error)
	FindAll(ctx context.Context, query ListQuery) ([]domain.Tour, error)
	Update(ctx context.Context, id string, update TourUpdate) (*domain.Tour, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) ([]domain.TourStats, error)
	MonthlyPlan(ctx context.Context, year int) ([]domain.MonthlyPlanEntry, error)
}
