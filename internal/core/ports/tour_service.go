package ports

import (
	"context"

	"github.com/wildtrails/tours-api/internal/core/domain"
)

// CreateTourInput carries all data needed to create a tour.
type CreateTourInput struct {
	Name         string
	Duration     int
	MaxGroupSize int
	Difficulty   string
	Price        float64
	Summary      string
	Description  string
	StartDates   []string // RFC 3339 dates
}

type TourService interface {
	Create(ctx context.Context, input CreateTourInput) (*domain.Tour, error)
	Get(ctx context.Context, id string) (*domain.Tour, error)
	List(ctx context.Context, query ListQuery) ([]domain.Tour, error)
	Update(ctx context.Context, id string, update TourUpdate) (*domain.Tour, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) ([]domain.TourStats, error)
	MonthlyPlan(ctx context.Context, year int) ([]domain.MonthlyPlanEntry, error)
}
