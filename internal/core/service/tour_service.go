package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wildtrails/tours-api/internal/core/domain"
	"github.com/wildtrails/tours-api/internal/core/ports"
)

// TourService orchestrates tour CRUD and the aggregate reports.
type TourService struct {
	tours ports.TourRepository
	log   zerolog.Logger
}

func NewTourService(tours ports.TourRepository, log zerolog.Logger) *TourService {
	return &TourService{tours: tours, log: log}
}

func (s *TourService) Create(ctx context.Context, input ports.CreateTourInput) (*domain.Tour, error) {
	starts := make([]time.Time, 0, len(input.StartDates))
	for _, raw := range input.StartDates {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, domain.NewValidation("start_dates must be RFC 3339 timestamps")
		}
		starts = append(starts, t.UTC())
	}

	now := time.Now().UTC()
	tour, err := s.tours.Create(ctx, &domain.Tour{
		Name:         input.Name,
		Duration:     input.Duration,
		MaxGroupSize: input.MaxGroupSize,
		Difficulty:   input.Difficulty,
		Price:        input.Price,
		Summary:      input.Summary,
		Description:  input.Description,
		StartDates:   starts,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("tour_id", tour.ID).Str("name", tour.Name).Msg("tour created")
	return tour, nil
}

func (s *TourService) Get(ctx context.Context, id string) (*domain.Tour, error) {
	return s.tours.FindByID(ctx, id)
}

func (s *TourService) List(ctx context.Context, query ports.ListQuery) ([]domain.Tour, error) {
	return s.tours.FindAll(ctx, query)
}

func (s *TourService) Update(ctx context.Context, id string, update ports.TourUpdate) (*domain.Tour, error) {
	return s.tours.Update(ctx, id, update)
}

func (s *TourService) Delete(ctx context.Context, id string) error {
	if err := s.tours.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("tour_id", id).Msg("tour deleted")
	return nil
}

func (s *TourService) Stats(ctx context.Context) ([]domain.TourStats, error) {
	return s.tours.Stats(ctx)
}

func (s *TourService) MonthlyPlan(ctx context.Context, year int) ([]domain.MonthlyPlanEntry, error) {
	if year < 1900 || year > 2200 {
		return nil, domain.NewBadRequest("year is out of range")
	}
	return s.tours.MonthlyPlan(ctx, year)
}
