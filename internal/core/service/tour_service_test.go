package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wildtrails/tours-api/internal/core/domain"
	"github.com/wildtrails/tours-api/internal/core/ports"
)

type stubTourRepo struct {
	tours     map[string]*domain.Tour
	nextID    int
	planYear  int
	planCalls int
}

func newStubTourRepo() *stubTourRepo {
	return &stubTourRepo{tours: make(map[string]*domain.Tour)}
}

func (r *stubTourRepo) Create(_ context.Context, tour *domain.Tour) (*domain.Tour, error) {
	r.nextID++
	clone := *tour
	clone.ID = "tour_" + strconv.Itoa(r.nextID)
	r.tours[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTourRepo) FindByID(_ context.Context, id string) (*domain.Tour, error) {
	t, ok := r.tours[id]
	if !ok {
		return nil, domain.NewNotFound("No tour found with that ID")
	}
	clone := *t
	return &clone, nil
}

func (r *stubTourRepo) FindAll(_ context.Context, _ ports.ListQuery) ([]domain.Tour, error) {
	out := make([]domain.Tour, 0, len(r.tours))
	for _, t := range r.tours {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTourRepo) Update(_ context.Context, id string, update ports.TourUpdate) (*domain.Tour, error) {
	t, ok := r.tours[id]
	if !ok {
		return nil, domain.NewNotFound("No tour found with that ID")
	}
	if update.Price != nil {
		t.Price = *update.Price
	}
	clone := *t
	return &clone, nil
}

func (r *stubTourRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tours[id]; !ok {
		return domain.NewNotFound("No tour found with that ID")
	}
	delete(r.tours, id)
	return nil
}

func (r *stubTourRepo) Stats(context.Context) ([]domain.TourStats, error) { return nil, nil }

func (r *stubTourRepo) MonthlyPlan(_ context.Context, year int) ([]domain.MonthlyPlanEntry, error) {
	r.planCalls++
	r.planYear = year
	return nil, nil
}

func TestTourService_Create_ParsesStartDates(t *testing.T) {
	repo := newStubTourRepo()
	svc := NewTourService(repo, zerolog.Nop())

	tour, err := svc.Create(context.Background(), ports.CreateTourInput{
		Name:         "The Forest Hiker",
		Duration:     5,
		MaxGroupSize: 25,
		Difficulty:   "easy",
		Price:        497,
		Summary:      "Breathtaking hike",
		StartDates:   []string{"2026-04-25T09:00:00Z", "2026-07-20T09:00:00Z"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(tour.StartDates) != 2 {
		t.Fatalf("expected 2 start dates, got %d", len(tour.StartDates))
	}
	want := time.Date(2026, 4, 25, 9, 0, 0, 0, time.UTC)
	if !tour.StartDates[0].Equal(want) {
		t.Fatalf("unexpected first start date: %v", tour.StartDates[0])
	}
}

func TestTourService_Create_RejectsBadDates(t *testing.T) {
	svc := NewTourService(newStubTourRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateTourInput{
		Name:       "The Forest Hiker",
		Duration:   5,
		Difficulty: "easy",
		Price:      497,
		Summary:    "Breathtaking hike",
		StartDates: []string{"25-04-2026"},
	})
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTourService_MonthlyPlan_YearBounds(t *testing.T) {
	repo := newStubTourRepo()
	svc := NewTourService(repo, zerolog.Nop())

	for _, year := range []int{1899, 2201, -5} {
		if _, err := svc.MonthlyPlan(context.Background(), year); !domain.IsKind(err, domain.KindBadRequest) {
			t.Fatalf("year %d: expected bad request, got %v", year, err)
		}
	}
	if repo.planCalls != 0 {
		t.Fatalf("repository reached with out-of-range year")
	}

	if _, err := svc.MonthlyPlan(context.Background(), 2026); err != nil {
		t.Fatalf("valid year rejected: %v", err)
	}
	if repo.planYear != 2026 {
		t.Fatalf("year not forwarded: %d", repo.planYear)
	}
}
