package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wildtrails/tours-api/internal/core/domain"
	"github.com/wildtrails/tours-api/internal/core/ports"
)

type stubTourService struct {
	listFn func(ctx context.Context, query ports.ListQuery) ([]domain.Tour, error)
}

func (s *stubTourService) Create(context.Context, ports.CreateTourInput) (*domain.Tour, error) {
	return nil, nil
}

func (s *stubTourService) Get(context.Context, string) (*domain.Tour, error) { return nil, nil }

func (s *stubTourService) List(ctx context.Context, query ports.ListQuery) ([]domain.Tour, error) {
	return s.listFn(ctx, query)
}

func (s *stubTourService) Update(context.Context, string, ports.TourUpdate) (*domain.Tour, error) {
	return nil, nil
}

func (s *stubTourService) Delete(context.Context, string) error { return nil }

func (s *stubTourService) Stats(context.Context) ([]domain.TourStats, error) { return nil, nil }

func (s *stubTourService) MonthlyPlan(context.Context, int) ([]domain.MonthlyPlanEntry, error) {
	return nil, nil
}

func TestTourHandler_TopTours_PresetsQuery(t *testing.T) {
	var got ports.ListQuery
	stub := &stubTourService{
		listFn: func(_ context.Context, query ports.ListQuery) ([]domain.Tour, error) {
			got = query
			return []domain.Tour{{ID: "tour_1"}}, nil
		},
	}
	h := NewTourHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tours/top-5-cheap", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.TopTours(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got["limit"] != "5" {
		t.Fatalf("limit not preset: %v", got)
	}
	if got["sort"] != "-ratings_average,price" {
		t.Fatalf("sort not preset: %v", got)
	}
	if got["fields"] != "name,ratings_average,price,summary,difficulty" {
		t.Fatalf("fields not preset: %v", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTourHandler_List_ForwardsQuery(t *testing.T) {
	var got ports.ListQuery
	stub := &stubTourService{
		listFn: func(_ context.Context, query ports.ListQuery) ([]domain.Tour, error) {
			got = query
			return nil, nil
		},
	}
	h := NewTourHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tours?difficulty=easy&price[gte]=500&page=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got["difficulty"] != "easy" || got["price[gte]"] != "500" || got["page"] != "2" {
		t.Fatalf("query not forwarded: %v", got)
	}
}

func TestTourHandler_MonthlyPlan_RejectsBadYear(t *testing.T) {
	h := NewTourHandler(&stubTourService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tours/mountly-plan/not-a-year", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("year")
	c.SetParamValues("not-a-year")

	err := h.MonthlyPlan(c)
	if !domain.IsKind(err, domain.KindBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}
