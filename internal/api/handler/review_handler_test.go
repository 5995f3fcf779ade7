package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wildtrails/tours-api/internal/api/middleware"
	"github.com/wildtrails/tours-api/internal/core/domain"
	"github.com/wildtrails/tours-api/internal/core/ports"
)

type stubReviewService struct {
	createFn func(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error)
	listFn   func(ctx context.Context, tourID string, query ports.ListQuery) ([]domain.Review, error)
}

func (s *stubReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	return s.createFn(ctx, input)
}

func (s *stubReviewService) Get(context.Context, string) (*domain.Review, error) { return nil, nil }

func (s *stubReviewService) List(ctx context.Context, tourID string, query ports.ListQuery) ([]domain.Review, error) {
	return s.listFn(ctx, tourID, query)
}

func (s *stubReviewService) Update(context.Context, string, ports.ReviewUpdate) (*domain.Review, error) {
	return nil, nil
}

func (s *stubReviewService) Delete(context.Context, string) error { return nil }

func TestReviewHandler_Create_NestedRouteWins(t *testing.T) {
	var got ports.CreateReviewInput
	stub := &stubReviewService{
		createFn: func(_ context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
			got = input
			return &domain.Review{ID: "review_1"}, nil
		},
	}
	h := NewReviewHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	body := `{"content":"Great trip","rating":5,"tour":"tour_from_body"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tours/tour_9/reviews", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("tourId")
	c.SetParamValues("tour_9")
	c.Set(middleware.UserContextKey, &domain.User{ID: "user_1", Role: domain.RoleUser})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.TourID != "tour_9" {
		t.Fatalf("nested tour id should win over body: %s", got.TourID)
	}
	if got.UserID != "user_1" {
		t.Fatalf("author should default to the session user: %s", got.UserID)
	}
}

func TestReviewHandler_Create_FlatRouteUsesBodyTour(t *testing.T) {
	var got ports.CreateReviewInput
	stub := &stubReviewService{
		createFn: func(_ context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
			got = input
			return &domain.Review{ID: "review_1"}, nil
		},
	}
	h := NewReviewHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	body := `{"content":"Great trip","rating":4,"tour":"tour_from_body"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.UserContextKey, &domain.User{ID: "user_1", Role: domain.RoleUser})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.TourID != "tour_from_body" {
		t.Fatalf("body tour id not used: %s", got.TourID)
	}
}

func TestReviewHandler_Create_RequiresSession(t *testing.T) {
	stub := &stubReviewService{
		createFn: func(context.Context, ports.CreateReviewInput) (*domain.Review, error) {
			t.Fatalf("service should not be called without a session")
			return nil, nil
		},
	}
	h := NewReviewHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(`{"content":"x","rating":3}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	if !domain.IsKind(err, domain.KindUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestReviewHandler_List_ScopesToTour(t *testing.T) {
	var gotTour string
	stub := &stubReviewService{
		listFn: func(_ context.Context, tourID string, _ ports.ListQuery) ([]domain.Review, error) {
			gotTour = tourID
			return []domain.Review{{ID: "review_1"}}, nil
		},
	}
	h := NewReviewHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tours/tour_9/reviews", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("tourId")
	c.SetParamValues("tour_9")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotTour != "tour_9" {
		t.Fatalf("tour scope not applied: %s", gotTour)
	}
}
