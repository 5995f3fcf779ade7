package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wildtrails/tours-api/internal/core/domain"
	"github.com/wildtrails/tours-api/internal/core/ports"
)

type stubAuthService struct {
	authenticateFn func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthService) SignUp(context.Context, ports.SignUpInput) (*domain.User, string, error) {
	return nil, "", nil
}

func (s *stubAuthService) SignIn(context.Context, string, string) (*domain.User, string, error) {
	return nil, "", nil
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	return s.authenticateFn(ctx, token)
}

func (s *stubAuthService) ForgotPassword(context.Context, string) error { return nil }

func (s *stubAuthService) ResetPassword(context.Context, string, string, string) (*domain.User, string, error) {
	return nil, "", nil
}

func (s *stubAuthService) UpdatePassword(context.Context, string, string, string, string) (*domain.User, string, error) {
	return nil, "", nil
}

func TestProtect_ValidBearerToken(t *testing.T) {
	e := echo.New()
	want := &domain.User{ID: "user_1", Role: domain.RoleUser}
	stub := &stubAuthService{
		authenticateFn: func(_ context.Context, token string) (*domain.User, error) {
			if token != "token123" {
				t.Fatalf("unexpected token: %s", token)
			}
			return want, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Protect(stub)(func(c echo.Context) error {
		called = true
		if c.Get(UserContextKey) != want {
			t.Fatalf("user not attached to context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestProtect_CookieFallback(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		authenticateFn: func(_ context.Context, token string) (*domain.User, error) {
			if token != "cookie-token" {
				t.Fatalf("unexpected token: %s", token)
			}
			return &domain.User{ID: "user_2"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "cookie-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Protect(stub)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestProtect_MissingToken(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		authenticateFn: func(context.Context, string) (*domain.User, error) {
			t.Fatalf("should not authenticate without a token")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Protect(stub)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if !domain.IsKind(err, domain.KindUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestProtect_MalformedHeader(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		authenticateFn: func(context.Context, string) (*domain.User, error) {
			t.Fatalf("should not authenticate a malformed header")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Protect(stub)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if !domain.IsKind(err, domain.KindUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestProtect_AuthFailurePassesThrough(t *testing.T) {
	e := echo.New()
	want := domain.NewUnauthenticated("Expired Token! Please login again")
	stub := &stubAuthService{
		authenticateFn: func(context.Context, string) (*domain.User, error) {
			return nil, want
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer stale")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Protect(stub)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != want {
		t.Fatalf("expected service error unchanged, got %v", err)
	}
}
