package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wildtrails/tours-api/internal/core/domain"
	"github.com/wildtrails/tours-api/internal/core/ports"
)

// UserContextKey is where Protect stores the authenticated *domain.User.
const UserContextKey = "user"

// Protect authenticates the request with a bearer token (or the session
// cookie as a fallback) and attaches the resolved user to the context.
func Protect(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				if cookie, err := c.Cookie("jwt"); err == nil {
					token = cookie.Value
				}
			}
			if token == "" {
				return domain.NewUnauthenticated("You are not logged in! Please login to get access")
			}

			user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
