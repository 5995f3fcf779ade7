package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/wildtrails/tours-api/internal/core/domain"
)

// RestrictTo allows only the listed roles past. Must run after Protect.
func RestrictTo(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserContextKey).(*domain.User)
			if !ok || user == nil {
				return domain.NewUnauthenticated("You are not logged in! Please login to get access")
			}
			if _, ok := allowed[user.Role]; !ok {
				return domain.NewUnauthorized("You do not have permission to perform this action")
			}
			return next(c)
		}
	}
}
