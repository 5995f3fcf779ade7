package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/wildtrails/tours-api/internal/api/middleware"
	"github.com/wildtrails/tours-api/internal/core/domain"
	"github.com/wildtrails/tours-api/internal/core/ports"
)

// currentUser returns the user attached by the Protect middleware.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.NewUnauthenticated("You are not logged in! Please login to get access")
	}
	return user, nil
}

// listQuery flattens the request query string into the storage-layer shape.
// Repeated parameters keep their first value.
func listQuery(c echo.Context) ports.ListQuery {
	params := ports.ListQuery{}
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}
