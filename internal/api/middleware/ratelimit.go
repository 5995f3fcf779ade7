package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wildtrails/tours-api/internal/api/metrics"
)

// Allower decides whether a caller identified by key may proceed.
type Allower interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit throttles clients by IP. A limiter outage fails open so the API
// does not go down with its Redis.
func RateLimit(limiter Allower, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("ip", c.RealIP()).Msg("rate limiter unavailable")
				return next(c)
			}
			if !ok {
				metrics.RateLimitRejections.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests,
					"Too many request from this IP, please try again in an hour!")
			}
			return next(c)
		}
	}
}
