package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// WriteRateLimiter throttles write requests per authenticated profile at the
// given hourly budget. Reads (GET/HEAD/OPTIONS) always pass. Unauthenticated
// writers fall back to being keyed by IP.
func WriteRateLimiter(perHour int) echo.MiddlewareFunc {
	store := eMiddleware.NewRateLimiterMemoryStoreWithConfig(eMiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(perHour) / 3600.0),
		Burst:     perHour,
		ExpiresIn: time.Hour,
	})
	return eMiddleware.RateLimiterWithConfig(eMiddleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			switch c.Request().Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return true
			}
			return false
		},
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			if id, ok := c.Get("profileID").(uint); ok {
				return fmt.Sprintf("profile:%d", id), nil
			}
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Rate limit exceeded")
		},
	})
}
