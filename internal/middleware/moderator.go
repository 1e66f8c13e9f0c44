package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/momus-app/momus/backend/pkg/config"
)

// ModeratorOnly restricts a route group to usernames in the configured
// moderator list. Must run after JWTAuthMiddleware.
func ModeratorOnly(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, ok := c.Get("username").(string)
			if !ok || !cfg.IsModerator(username) {
				return echo.NewHTTPError(http.StatusForbidden, "Moderator access required")
			}
			return next(c)
		}
	}
}
