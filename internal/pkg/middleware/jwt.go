package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/saputra/antar/internal/utils"
)

// RequireRole restricts a route to callers with the given role. It runs
// after token validation, which stores the role under user_role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRole, _ := c.Get("user_role").(string)
			if userRole != role {
				return utils.ForbiddenResponse(c, fmt.Sprintf("Requires %s role", role))
			}
			return next(c)
		}
	}
}
