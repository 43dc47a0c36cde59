package middleware // middleware provides shared request processing for handlers

import (
	"net/http" // standard HTTP status codes

	"github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RequireRole returns a middleware that enforces that the authenticated
// user holds one of the given roles. Roles correspond to the values stored
// in the token's "role" claim. A request whose role is not in the allowed
// set is aborted with 403 Forbidden. The gate only reads what JWTAuth has
// already attached, so it must be registered after JWTAuth on the same
// group; attaching it without a preceding identity check is a wiring
// error, and the missing context value then rejects every request.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
			}
			return next(c)
		}
	}
}
