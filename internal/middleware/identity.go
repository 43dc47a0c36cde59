package middleware

// identity.go defines helpers shared across middleware files. The rate
// limiter keys its buckets per caller; userKey turns the identity that
// JWTAuth attached to the context into a stable string for that purpose.

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// userKey returns the authenticated user's id as a string, or "guest"
// when the request carries no verified identity (public routes such as
// login and register run before JWTAuth).
func userKey(c echo.Context) string {
	if id, ok := c.Get("user_id").(uint64); ok {
		return strconv.FormatUint(id, 10)
	}
	return "guest"
}
