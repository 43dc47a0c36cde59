package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/kinus-bit/bookStore/internal/utils"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the verified identity into the request context. The provided
// secret must match the one used when issuing tokens. Two checks run in
// order and both fail closed with 401 before any handler executes:
//
//  1. the Authorization header must start with the literal "Bearer "
//     (case-sensitive, exactly one space);
//  2. the remainder must pass signature and expiry verification.
//
// On success the claims are stored under "user_id" (uint64), "role" and
// "username" for downstream handlers and the role gate.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.VerifyAccessToken(secret, raw)
			if err != nil {
				// One message for malformed, tampered and expired tokens.
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid token"})
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)
			c.Set("username", claims.Username)
			return next(c)
		}
	}
}
