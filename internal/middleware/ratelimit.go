package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/kinus-bit/bookStore/internal/config"
)

// NewRateLimiter returns a fixed-window rate limiter backed by Redis,
// applied to the credential endpoints so password guessing cannot run at
// wire speed. Each caller gets cfg.Limit requests per cfg.Window; the
// counter key combines client IP, authenticated user (or "guest") and
// route so one abusive caller cannot exhaust another's budget.
//
// When rate limiting is disabled or no Redis client is available the
// middleware is a pass-through. Redis errors also fail open: limiting is
// protection, not a dependency the API can refuse to serve without.
func NewRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf("%s:%s:%s:%s", cfg.Prefix, c.RealIP(), userKey(c), c.Path())
			ctx := c.Request().Context()

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if count == 1 {
				// First hit in this window; bound the counter's lifetime.
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}
			if count > int64(cfg.Limit) {
				retryAfter := cfg.Window
				if ttl, err := rdb.TTL(ctx, key).Result(); err == nil && ttl > 0 {
					retryAfter = ttl
				}
				c.Response().Header().Set("Retry-After",
					strconv.Itoa(int(retryAfter/time.Second)+1))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"message": "too many requests"})
			}
			return next(c)
		}
	}
}
