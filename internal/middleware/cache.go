package middleware

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/kinus-bit/bookStore/internal/config"
)

// cachedResponse is the envelope stored in Redis for one cache entry.
// Only successful JSON responses are cached, so status and content type
// are enough to replay them faithfully.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// bodyCapture tees the response body so it can be stored after the
// handler has written it to the client.
type bodyCapture struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *bodyCapture) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// cacheKey derives a stable Redis key from the route and query string.
// The tail is hashed so long query strings cannot bloat the keyspace.
func cacheKey(prefix string, c echo.Context) string {
	tail := c.Path() + "?" + c.Request().URL.RawQuery
	sum := sha1.Sum([]byte(tail))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// NewResponseCache returns a middleware that serves catalog reads from
// Redis. GET responses with status 200 are stored for cfg.TTL; anything
// else passes through untouched. Bodies above cfg.MaxBodyBytes are not
// cached. When caching is disabled or Redis is unavailable the middleware
// is a pass-through, and Redis errors on the hot path fall back to the
// handler rather than failing the request.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			key := cacheKey(cfg.Prefix, c)
			ctx := c.Request().Context()

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var cached cachedResponse
				if err := json.Unmarshal(raw, &cached); err == nil {
					c.Response().Header().Set(echo.HeaderContentType, cached.ContentType)
					c.Response().Header().Set("X-Cache", "HIT")
					return c.Blob(cached.Status, cached.ContentType, cached.Body)
				}
			}

			cw := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = cw
			if err := next(c); err != nil {
				return err
			}

			if cw.status != http.StatusOK {
				return nil
			}
			if cfg.MaxBodyBytes > 0 && cw.buf.Len() > cfg.MaxBodyBytes {
				return nil
			}
			ct := c.Response().Header().Get(echo.HeaderContentType)
			if !strings.HasPrefix(ct, echo.MIMEApplicationJSON) {
				return nil
			}
			entry, err := json.Marshal(cachedResponse{
				Status:      cw.status,
				ContentType: ct,
				Body:        cw.buf.Bytes(),
			})
			if err == nil {
				_ = rdb.Set(ctx, key, entry, ttl).Err()
			}
			return nil
		}
	}
}
