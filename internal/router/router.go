package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework used for routing
	"github.com/redis/go-redis/v9"

	"github.com/kinus-bit/bookStore/internal/config"
	"github.com/kinus-bit/bookStore/internal/handler"
	"github.com/kinus-bit/bookStore/internal/middleware"
)

// RegisterRoutes registers routes that require no authentication.
// Currently it exposes only a health check for load balancers and
// monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth wires the credential endpoints and the protected /v1/me
// route. Register and login live outside any token gate (they mint the
// tokens in the first place) but sit behind the Redis rate limiter so
// password guessing cannot run at wire speed.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, rl config.RateLimitConfig, rdb *redis.Client, jwtSecret string) {
	g := e.Group("/auth")
	g.Use(middleware.NewRateLimiter(rl, rdb))
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterBooks wires catalog routes. Reads require any valid token and
// go through the response cache; mutations additionally require the
// admin role. The role gate is registered after JWTAuth on the same
// group so it only ever sees requests with a verified identity attached.
func RegisterBooks(e *echo.Echo, b *handler.BookHandler, cc config.CacheConfig, rdb *redis.Client, jwtSecret string) {
	read := e.Group("/v1/books")
	read.Use(middleware.JWTAuth(jwtSecret))
	read.GET("", b.List, middleware.NewResponseCache(cc, rdb))
	read.GET("/:id", b.Get, middleware.NewResponseCache(cc, rdb))

	write := e.Group("/v1/books")
	write.Use(middleware.JWTAuth(jwtSecret))
	write.Use(middleware.RequireRole("admin"))
	write.POST("", b.Create)
	write.PUT("/:id", b.Update)
	write.DELETE("/:id", b.Delete)
}

// RegisterUsers wires the admin-only user management routes.
func RegisterUsers(e *echo.Echo, u *handler.UserHandler, jwtSecret string) {
	g := e.Group("/v1/users")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("admin"))
	g.GET("", u.List)
	g.GET("/:id", u.Get)
	g.POST("", u.Create)
	g.PUT("/:id", u.Update)
	g.DELETE("/:id", u.Delete)
}

// RegisterOrders wires checkout. Any authenticated user may place an
// order; no role gate applies.
func RegisterOrders(e *echo.Echo, o *handler.OrderHandler, jwtSecret string) {
	g := e.Group("/v1/orders")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.POST("/checkout", o.Checkout)
}
