package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/kinus-bit/bookStore/internal/config"
	"github.com/kinus-bit/bookStore/internal/database"
	"github.com/kinus-bit/bookStore/internal/handler"
	"github.com/kinus-bit/bookStore/internal/queue"
	"github.com/kinus-bit/bookStore/internal/repository"
	"github.com/kinus-bit/bookStore/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	books := repository.NewBookRepo(db)

	// Redis is optional: a nil client turns the rate limiter and the
	// response cache into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and caching disabled")
	}
	rlCfg := config.LoadRateLimitConfig()
	cacheCfg := config.LoadCacheConfig()

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users), rlCfg, rdb, cfg.JWTSecret)
	router.RegisterBooks(e, handler.NewBookHandler(books), cacheCfg, rdb, cfg.JWTSecret)
	router.RegisterUsers(e, handler.NewUserHandler(cfg, users), cfg.JWTSecret)
	router.RegisterOrders(e, handler.NewOrderHandler(books), cfg.JWTSecret)

	// Background consumer appending placed orders to logs/orders.log.
	// Runs its own reconnect loop; a broker outage never stops the API.
	go func() {
		if err := queue.StartOrderConsumer(); err != nil {
			log.Printf("order consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
