package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/cinebook/movie-booking/internal/booking"
	"github.com/cinebook/movie-booking/internal/config"
	"github.com/cinebook/movie-booking/internal/handler"
	"github.com/cinebook/movie-booking/internal/middleware"
	"github.com/cinebook/movie-booking/internal/queue"
	"github.com/cinebook/movie-booking/internal/repository"
	"github.com/cinebook/movie-booking/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()
	cfg := config.Load()

	movies, shows := repository.Seed()
	engine := booking.NewEngine(movies, shows)

	e := echo.New()
	e.HideBanner = true

	// Redis is optional: without it the limiter and cache become passthroughs
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable: rate limiting and catalog caching disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterBrowse(e, &handler.PublicHandler{MovieRepo: movies, ShowRepo: shows}, cacheMW)
	router.RegisterBooking(e, handler.NewBookingHandler(engine))

	// background consumer mirrors confirmations into logs/booking.log
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
