package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/eventtix/ticketing-api/internal/config"
	"github.com/eventtix/ticketing-api/internal/database"
	"github.com/eventtix/ticketing-api/internal/handler"
	"github.com/eventtix/ticketing-api/internal/middleware"
	"github.com/eventtix/ticketing-api/internal/queue"
	"github.com/eventtix/ticketing-api/internal/repository"
	"github.com/eventtix/ticketing-api/internal/router"
	queue_publisher "github.com/eventtix/ticketing-api/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBTLS)
	if err != nil {
		// Not fatal: the handle is kept and individual queries fail until
		// the database becomes reachable.
		log.Printf("database: connection failed: %v (continuing, queries will fail until it recovers)", err)
	} else {
		log.Printf("connected to database %s", cfg.DBName)
	}

	events := &handler.EventHandler{
		Events:    repository.NewEventRepo(db),
		Purchases: repository.NewPurchaseRepo(db),
	}
	purchases := &handler.PurchaseHandler{
		Purchases: repository.NewPurchaseRepo(db),
		Publish:   queue_publisher.PublishPurchaseRecorded,
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis: unavailable, rate limiting disabled")
	}
	limiter := middleware.NewFixedWindow(config.LoadRateLimitConfig(), rdb)

	if os.Getenv("PURCHASE_CONSUMER") == "true" {
		go func() {
			if err := queue.StartPurchaseConsumer(); err != nil {
				log.Printf("purchase-consumer: stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	router.Register(e, events, purchases, cfg.CORSOrigins, limiter)

	log.Printf("API running on port %s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
