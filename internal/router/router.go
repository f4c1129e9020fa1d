// Package router defines how HTTP routes are registered for the API.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/eventtix/ticketing-api/internal/handler"
)

// Register wires every route of the API onto the provided Echo instance.
// All resource routes live under the /api prefix; the health check sits at
// the root so probes are not subject to CORS or rate limiting. limiter may
// be nil when rate limiting is not configured.
func Register(e *echo.Echo, events *handler.EventHandler, purchases *handler.PurchaseHandler, origins []string, limiter echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	api := e.Group("/api")
	api.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	if limiter != nil {
		api.Use(limiter)
	}

	api.GET("/events", events.ListEvents)
	api.GET("/events/:id", events.GetEvent)
	api.GET("/events/:id/purchases", events.GetEventPurchases)
	api.POST("/purchases", purchases.CreatePurchase)
}
