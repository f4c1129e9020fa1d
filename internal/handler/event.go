// Package handler exposes the HTTP handlers of the ticketing API. Handlers
// depend on small store interfaces rather than concrete repositories so
// tests can substitute mocks.
package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eventtix/ticketing-api/internal/model"
	"github.com/eventtix/ticketing-api/internal/repository"
	"github.com/eventtix/ticketing-api/internal/utils"
)

// EventStore is the read access the event handlers need.
type EventStore interface {
	ListEvents(ctx context.Context) ([]model.Event, error)
	GetEventByID(ctx context.Context, id int64) (*model.Event, error)
}

// PurchaseStore is the purchase access shared by the event and purchase
// handlers.
type PurchaseStore interface {
	ListByShow(ctx context.Context, showID int64) ([]model.Purchase, error)
	Create(ctx context.Context, p *model.Purchase) error
}

// EventHandler serves the read-only event endpoints.
type EventHandler struct {
	Events    EventStore
	Purchases PurchaseStore
}

// eventResponse is the wire shape of one event. The key casing mirrors the
// database columns because clients of this API consume them as-is.
type eventResponse struct {
	ID            int64   `json:"Id"`
	Title         string  `json:"Title"`
	Description   string  `json:"Description"`
	Date          *string `json:"Date"`
	Time          *string `json:"Time"`
	CreateDate    *string `json:"CreateDate"`
	ImageFilename string  `json:"ImageFilename"`
	CategoryName  string  `json:"CategoryName"`
	LocationName  string  `json:"LocationName"`
	OwnerName     string  `json:"OwnerName"`
}

// purchaseResponse is the wire shape of one purchase. CreditCard is always
// masked before it reaches this struct.
type purchaseResponse struct {
	ID           int64     `json:"Id"`
	EventID      int64     `json:"EventID"`
	Tickets      int       `json:"Tickets"`
	CustomerName string    `json:"CustomerName"`
	Email        string    `json:"Email"`
	CreditCard   string    `json:"CreditCard"`
	PurchaseDate time.Time `json:"PurchaseDate"`
	ShowID       int64     `json:"ShowId"`
}

func toEventResponse(e model.Event) eventResponse {
	return eventResponse{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		Date:          utils.FormatDate(e.Date),
		Time:          utils.FormatTime(e.Time),
		CreateDate:    utils.FormatDate(e.CreateDate),
		ImageFilename: e.ImageFilename,
		CategoryName:  e.CategoryName,
		LocationName:  e.LocationName,
		OwnerName:     e.OwnerName,
	}
}

// ListEvents handles GET /api/events. It returns every event ordered by
// date ascending; an empty store yields 200 with an empty array, not 404.
func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.Events.ListEvents(c.Request().Context())
	if err != nil {
		log.Printf("events: list query failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error fetching events"})
	}

	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return c.JSON(http.StatusOK, out)
}

// GetEvent handles GET /api/events/:id.
func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	e, err := h.Events.GetEventByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Event not found"})
		}
		log.Printf("events: get query failed for id=%d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error fetching event"})
	}
	return c.JSON(http.StatusOK, toEventResponse(*e))
}

// GetEventPurchases handles GET /api/events/:id/purchases. Card numbers are
// masked before leaving the process; an event with no purchases reports 404
// with a "message" payload, which differs from the event 404 shape but is
// what this API's clients already rely on.
func (h *EventHandler) GetEventPurchases(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	purchases, err := h.Purchases.ListByShow(c.Request().Context(), id)
	if err != nil {
		log.Printf("events: purchases query failed for id=%d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error fetching purchases for event"})
	}
	if len(purchases) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "No purchases found for this event"})
	}

	out := make([]purchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, purchaseResponse{
			ID:           p.ID,
			EventID:      p.EventID,
			Tickets:      p.Tickets,
			CustomerName: p.CustomerName,
			Email:        p.Email,
			CreditCard:   utils.MaskCard(p.CreditCard),
			PurchaseDate: p.PurchaseDate,
			ShowID:       p.ShowID,
		})
	}
	return c.JSON(http.StatusOK, out)
}
