package handler

import (
	"context"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eventtix/ticketing-api/internal/model"
	"github.com/eventtix/ticketing-api/internal/queue"
	"github.com/eventtix/ticketing-api/internal/utils"
)

// emailRe is the email shape accepted on purchase intake: something, an @,
// something, a dot, something, with no whitespace anywhere.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// PurchaseHandler serves the purchase intake endpoint. Publish, when set,
// is invoked after a successful insert to announce the purchase on the
// message broker; publishing is fire-and-forget and never affects the
// response.
type PurchaseHandler struct {
	Purchases PurchaseStore
	Publish   func(ctx context.Context, ev queue.PurchaseRecordedEvent) error
}

// createPurchaseRequest carries the six required intake fields. The
// numeric fields are pointers so "key absent" and "zero sent" can be told
// apart: a request carrying Tickets: 0 fails the greater-than-zero rule,
// not the presence rule.
type createPurchaseRequest struct {
	EventID      *int64 `json:"EventID"`
	Tickets      *int   `json:"Tickets"`
	CustomerName string `json:"CustomerName"`
	Email        string `json:"Email"`
	CreditCard   string `json:"CreditCard"`
	ShowID       *int64 `json:"ShowId"`
}

// CreatePurchase handles POST /api/purchases. Validation short-circuits in
// order: presence of all six fields, email shape, then ticket count. The
// purchase timestamp is assigned by the database at insert time.
func (h *PurchaseHandler) CreatePurchase(c echo.Context) error {
	var req createPurchaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}

	if req.EventID == nil || *req.EventID == 0 ||
		req.Tickets == nil ||
		req.CustomerName == "" || req.Email == "" || req.CreditCard == "" ||
		req.ShowID == nil || *req.ShowID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}
	if !emailRe.MatchString(req.Email) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid email format"})
	}
	if *req.Tickets <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Tickets must be greater than zero"})
	}

	p := model.Purchase{
		EventID:      *req.EventID,
		Tickets:      *req.Tickets,
		CustomerName: req.CustomerName,
		Email:        req.Email,
		CreditCard:   req.CreditCard,
		ShowID:       *req.ShowID,
	}
	if err := h.Purchases.Create(c.Request().Context(), &p); err != nil {
		log.Printf("purchases: insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error saving purchase"})
	}

	if h.Publish != nil {
		ev := queue.PurchaseRecordedEvent{
			EventID:      p.EventID,
			ShowID:       p.ShowID,
			Tickets:      p.Tickets,
			CustomerName: p.CustomerName,
			Email:        p.Email,
			CreditCard:   utils.MaskCard(p.CreditCard),
			RecordedAt:   time.Now().UTC().Format(time.RFC3339),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			// errors are already logged by the publisher; the purchase is saved either way
			_ = h.Publish(ctx, ev)
		}()
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Purchase saved successfully"})
}
