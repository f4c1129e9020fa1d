package model

import "time"

// Purchase is one row of the Purchases table. EventID and ShowID both
// reference the event; the schema carries them as two separate columns and
// the API accepts both, so the model keeps them apart as well.
// PurchaseDate is assigned by the database at insert time.
type Purchase struct {
	ID           int64
	EventID      int64
	Tickets      int
	CustomerName string
	Email        string
	CreditCard   string
	PurchaseDate time.Time
	ShowID       int64
}
