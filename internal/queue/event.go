// Package queue defines message payloads exchanged over the message broker
// and the background consumer that drains them.
package queue

// PurchaseRecordedEvent is published after a purchase row is inserted. It
// carries enough for downstream consumers to log or notify without querying
// the primary database. CreditCard is masked before the event is built;
// the full number never crosses the broker.
type PurchaseRecordedEvent struct {
	EventID      int64  `json:"event_id"`
	ShowID       int64  `json:"show_id"`
	Tickets      int    `json:"tickets"`
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	CreditCard   string `json:"credit_card"`
	RecordedAt   string `json:"recorded_at"`
}
