package repository

import (
	"context"
	"database/sql"

	"github.com/eventtix/ticketing-api/internal/model"
)

// PurchaseRepo manages persistence for ticket purchases.
type PurchaseRepo struct {
	db *sql.DB
}

// NewPurchaseRepo constructs a PurchaseRepo over the shared database handle.
func NewPurchaseRepo(db *sql.DB) *PurchaseRepo {
	return &PurchaseRepo{db: db}
}

// ListByShow returns all purchases recorded against the given show id,
// most recent first. An empty result is not an error; the handler decides
// how to report it.
func (r *PurchaseRepo) ListByShow(ctx context.Context, showID int64) ([]model.Purchase, error) {
	const q = `
	SELECT Id, EventID, Tickets, CustomerName, Email, CreditCard, PurchaseDate, ShowId
	FROM Purchases
	WHERE ShowId = ?
	ORDER BY PurchaseDate DESC`

	rows, err := r.db.QueryContext(ctx, q, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []model.Purchase
	for rows.Next() {
		var p model.Purchase
		if err := rows.Scan(
			&p.ID, &p.EventID, &p.Tickets, &p.CustomerName, &p.Email,
			&p.CreditCard, &p.PurchaseDate, &p.ShowID,
		); err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

// Create inserts a new purchase. The purchase timestamp is assigned by the
// database (NOW()), never taken from the caller. The generated id is not
// read back; the API does not expose it.
func (r *PurchaseRepo) Create(ctx context.Context, p *model.Purchase) error {
	const q = `
	INSERT INTO Purchases (EventID, Tickets, CustomerName, Email, CreditCard, PurchaseDate, ShowId)
	VALUES (?, ?, ?, ?, ?, NOW(), ?)`

	_, err := r.db.ExecContext(ctx, q,
		p.EventID, p.Tickets, p.CustomerName, p.Email, p.CreditCard, p.ShowID)
	return err
}
