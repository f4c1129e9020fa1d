package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/eventtix/ticketing-api/internal/model"
)

// eventColumns is the projection shared by every event query: the Show row
// plus the display names pulled in from Category, Location and Owner. The
// joins are inner joins on purpose: an event missing any of the three
// linked rows is excluded from results entirely.
const eventColumns = `
	SELECT s.Id, s.Title, s.Description, s.Date, s.Time, s.CreateDate, s.ImageFilename,
	       c.Name AS CategoryName,
	       l.Name AS LocationName,
	       o.Name AS OwnerName
	FROM ` + "`Show`" + ` s
	JOIN Category c ON s.CategoryId = c.Id
	JOIN Location l ON s.LocationId = l.Id
	JOIN Owner o ON s.OwnerId = o.Id`

// EventRepo manages read access to events. Events are created and updated
// out-of-band; this API only projects them.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo over the shared database handle.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

// ListEvents returns every event joined with its category, location and
// owner names, ordered by event date ascending.
func (r *EventRepo) ListEvents(ctx context.Context) ([]model.Event, error) {
	const q = eventColumns + `
	ORDER BY s.Date ASC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.CreateDate,
			&e.ImageFilename, &e.CategoryName, &e.LocationName, &e.OwnerName,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetEventByID returns the event with the given id, or ErrEventNotFound
// when no row matches.
func (r *EventRepo) GetEventByID(ctx context.Context, id int64) (*model.Event, error) {
	const q = eventColumns + `
	WHERE s.Id = ?`

	var e model.Event
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.CreateDate,
		&e.ImageFilename, &e.CategoryName, &e.LocationName, &e.OwnerName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
