// Package model defines the row structs scanned out of the database.
package model

import "database/sql"

// Event represents one row of the Show table joined with the names of its
// category, location and owner. The date columns are nullable in the schema,
// so they scan into sql.NullTime; formatting into display strings happens in
// the handler layer, never here.
type Event struct {
	ID            int64
	Title         string
	Description   string
	Date          sql.NullTime
	Time          sql.NullTime
	CreateDate    sql.NullTime
	ImageFilename string
	CategoryName  string
	LocationName  string
	OwnerName     string
}
