// Package repository contains the SQL data access layer. Sentinel errors
// defined here let handlers distinguish "row does not exist" from an
// infrastructure failure and pick the right HTTP status.
package repository

import "errors"

// ErrEventNotFound is returned when an event lookup matches no row.
// Handlers translate it into a 404 response.
var ErrEventNotFound = errors.New("event not found")
