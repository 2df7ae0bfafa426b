// Package store holds the authoritative horse collection behind a small
// interface with two backends: an in-memory slice (default) and Postgres
// via bun.
package store

import (
	"context"
	"errors"

	"github.com/stablemgr/stableapi/models"
)

// ErrNotFound is returned for unknown identifiers, and by Get for forged
// records (forging hides a record from direct lookups).
var ErrNotFound = errors.New("horse not found")

// Store is the horse collection contract. Identifier generation lives with
// the caller; Insert assumes the id is unique.
type Store interface {
	// ListActive returns every non-forged record in store order.
	ListActive(ctx context.Context) ([]models.Horse, error)
	// Get returns the record for id, treating forged records as absent.
	Get(ctx context.Context, id string) (models.Horse, error)
	// Lookup returns the record for id regardless of status. Used by the
	// forge path, which must see already-forged records.
	Lookup(ctx context.Context, id string) (models.Horse, error)
	// Insert appends a new record.
	Insert(ctx context.Context, h models.Horse) error
	// Replace overwrites the record with the given id in place.
	Replace(ctx context.Context, id string, h models.Horse) error
	// NextOrder returns max(order)+1 over active ordered records, or 0.
	NextOrder(ctx context.Context) (int, error)
}
