package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/stablemgr/stableapi/store"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	store store.Store
	newID func() string
	now   func() time.Time
}

// New creates a Handler over the given store with uuid identifiers and
// UTC wall-clock time.
func New(s store.Store) *Handler {
	return &Handler{
		store: s,
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}
