package kennisgewing

import (
	"context"

	"github.com/google/uuid"
)

// Store keeps the notification send history.
type Store interface {
	Append(ctx context.Context, k *Kennisgewing) error
	// ListRecent returns the newest entries first, capped at limit.
	ListRecent(ctx context.Context, gemeenteID uuid.UUID, limit int) ([]*Kennisgewing, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
