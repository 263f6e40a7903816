package oudit

import (
	"context"

	"github.com/google/uuid"
)

// Store persists audit entries. Append-only: entries are never mutated or
// deleted and there is no retention logic.
type Store interface {
	Append(ctx context.Context, entry Entry) error
	ListForLidmaat(ctx context.Context, lidmaatID uuid.UUID) ([]Entry, error)
}
