package verhouding

import (
	"context"

	"github.com/google/uuid"
)

// Store persists relationships.
type Store interface {
	Create(ctx context.Context, v *Verhouding) error
	FindByID(ctx context.Context, id uuid.UUID) (*Verhouding, error)
	// ListForLidmaat returns relationships where the member is either
	// endpoint, newest first.
	ListForLidmaat(ctx context.Context, lidmaatID uuid.UUID) ([]*Verhouding, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteForLidmaat removes every relationship touching the member and
	// returns how many were removed.
	DeleteForLidmaat(ctx context.Context, lidmaatID uuid.UUID) (int, error)
}
