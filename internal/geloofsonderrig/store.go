package geloofsonderrig

import (
	"context"

	"github.com/google/uuid"
)

// Store persists payments. A jaar of 0 lists all years.
type Store interface {
	Append(ctx context.Context, b *Betaling) error
	List(ctx context.Context, gemeenteID uuid.UUID, jaar int) ([]*Betaling, error)
}
