package gemeente

import (
	"context"

	"github.com/google/uuid"
)

// Store persists congregations and their bank details.
type Store interface {
	Create(ctx context.Context, g *Gemeente) error
	FindByID(ctx context.Context, id uuid.UUID) (*Gemeente, error)
	List(ctx context.Context) ([]*Gemeente, error)
	Update(ctx context.Context, g *Gemeente) error

	// SaveBank replaces the congregation's bank details.
	SaveBank(ctx context.Context, b *Bankbesonderhede) error
	FindBank(ctx context.Context, gemeenteID uuid.UUID) (*Bankbesonderhede, error)
}
