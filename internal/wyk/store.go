package wyk

import (
	"context"

	"github.com/google/uuid"
)

// Store persists districts and visitation points together because their
// lifecycles are coupled: deleting a wyk removes its besoekpunte. Clearing
// member references is the service's job, not the store's.
type Store interface {
	CreateWyk(ctx context.Context, w *Wyk) error
	FindWyk(ctx context.Context, id uuid.UUID) (*Wyk, error)
	ListWyke(ctx context.Context, gemeenteID uuid.UUID) ([]*Wyk, error)
	UpdateWyk(ctx context.Context, w *Wyk) error
	// DeleteWyk removes the district and all its besoekpunte.
	DeleteWyk(ctx context.Context, id uuid.UUID) error

	CreateBesoekpunt(ctx context.Context, b *Besoekpunt) error
	FindBesoekpunt(ctx context.Context, id uuid.UUID) (*Besoekpunt, error)
	ListBesoekpunte(ctx context.Context, gemeenteID uuid.UUID) ([]*Besoekpunt, error)
	ListBesoekpunteVirWyk(ctx context.Context, wykID uuid.UUID) ([]*Besoekpunt, error)
	UpdateBesoekpunt(ctx context.Context, b *Besoekpunt) error
	DeleteBesoekpunt(ctx context.Context, id uuid.UUID) error
}
