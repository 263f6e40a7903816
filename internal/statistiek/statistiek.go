// Package statistiek records congregation membership movements (gains and
// losses) in the gemeente_statistiek_logs table.
package statistiek

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Tipe is the direction of a membership movement.
type Tipe string

const (
	TipeVermeerdering Tipe = "vermeerdering"
	TipeVermindering  Tipe = "vermindering"
)

// Known redes for movements.
const (
	RedeOorlede = "oorlede"
	RedeNuut    = "nuwe_lidmaat"
	RedeOordrag = "oordrag"
)

// Inskrywing is one membership movement record.
type Inskrywing struct {
	ID         uuid.UUID `json:"id"`
	GemeenteID uuid.UUID `json:"gemeente_id"`
	Datum      time.Time `json:"datum"`
	Tipe       Tipe      `json:"tipe"`
	Rede       string    `json:"rede"`
	LidmaatID  uuid.UUID `json:"lidmaat_id,omitempty"`
	Beskrywing string    `json:"beskrywing,omitempty"`
}

// Store persists statistics entries.
type Store interface {
	Append(ctx context.Context, inskrywing Inskrywing) error
	ListByGemeente(ctx context.Context, gemeenteID uuid.UUID) ([]Inskrywing, error)
}
