// Package verhouding links member records to each other (married, child,
// parent, or a free-form relation).
package verhouding

import (
	"time"

	"github.com/google/uuid"
)

// Tipe classifies a relationship between two members.
type Tipe string

const (
	TipeGetroud Tipe = "getroud"
	TipeKind    Tipe = "kind"
	TipeOuer    Tipe = "ouer"
	TipeAnder   Tipe = "ander"
)

var tipeLabels = map[Tipe]string{
	TipeGetroud: "Getroud",
	TipeKind:    "Kind",
	TipeOuer:    "Ouer",
	TipeAnder:   "Ander",
}

// Label returns the display name for a relationship type.
func (t Tipe) Label() string {
	if l, ok := tipeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Valid reports whether the type is one of the known types.
func (t Tipe) Valid() bool {
	_, ok := tipeLabels[t]
	return ok
}

// Verhouding is one directed link from a member to a relative. Queries treat
// it as symmetric. The "ander" type carries its meaning in Beskrywing.
type Verhouding struct {
	ID         uuid.UUID `json:"id"`
	LidmaatID  uuid.UUID `json:"lidmaat_id"`
	VerwanteID uuid.UUID `json:"verwante_id"`
	Tipe       Tipe      `json:"verhouding_tipe"`
	Beskrywing string    `json:"verhouding_beskrywing,omitempty"`
	GemeenteID uuid.UUID `json:"gemeente_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// AddVerhoudingRequest carries the fields for a new relationship.
type AddVerhoudingRequest struct {
	LidmaatID  uuid.UUID `json:"lidmaat_id"`
	VerwanteID uuid.UUID `json:"verwante_id"`
	Tipe       Tipe      `json:"verhouding_tipe"`
	Beskrywing string    `json:"verhouding_beskrywing"`
}
