// Package oudit keeps the append-only member audit trail. Writes are
// best-effort: a failed audit write never blocks or rolls back the mutation it
// describes.
package oudit

import (
	"time"

	"github.com/google/uuid"
)

// AksieTipe classifies what kind of change an audit entry records.
type AksieTipe string

const (
	AksieProfielWysig        AksieTipe = "profiel_wysig"
	AksieWykToewysing        AksieTipe = "wyk_toewysing"
	AksieBesoekpuntToewysing AksieTipe = "besoekpunt_toewysing"
	AksieVerhoudingBygevoeg  AksieTipe = "verhouding_bygevoeg"
	AksieVerhoudingVerwyder  AksieTipe = "verhouding_verwyder"
	AksieRolWysig            AksieTipe = "rol_wysig"
	AksieStatusWysig         AksieTipe = "status_wysig"
	AksieGeskep              AksieTipe = "geskep"
)

// Entry is one append-only record of a change to a member.
type Entry struct {
	ID              uuid.UUID `json:"id"`
	LidmaatID       uuid.UUID `json:"lidmaat_id"`
	GemeenteID      uuid.UUID `json:"gemeente_id"`
	AksieTipe       AksieTipe `json:"aksie_tipe"`
	Beskrywing      string    `json:"beskrywing"`
	OuWaarde        string    `json:"ou_waarde,omitempty"`
	NuweWaarde      string    `json:"nuwe_waarde,omitempty"`
	GewysigDeurID   uuid.UUID `json:"gewysig_deur_id,omitempty"`
	GewysigDeurNaam string    `json:"gewysig_deur_naam,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
