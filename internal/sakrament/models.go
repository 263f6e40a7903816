// Package sakrament tracks children on the sacrament journey (doop to
// belydenis) and the journal entries parents keep along the way.
package sakrament

import (
	"time"

	"github.com/google/uuid"
)

// Fase is the stage of the journey a child is in.
type Fase string

const (
	FaseDoop      Fase = "doop"
	FaseKategese  Fase = "kategese"
	FaseBelydenis Fase = "belydenis"
)

// Valid reports whether the phase is known.
func (f Fase) Valid() bool {
	switch f {
	case FaseDoop, FaseKategese, FaseBelydenis:
		return true
	}
	return false
}

// Kind is one child record, linked to a parent member.
type Kind struct {
	ID            uuid.UUID `json:"id"`
	GemeenteID    uuid.UUID `json:"gemeente_id"`
	OuerID        uuid.UUID `json:"ouer_id"`
	Naam          string    `json:"naam"`
	Geboortedatum string    `json:"geboortedatum,omitempty"`
	DoopDatum     string    `json:"doop_datum,omitempty"`
	Fase          Fase      `json:"fase"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// JoernaalInskrywing is one journal entry for a child. The photo lives in
// external storage; only its URL is kept.
type JoernaalInskrywing struct {
	ID         uuid.UUID `json:"id"`
	KindID     uuid.UUID `json:"kind_id"`
	GemeenteID uuid.UUID `json:"gemeente_id"`
	Titel      string    `json:"titel"`
	Inhoud     string    `json:"inhoud"`
	FotoURL    string    `json:"foto_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// SaveKindRequest carries the fields for a new or updated child record.
type SaveKindRequest struct {
	OuerID        uuid.UUID `json:"ouer_id"`
	Naam          string    `json:"naam"`
	Geboortedatum string    `json:"geboortedatum"`
	DoopDatum     string    `json:"doop_datum"`
	Fase          Fase      `json:"fase"`
}

// AddJoernaalRequest carries a new journal entry.
type AddJoernaalRequest struct {
	Titel   string `json:"titel"`
	Inhoud  string `json:"inhoud"`
	FotoURL string `json:"foto_url"`
}
