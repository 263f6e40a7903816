// Package gemeente manages congregation records, their bank details, and the
// cached congregation overview.
package gemeente

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a congregation.
type Status string

const (
	StatusAktief   Status = "aktief"
	StatusOnaktief Status = "onaktief"
)

// Gemeente is one congregation.
type Gemeente struct {
	ID        uuid.UUID `json:"id"`
	Naam      string    `json:"naam"`
	Adres     string    `json:"adres,omitempty"`
	Telefoon  string    `json:"telefoon,omitempty"`
	Epos      string    `json:"epos,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Bankbesonderhede are the congregation's banking details for member
// contributions. One row per congregation, replaced on save.
type Bankbesonderhede struct {
	GemeenteID     uuid.UUID `json:"gemeente_id"`
	BankNaam       string    `json:"bank_naam"`
	RekeningNaam   string    `json:"rekening_naam"`
	RekeningNommer string    `json:"rekening_nommer"`
	TakKode        string    `json:"tak_kode"`
	Verwysing      string    `json:"verwysing,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateGemeenteRequest carries the fields for a new congregation.
type CreateGemeenteRequest struct {
	Naam     string `json:"naam"`
	Adres    string `json:"adres"`
	Telefoon string `json:"telefoon"`
	Epos     string `json:"epos"`
}

// UpdateGemeenteRequest mirrors CreateGemeenteRequest for full updates.
type UpdateGemeenteRequest struct {
	Naam     string `json:"naam"`
	Adres    string `json:"adres"`
	Telefoon string `json:"telefoon"`
	Epos     string `json:"epos"`
}

// SaveBankRequest carries the congregation's banking details.
type SaveBankRequest struct {
	BankNaam       string `json:"bank_naam"`
	RekeningNaam   string `json:"rekening_naam"`
	RekeningNommer string `json:"rekening_nommer"`
	TakKode        string `json:"tak_kode"`
	Verwysing      string `json:"verwysing"`
}

// Oorsig is the aggregated congregation dashboard, cached in Redis.
type Oorsig struct {
	GemeenteID       uuid.UUID `json:"gemeente_id"`
	Naam             string    `json:"naam"`
	Status           Status    `json:"status"`
	TotaalLidmate    int       `json:"totaal_lidmate"`
	AktieweLidmate   int       `json:"aktiewe_lidmate"`
	Wyke             int       `json:"wyke"`
	Besoekpunte      int       `json:"besoekpunte"`
	LidmateSonderWyk int       `json:"lidmate_sonder_wyk"`
	BerekenOp        time.Time `json:"bereken_op"`
}
