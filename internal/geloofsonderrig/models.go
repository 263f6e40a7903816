// Package geloofsonderrig records catechism payments per learner and year.
package geloofsonderrig

import (
	"time"

	"github.com/google/uuid"
)

// Betaling is one payment. Amounts are whole cents to keep arithmetic exact.
type Betaling struct {
	ID          uuid.UUID `json:"id"`
	GemeenteID  uuid.UUID `json:"gemeente_id"`
	LeerderID   uuid.UUID `json:"leerder_id"`
	Jaar        int       `json:"jaar"`
	BedragSent  int64     `json:"bedrag_sent"`
	BetaalDatum time.Time `json:"betaal_datum"`
	Verwysing   string    `json:"verwysing,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordBetalingRequest carries a payment to record.
type RecordBetalingRequest struct {
	LeerderID   uuid.UUID  `json:"leerder_id"`
	Jaar        int        `json:"jaar"`
	BedragSent  int64      `json:"bedrag_sent"`
	BetaalDatum *time.Time `json:"betaal_datum"`
	Verwysing   string     `json:"verwysing"`
}

// Totaal summarizes a congregation's payments for a year.
type Totaal struct {
	Jaar       int   `json:"jaar"`
	Betalings  int   `json:"betalings"`
	TotaalSent int64 `json:"totaal_sent"`
}
