// Package wyk manages districts and their visitation points.
package wyk

import (
	"time"

	"github.com/google/uuid"
)

// Wyk is a district: a subdivision of a congregation, optionally led by a member.
type Wyk struct {
	ID         uuid.UUID  `json:"id"`
	Naam       string     `json:"naam"`
	Beskrywing string     `json:"beskrywing,omitempty"`
	LeierID    *uuid.UUID `json:"leier_id,omitempty"`
	GemeenteID uuid.UUID  `json:"gemeente_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Besoekpunt is a visitation point: a named sub-location within a district.
// It always belongs to exactly one wyk.
type Besoekpunt struct {
	ID         uuid.UUID `json:"id"`
	Naam       string    `json:"naam"`
	Beskrywing string    `json:"beskrywing,omitempty"`
	Adres      string    `json:"adres,omitempty"`
	WykID      uuid.UUID `json:"wyk_id"`
	GemeenteID uuid.UUID `json:"gemeente_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateWykRequest carries the fields for a new district.
type CreateWykRequest struct {
	Naam       string     `json:"naam"`
	Beskrywing string     `json:"beskrywing"`
	LeierID    *uuid.UUID `json:"leier_id"`
}

// UpdateWykRequest mirrors CreateWykRequest for full updates.
type UpdateWykRequest struct {
	Naam       string     `json:"naam"`
	Beskrywing string     `json:"beskrywing"`
	LeierID    *uuid.UUID `json:"leier_id"`
}

// CreateBesoekpuntRequest carries the fields for a new visitation point.
type CreateBesoekpuntRequest struct {
	Naam       string    `json:"naam"`
	Beskrywing string    `json:"beskrywing"`
	Adres      string    `json:"adres"`
	WykID      uuid.UUID `json:"wyk_id"`
}

// UpdateBesoekpuntRequest mirrors CreateBesoekpuntRequest for full updates.
type UpdateBesoekpuntRequest struct {
	Naam       string    `json:"naam"`
	Beskrywing string    `json:"beskrywing"`
	Adres      string    `json:"adres"`
	WykID      uuid.UUID `json:"wyk_id"`
}
