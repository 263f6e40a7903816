// Package models defines the member record and its request shapes.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Rol is the role a member holds within a congregation.
type Rol string

const (
	RolAdmin        Rol = "admin"
	RolPredikant    Rol = "predikant"
	RolKerkraadslid Rol = "kerkraadslid"
	RolLidmaat      Rol = "lidmaat"
)

// rolLabels are the display names used in audit descriptions.
var rolLabels = map[Rol]string{
	RolAdmin:        "Administrateur",
	RolPredikant:    "Predikant",
	RolKerkraadslid: "Kerkraadslid",
	RolLidmaat:      "Lidmaat",
}

// Label returns the human-readable name for a role, falling back to the raw
// value for roles this build does not know.
func (r Rol) Label() string {
	if l, ok := rolLabels[r]; ok {
		return l
	}
	return string(r)
}

// Valid reports whether the role is one of the known roles.
func (r Rol) Valid() bool {
	_, ok := rolLabels[r]
	return ok
}

// Lidmaat is one member record. WykID and BesoekpuntID are nil when the member
// is unassigned; when BesoekpuntID is set, WykID always names that point's wyk.
type Lidmaat struct {
	ID            uuid.UUID  `json:"id"`
	Naam          string     `json:"naam"`
	Van           string     `json:"van"`
	Epos          string     `json:"epos,omitempty"`
	Selfoon       string     `json:"selfoon,omitempty"`
	Rol           Rol        `json:"rol"`
	WykID         *uuid.UUID `json:"wyk_id,omitempty"`
	BesoekpuntID  *uuid.UUID `json:"besoekpunt_id,omitempty"`
	GemeenteID    uuid.UUID  `json:"gemeente_id"`
	Adres         string     `json:"adres,omitempty"`
	Geboortedatum string     `json:"geboortedatum,omitempty"`
	Aktief        bool       `json:"aktief"`
	IsOorlede     bool       `json:"is_oorlede"`
	Notas         string     `json:"notas,omitempty"`
	WagwoordHash  string     `json:"-"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// VolleNaam is the display name used in audit trails and notifications.
func (l *Lidmaat) VolleNaam() string {
	return strings.TrimSpace(l.Naam + " " + l.Van)
}

// CreateLidmaatRequest carries the fields for a new member.
type CreateLidmaatRequest struct {
	Naam          string     `json:"naam"`
	Van           string     `json:"van"`
	Epos          string     `json:"epos"`
	Selfoon       string     `json:"selfoon"`
	Rol           Rol        `json:"rol"`
	WykID         *uuid.UUID `json:"wyk_id"`
	BesoekpuntID  *uuid.UUID `json:"besoekpunt_id"`
	Adres         string     `json:"adres"`
	Geboortedatum string     `json:"geboortedatum"`
	Notas         string     `json:"notas"`
	Wagwoord      string     `json:"wagwoord"`
}

// UpdateLidmaatRequest is a full-record update: the caller sends the complete
// desired state and the service diffs it against the stored record.
type UpdateLidmaatRequest struct {
	Naam          string     `json:"naam"`
	Van           string     `json:"van"`
	Epos          string     `json:"epos"`
	Selfoon       string     `json:"selfoon"`
	Rol           Rol        `json:"rol"`
	WykID         *uuid.UUID `json:"wyk_id"`
	BesoekpuntID  *uuid.UUID `json:"besoekpunt_id"`
	Adres         string     `json:"adres"`
	Geboortedatum string     `json:"geboortedatum"`
	Aktief        bool       `json:"aktief"`
	IsOorlede     bool       `json:"is_oorlede"`
	Notas         string     `json:"notas"`
}

// ListFilter narrows a member listing.
type ListFilter struct {
	Soek string
	Rol  Rol
}

// BatchResult counts per-item outcomes of a bulk operation.
type BatchResult struct {
	Succeeded int `json:"suksesvol"`
	Failed    int `json:"misluk"`
}
