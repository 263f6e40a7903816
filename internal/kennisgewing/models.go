// Package kennisgewing sends admin push notifications through the push
// gateway and keeps a send history per congregation.
package kennisgewing

import (
	"time"

	"github.com/google/uuid"
)

// TargetAudience says who a notification goes to.
type TargetAudience string

const (
	AudienceAll         TargetAudience = "all"
	AudienceSpecificWyk TargetAudience = "specific_wyk"
)

// Valid reports whether the audience is known.
func (a TargetAudience) Valid() bool {
	return a == AudienceAll || a == AudienceSpecificWyk
}

// Priority levels understood by the gateway.
const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// Kennisgewing is one sent notification, as kept in history.
type Kennisgewing struct {
	ID                    uuid.UUID      `json:"id"`
	GemeenteID            uuid.UUID      `json:"gemeente_id"`
	Title                 string         `json:"title"`
	Body                  string         `json:"body"`
	Tipe                  string         `json:"type"`
	Priority              string         `json:"priority"`
	TargetAudience        TargetAudience `json:"target_audience"`
	TargetWykID           *uuid.UUID     `json:"target_wyk_id,omitempty"`
	SentBy                uuid.UUID      `json:"sent_by,omitempty"`
	SentByNaam            string         `json:"sent_by_naam,omitempty"`
	EligibleSubscriptions int            `json:"eligible_subscriptions"`
	SentAt                time.Time      `json:"sent_at"`
}

// SendRequest carries a notification to send.
type SendRequest struct {
	Title          string         `json:"title"`
	Body           string         `json:"body"`
	Tipe           string         `json:"type"`
	Priority       string         `json:"priority"`
	TargetAudience TargetAudience `json:"target_audience"`
	TargetWykID    *uuid.UUID     `json:"target_wyk_id"`
}
