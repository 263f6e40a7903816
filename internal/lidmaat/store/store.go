// Package store persists member records.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gemeentenet/internal/lidmaat/models"
)

// Store is the member persistence contract. The targeted assignment setters
// exist so district and visitation point moves touch only those columns and
// never race a concurrent profile edit's full-row write.
type Store interface {
	Create(ctx context.Context, l *models.Lidmaat) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Lidmaat, error)
	ListByGemeente(ctx context.Context, gemeenteID uuid.UUID) ([]*models.Lidmaat, error)
	Update(ctx context.Context, l *models.Lidmaat) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SetWyk assigns the member to a district without touching the
	// besoekpunt column.
	SetWyk(ctx context.Context, id, wykID uuid.UUID, now time.Time) error
	// SetBesoekpunt assigns the member to a visitation point and the wyk it
	// belongs to in one write.
	SetBesoekpunt(ctx context.Context, id, besoekpuntID, wykID uuid.UUID, now time.Time) error
	// ClearBesoekpunt removes only the visitation point link.
	ClearBesoekpunt(ctx context.Context, id uuid.UUID, now time.Time) error
	// ClearToewysing removes both the district and visitation point links.
	ClearToewysing(ctx context.Context, id uuid.UUID, now time.Time) error

	// ClearWykVerwysings detaches every member of the given district,
	// clearing both columns. Returns the number of members touched.
	ClearWykVerwysings(ctx context.Context, wykID uuid.UUID) (int, error)
	// ClearBesoekpuntVerwysings detaches every member of the given point,
	// leaving their wyk intact. Returns the number of members touched.
	ClearBesoekpuntVerwysings(ctx context.Context, besoekpuntID uuid.UUID) (int, error)
}
