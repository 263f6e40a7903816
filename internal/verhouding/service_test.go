package verhouding

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemeentenet/internal/lidmaat/models"
	lidstore "gemeentenet/internal/lidmaat/store"
	"gemeentenet/internal/oudit"
	derrors "gemeentenet/pkg/domain-errors"
)

type fixture struct {
	svc        *Service
	store      *InMemoryStore
	lidmate    *lidstore.InMemoryStore
	oudit      *oudit.InMemoryStore
	gemeenteID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &fixture{
		store:      NewInMemoryStore(),
		lidmate:    lidstore.NewInMemoryStore(),
		oudit:      oudit.NewInMemoryStore(),
		gemeenteID: uuid.New(),
	}
	rec := oudit.NewRecorder(f.oudit, logger)
	f.svc = NewService(f.store, f.lidmate, rec, WithLogger(logger))
	return f
}

func (f *fixture) newLidmaat(t *testing.T, naam, van string, gemeenteID uuid.UUID) *models.Lidmaat {
	t.Helper()
	now := time.Now().UTC()
	l := &models.Lidmaat{
		ID:         uuid.New(),
		Naam:       naam,
		Van:        van,
		Rol:        models.RolLidmaat,
		GemeenteID: gemeenteID,
		Aktief:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, f.lidmate.Create(context.Background(), l))
	return l
}

func TestAddVerhouding(t *testing.T) {
	f := newFixture(t)
	jan := f.newLidmaat(t, "Jan", "Botha", f.gemeenteID)
	marie := f.newLidmaat(t, "Marie", "Botha", f.gemeenteID)

	v, err := f.svc.Add(context.Background(), f.gemeenteID, AddVerhoudingRequest{
		LidmaatID:  jan.ID,
		VerwanteID: marie.ID,
		Tipe:       TipeGetroud,
	})
	require.NoError(t, err)
	assert.Equal(t, TipeGetroud, v.Tipe)

	// One audit entry per endpoint.
	janEntries, err := f.oudit.ListForLidmaat(context.Background(), jan.ID)
	require.NoError(t, err)
	require.Len(t, janEntries, 1)
	assert.Equal(t, oudit.AksieVerhoudingBygevoeg, janEntries[0].AksieTipe)
	assert.Equal(t, "Verhouding bygevoeg: Getroud met Marie Botha", janEntries[0].Beskrywing)

	marieEntries, err := f.oudit.ListForLidmaat(context.Background(), marie.ID)
	require.NoError(t, err)
	require.Len(t, marieEntries, 1)
	assert.Equal(t, "Verhouding bygevoeg: Getroud met Jan Botha", marieEntries[0].Beskrywing)
}

func TestAddAnderRequiresBeskrywing(t *testing.T) {
	f := newFixture(t)
	jan := f.newLidmaat(t, "Jan", "Botha", f.gemeenteID)
	marie := f.newLidmaat(t, "Marie", "Botha", f.gemeenteID)

	_, err := f.svc.Add(context.Background(), f.gemeenteID, AddVerhoudingRequest{
		LidmaatID:  jan.ID,
		VerwanteID: marie.ID,
		Tipe:       TipeAnder,
		Beskrywing: "   ",
	})
	require.True(t, derrors.HasCode(err, derrors.CodeValidation))

	// Rejected before any store write.
	left, listErr := f.store.ListForLidmaat(context.Background(), jan.ID)
	require.NoError(t, listErr)
	assert.Empty(t, left)
}

func TestAddValidation(t *testing.T) {
	f := newFixture(t)
	jan := f.newLidmaat(t, "Jan", "Botha", f.gemeenteID)
	buite := f.newLidmaat(t, "Piet", "Smit", uuid.New())
	ctx := context.Background()

	_, err := f.svc.Add(ctx, f.gemeenteID, AddVerhoudingRequest{LidmaatID: jan.ID, Tipe: TipeKind})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))

	_, err = f.svc.Add(ctx, f.gemeenteID, AddVerhoudingRequest{LidmaatID: jan.ID, VerwanteID: jan.ID, Tipe: TipeKind})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))

	_, err = f.svc.Add(ctx, f.gemeenteID, AddVerhoudingRequest{LidmaatID: jan.ID, VerwanteID: buite.ID, Tipe: "neef"})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))

	_, err = f.svc.Add(ctx, f.gemeenteID, AddVerhoudingRequest{LidmaatID: jan.ID, VerwanteID: buite.ID, Tipe: TipeKind})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))
}

func TestDeleteVerhouding(t *testing.T) {
	f := newFixture(t)
	jan := f.newLidmaat(t, "Jan", "Botha", f.gemeenteID)
	marie := f.newLidmaat(t, "Marie", "Botha", f.gemeenteID)
	ctx := context.Background()

	v, err := f.svc.Add(ctx, f.gemeenteID, AddVerhoudingRequest{
		LidmaatID:  jan.ID,
		VerwanteID: marie.ID,
		Tipe:       TipeOuer,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, v.ID))

	left, err := f.store.ListForLidmaat(ctx, jan.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	janEntries, err := f.oudit.ListForLidmaat(ctx, jan.ID)
	require.NoError(t, err)
	require.Len(t, janEntries, 2)

	err = f.svc.Delete(ctx, v.ID)
	assert.True(t, derrors.HasCode(err, derrors.CodeNotFound))
}
