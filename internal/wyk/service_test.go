package wyk

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
	derrors "gemeentenet/pkg/domain-errors"
)

type fixture struct {
	svc        *Service
	lidmate    *lidstore.InMemoryStore
	gemeenteID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &fixture{
		lidmate:    lidstore.NewInMemoryStore(),
		gemeenteID: uuid.New(),
	}
	f.svc = NewService(NewInMemoryStore(), f.lidmate, WithLogger(logger))
	return f
}

func (f *fixture) seedLidmaat(t *testing.T, wykID, besoekpuntID *uuid.UUID) *models.Lidmaat {
	t.Helper()
	now := time.Now().UTC()
	l := &models.Lidmaat{
		ID: uuid.New(), Naam: "Jan", Van: "Botha", Rol: models.RolLidmaat,
		GemeenteID: f.gemeenteID, Aktief: true,
		WykID: wykID, BesoekpuntID: besoekpuntID,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, f.lidmate.Create(context.Background(), l))
	return l
}

func TestCreateWykValidation(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateWyk(context.Background(), f.gemeenteID, CreateWykRequest{Naam: " "})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))
}

func TestCreateBesoekpuntValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w, err := f.svc.CreateWyk(ctx, f.gemeenteID, CreateWykRequest{Naam: "Wyk Noord"})
	require.NoError(t, err)

	_, err = f.svc.CreateBesoekpunt(ctx, f.gemeenteID, CreateBesoekpuntRequest{Naam: "Die Anker"})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))

	_, err = f.svc.CreateBesoekpunt(ctx, f.gemeenteID, CreateBesoekpuntRequest{Naam: "Die Anker", WykID: uuid.New()})
	assert.True(t, derrors.HasCode(err, derrors.CodeNotFound))

	_, err = f.svc.CreateBesoekpunt(ctx, uuid.New(), CreateBesoekpuntRequest{Naam: "Die Anker", WykID: w.ID})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))

	b, err := f.svc.CreateBesoekpunt(ctx, f.gemeenteID, CreateBesoekpuntRequest{Naam: "Die Anker", WykID: w.ID})
	require.NoError(t, err)
	assert.Equal(t, w.ID, b.WykID)
}

func TestDeleteWykClearsLidmate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w, err := f.svc.CreateWyk(ctx, f.gemeenteID, CreateWykRequest{Naam: "Wyk Noord"})
	require.NoError(t, err)
	b, err := f.svc.CreateBesoekpunt(ctx, f.gemeenteID, CreateBesoekpuntRequest{Naam: "Die Anker", WykID: w.ID})
	require.NoError(t, err)
	l := f.seedLidmaat(t, &w.ID, &b.ID)

	require.NoError(t, f.svc.DeleteWyk(ctx, w.ID))

	got, err := f.lidmate.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Nil(t, got.WykID)
	assert.Nil(t, got.BesoekpuntID)

	// The district's points go with it.
	_, err = f.svc.GetBesoekpunt(ctx, b.ID)
	assert.True(t, derrors.HasCode(err, derrors.CodeNotFound))
	_, err = f.svc.GetWyk(ctx, w.ID)
	assert.True(t, derrors.HasCode(err, derrors.CodeNotFound))
}

func TestDeleteBesoekpuntKeepsWyk(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w, err := f.svc.CreateWyk(ctx, f.gemeenteID, CreateWykRequest{Naam: "Wyk Noord"})
	require.NoError(t, err)
	b, err := f.svc.CreateBesoekpunt(ctx, f.gemeenteID, CreateBesoekpuntRequest{Naam: "Die Anker", WykID: w.ID})
	require.NoError(t, err)
	l := f.seedLidmaat(t, &w.ID, &b.ID)

	require.NoError(t, f.svc.DeleteBesoekpunt(ctx, b.ID))

	got, err := f.lidmate.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Nil(t, got.BesoekpuntID)
	require.NotNil(t, got.WykID)
	assert.Equal(t, w.ID, *got.WykID)
}

func TestUpdateBesoekpuntMoveWyk(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w1, err := f.svc.CreateWyk(ctx, f.gemeenteID, CreateWykRequest{Naam: "Wyk Noord"})
	require.NoError(t, err)
	w2, err := f.svc.CreateWyk(ctx, f.gemeenteID, CreateWykRequest{Naam: "Wyk Suid"})
	require.NoError(t, err)
	b, err := f.svc.CreateBesoekpunt(ctx, f.gemeenteID, CreateBesoekpuntRequest{Naam: "Die Anker", WykID: w1.ID})
	require.NoError(t, err)

	got, err := f.svc.UpdateBesoekpunt(ctx, b.ID, UpdateBesoekpuntRequest{Naam: "Die Anker", WykID: w2.ID})
	require.NoError(t, err)
	assert.Equal(t, w2.ID, got.WykID)
}

func TestListBesoekpunteVirWyk(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w1, err := f.svc.CreateWyk(ctx, f.gemeenteID, CreateWykRequest{Naam: "Wyk Noord"})
	require.NoError(t, err)
	w2, err := f.svc.CreateWyk(ctx, f.gemeenteID, CreateWykRequest{Naam: "Wyk Suid"})
	require.NoError(t, err)
	_, err = f.svc.CreateBesoekpunt(ctx, f.gemeenteID, CreateBesoekpuntRequest{Naam: "Die Anker", WykID: w1.ID})
	require.NoError(t, err)
	_, err = f.svc.CreateBesoekpunt(ctx, f.gemeenteID, CreateBesoekpuntRequest{Naam: "Die Hawe", WykID: w2.ID})
	require.NoError(t, err)

	got, err := f.svc.ListBesoekpunteVirWyk(ctx, w1.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Die Anker", got[0].Naam)
}
