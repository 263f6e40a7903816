package geloofsonderrig

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
	leerder    *models.Lidmaat
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &fixture{
		lidmate:    lidstore.NewInMemoryStore(),
		gemeenteID: uuid.New(),
	}
	now := time.Now().UTC()
	f.leerder = &models.Lidmaat{
		ID: uuid.New(), Naam: "Lena", Van: "Botha", Rol: models.RolLidmaat,
		GemeenteID: f.gemeenteID, Aktief: true, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, f.lidmate.Create(context.Background(), f.leerder))
	f.svc = NewService(NewInMemoryStore(), f.lidmate, WithLogger(logger))
	return f
}

func TestRecordValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Record(ctx, f.gemeenteID, RecordBetalingRequest{Jaar: 2026, BedragSent: 5000})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))

	_, err = f.svc.Record(ctx, f.gemeenteID, RecordBetalingRequest{LeerderID: f.leerder.ID, Jaar: 1999, BedragSent: 5000})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))

	_, err = f.svc.Record(ctx, f.gemeenteID, RecordBetalingRequest{LeerderID: f.leerder.ID, Jaar: 2026})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))

	_, err = f.svc.Record(ctx, f.gemeenteID, RecordBetalingRequest{LeerderID: uuid.New(), Jaar: 2026, BedragSent: 5000})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))

	// Learner from another congregation.
	_, err = f.svc.Record(ctx, uuid.New(), RecordBetalingRequest{LeerderID: f.leerder.ID, Jaar: 2026, BedragSent: 5000})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))
}

func TestRecordAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	datum := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)

	b, err := f.svc.Record(ctx, f.gemeenteID, RecordBetalingRequest{
		LeerderID:   f.leerder.ID,
		Jaar:        2026,
		BedragSent:  15000,
		BetaalDatum: &datum,
		Verwysing:   " KAT2026/14 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "KAT2026/14", b.Verwysing)
	assert.Equal(t, datum, b.BetaalDatum)

	_, err = f.svc.Record(ctx, f.gemeenteID, RecordBetalingRequest{LeerderID: f.leerder.ID, Jaar: 2025, BedragSent: 12000})
	require.NoError(t, err)

	alles, err := f.svc.List(ctx, f.gemeenteID, 0)
	require.NoError(t, err)
	assert.Len(t, alles, 2)

	net2026, err := f.svc.List(ctx, f.gemeenteID, 2026)
	require.NoError(t, err)
	require.Len(t, net2026, 1)
	assert.Equal(t, b.ID, net2026[0].ID)
}

func TestTotalePerJaar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	record := func(jaar int, sent int64) {
		_, err := f.svc.Record(ctx, f.gemeenteID, RecordBetalingRequest{LeerderID: f.leerder.ID, Jaar: jaar, BedragSent: sent})
		require.NoError(t, err)
	}
	record(2025, 12000)
	record(2026, 15000)
	record(2026, 15000)

	totale, err := f.svc.Totale(ctx, f.gemeenteID)
	require.NoError(t, err)
	require.Len(t, totale, 2)
	assert.Equal(t, Totaal{Jaar: 2026, Betalings: 2, TotaalSent: 30000}, totale[0])
	assert.Equal(t, Totaal{Jaar: 2025, Betalings: 1, TotaalSent: 12000}, totale[1])
}
