package gemeente

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
	"gemeentenet/internal/wyk"
	derrors "gemeentenet/pkg/domain-errors"
)

type fixture struct {
	svc     *Service
	lidmate *lidstore.InMemoryStore
	wyke    *wyk.InMemoryStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &fixture{
		lidmate: lidstore.NewInMemoryStore(),
		wyke:    wyk.NewInMemoryStore(),
	}
	f.svc = NewService(NewInMemoryStore(), f.lidmate, f.wyke, WithLogger(logger))
	return f
}

func TestCreateAndStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, CreateGemeenteRequest{Naam: "  "})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))

	g, err := f.svc.Create(ctx, CreateGemeenteRequest{Naam: "NHKA Pretoria"})
	require.NoError(t, err)
	assert.Equal(t, StatusAktief, g.Status)

	g, err = f.svc.Deactivate(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusOnaktief, g.Status)

	// Deactivating twice is a conflict, not a no-op.
	_, err = f.svc.Deactivate(ctx, g.ID)
	assert.True(t, derrors.HasCode(err, derrors.CodeConflict))

	g, err = f.svc.Reactivate(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusAktief, g.Status)

	_, err = f.svc.Reactivate(ctx, g.ID)
	assert.True(t, derrors.HasCode(err, derrors.CodeConflict))
}

func TestBankBesonderhede(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g, err := f.svc.Create(ctx, CreateGemeenteRequest{Naam: "NHKA Pretoria"})
	require.NoError(t, err)

	_, err = f.svc.GetBank(ctx, g.ID)
	assert.True(t, derrors.HasCode(err, derrors.CodeNotFound))

	_, err = f.svc.SaveBank(ctx, g.ID, SaveBankRequest{BankNaam: "ABSA"})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))

	b, err := f.svc.SaveBank(ctx, g.ID, SaveBankRequest{
		BankNaam:       "ABSA",
		RekeningNaam:   "NHKA Pretoria",
		RekeningNommer: "4055110123",
		TakKode:        "632005",
	})
	require.NoError(t, err)
	assert.Equal(t, g.ID, b.GemeenteID)

	// Saving again replaces the single row.
	b, err = f.svc.SaveBank(ctx, g.ID, SaveBankRequest{
		BankNaam:       "FNB",
		RekeningNommer: "62000000001",
	})
	require.NoError(t, err)

	got, err := f.svc.GetBank(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "FNB", got.BankNaam)
	assert.Equal(t, "62000000001", got.RekeningNommer)
	assert.Equal(t, b.UpdatedAt, got.UpdatedAt)
}

func TestOorsig(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g, err := f.svc.Create(ctx, CreateGemeenteRequest{Naam: "NHKA Pretoria"})
	require.NoError(t, err)

	now := time.Now().UTC()
	w := &wyk.Wyk{ID: uuid.New(), Naam: "Wyk Noord", GemeenteID: g.ID, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, f.wyke.CreateWyk(ctx, w))
	require.NoError(t, f.wyke.CreateBesoekpunt(ctx, &wyk.Besoekpunt{
		ID: uuid.New(), Naam: "Die Anker", WykID: w.ID, GemeenteID: g.ID, CreatedAt: now, UpdatedAt: now,
	}))

	seed := func(naam string, aktief bool, wykID *uuid.UUID) {
		require.NoError(t, f.lidmate.Create(ctx, &models.Lidmaat{
			ID: uuid.New(), Naam: naam, Van: "Botha", Rol: models.RolLidmaat,
			GemeenteID: g.ID, Aktief: aktief, WykID: wykID, CreatedAt: now, UpdatedAt: now,
		}))
	}
	seed("Jan", true, &w.ID)
	seed("Marie", true, nil)
	seed("Piet", false, nil)

	o, err := f.svc.Oorsig(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "NHKA Pretoria", o.Naam)
	assert.Equal(t, 3, o.TotaalLidmate)
	assert.Equal(t, 2, o.AktieweLidmate)
	assert.Equal(t, 1, o.Wyke)
	assert.Equal(t, 1, o.Besoekpunte)
	assert.Equal(t, 2, o.LidmateSonderWyk)
	assert.False(t, o.BerekenOp.IsZero())
}
