//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemeentenet/internal/lidmaat/models"
	"gemeentenet/pkg/sentinel"
	"gemeentenet/pkg/testutil/containers"
)

func seedGemeente(t *testing.T, pc *containers.PostgresContainer) uuid.UUID {
	t.Helper()
	id := uuid.New()
	now := time.Now().UTC()
	_, err := pc.DB.ExecContext(context.Background(),
		`INSERT INTO gemeentes (id, naam, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		id, "NHKA Toets", now, now)
	require.NoError(t, err)
	return id
}

func newLidmaat(gemeenteID uuid.UUID) *models.Lidmaat {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &models.Lidmaat{
		ID:         uuid.New(),
		Naam:       "Jan",
		Van:        "Botha",
		Epos:       "jan@voorbeeld.com",
		Rol:        models.RolLidmaat,
		GemeenteID: gemeenteID,
		Aktief:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestPostgresStoreRoundTrip(t *testing.T) {
	pc := containers.NewPostgresContainer(t)
	s := NewPostgres(pc.DB)
	ctx := context.Background()
	gemeenteID := seedGemeente(t, pc)

	l := newLidmaat(gemeenteID)
	require.NoError(t, s.Create(ctx, l))

	got, err := s.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.Naam, got.Naam)
	assert.Equal(t, l.Epos, got.Epos)
	assert.Nil(t, got.WykID)
	assert.WithinDuration(t, l.CreatedAt, got.CreatedAt, time.Second)

	got.Notas = "Nuwe intrekker"
	got.UpdatedAt = time.Now().UTC()
	require.NoError(t, s.Update(ctx, got))

	got, err = s.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nuwe intrekker", got.Notas)

	require.NoError(t, s.Delete(ctx, l.ID))
	_, err = s.FindByID(ctx, l.ID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestPostgresStoreToewysings(t *testing.T) {
	pc := containers.NewPostgresContainer(t)
	s := NewPostgres(pc.DB)
	ctx := context.Background()
	gemeenteID := seedGemeente(t, pc)

	l := newLidmaat(gemeenteID)
	require.NoError(t, s.Create(ctx, l))

	wykID := uuid.New()
	puntID := uuid.New()
	now := time.Now().UTC()

	require.NoError(t, s.SetBesoekpunt(ctx, l.ID, puntID, wykID, now))
	got, err := s.FindByID(ctx, l.ID)
	require.NoError(t, err)
	require.NotNil(t, got.WykID)
	require.NotNil(t, got.BesoekpuntID)
	assert.Equal(t, wykID, *got.WykID)
	assert.Equal(t, puntID, *got.BesoekpuntID)

	require.NoError(t, s.ClearBesoekpunt(ctx, l.ID, now))
	got, err = s.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Nil(t, got.BesoekpuntID)
	require.NotNil(t, got.WykID)

	require.NoError(t, s.ClearToewysing(ctx, l.ID, now))
	got, err = s.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Nil(t, got.WykID)
}

func TestPostgresStoreClearVerwysings(t *testing.T) {
	pc := containers.NewPostgresContainer(t)
	s := NewPostgres(pc.DB)
	ctx := context.Background()
	gemeenteID := seedGemeente(t, pc)

	wykID := uuid.New()
	puntID := uuid.New()
	now := time.Now().UTC()

	var lede []*models.Lidmaat
	for range 3 {
		l := newLidmaat(gemeenteID)
		require.NoError(t, s.Create(ctx, l))
		require.NoError(t, s.SetBesoekpunt(ctx, l.ID, puntID, wykID, now))
		lede = append(lede, l)
	}

	n, err := s.ClearBesoekpuntVerwysings(ctx, puntID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := s.FindByID(ctx, lede[0].ID)
	require.NoError(t, err)
	assert.Nil(t, got.BesoekpuntID)
	require.NotNil(t, got.WykID)

	n, err = s.ClearWykVerwysings(ctx, wykID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err = s.FindByID(ctx, lede[1].ID)
	require.NoError(t, err)
	assert.Nil(t, got.WykID)
}
