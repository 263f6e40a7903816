package service

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
	"gemeentenet/internal/lidmaat/store"
	"gemeentenet/internal/oudit"
	"gemeentenet/internal/statistiek"
	"gemeentenet/internal/verhouding"
	"gemeentenet/internal/wyk"
	derrors "gemeentenet/pkg/domain-errors"
	"gemeentenet/pkg/sentinel"
)

type fixture struct {
	svc         *Service
	store       *store.InMemoryStore
	wyke        *wyk.InMemoryStore
	verhoudings *verhouding.InMemoryStore
	oudit       *oudit.InMemoryStore
	statistiek  *statistiek.InMemoryStore
	gemeenteID  uuid.UUID
	wykA        *wyk.Wyk
	punt        *wyk.Besoekpunt
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &fixture{
		store:       store.NewInMemoryStore(),
		wyke:        wyk.NewInMemoryStore(),
		verhoudings: verhouding.NewInMemoryStore(),
		oudit:       oudit.NewInMemoryStore(),
		statistiek:  statistiek.NewInMemoryStore(),
		gemeenteID:  uuid.New(),
	}
	now := time.Now().UTC()
	f.wykA = &wyk.Wyk{ID: uuid.New(), Naam: "Wyk Oos", GemeenteID: f.gemeenteID, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, f.wyke.CreateWyk(context.Background(), f.wykA))
	f.punt = &wyk.Besoekpunt{ID: uuid.New(), Naam: "Die Anker", WykID: f.wykA.ID, GemeenteID: f.gemeenteID, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, f.wyke.CreateBesoekpunt(context.Background(), f.punt))

	rec := oudit.NewRecorder(f.oudit, logger)
	f.svc = NewService(f.store, f.wyke, f.verhoudings, rec, f.statistiek, WithLogger(logger))
	return f
}

func (f *fixture) create(t *testing.T, req models.CreateLidmaatRequest) *models.Lidmaat {
	t.Helper()
	l, err := f.svc.Create(context.Background(), f.gemeenteID, req)
	require.NoError(t, err)
	return l
}

func updateReqFrom(l *models.Lidmaat) models.UpdateLidmaatRequest {
	return models.UpdateLidmaatRequest{
		Naam:          l.Naam,
		Van:           l.Van,
		Epos:          l.Epos,
		Selfoon:       l.Selfoon,
		Rol:           l.Rol,
		WykID:         l.WykID,
		BesoekpuntID:  l.BesoekpuntID,
		Adres:         l.Adres,
		Geboortedatum: l.Geboortedatum,
		Aktief:        l.Aktief,
		IsOorlede:     l.IsOorlede,
		Notas:         l.Notas,
	}
}

func TestCreateDefaults(t *testing.T) {
	f := newFixture(t)
	l := f.create(t, models.CreateLidmaatRequest{Naam: "Jan", Van: "Botha", Epos: "Jan@Voorbeeld.Com"})

	assert.Equal(t, models.RolLidmaat, l.Rol)
	assert.True(t, l.Aktief)
	assert.False(t, l.IsOorlede)
	assert.Equal(t, "jan@voorbeeld.com", l.Epos)

	entries := f.oudit.All()
	require.Len(t, entries, 1)
	assert.Equal(t, oudit.AksieGeskep, entries[0].AksieTipe)
	assert.Equal(t, "Jan Botha", entries[0].NuweWaarde)
	assert.Equal(t, "Stelsel", entries[0].GewysigDeurNaam)
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.gemeenteID, models.CreateLidmaatRequest{Naam: "Jan"})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))

	_, err = f.svc.Create(ctx, f.gemeenteID, models.CreateLidmaatRequest{Naam: "Jan", Van: "Botha", Epos: "nie-n-epos"})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))

	_, err = f.svc.Create(ctx, f.gemeenteID, models.CreateLidmaatRequest{Naam: "Jan", Van: "Botha", Rol: "koster"})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))
}

func TestCreateBesoekpuntDerivesWyk(t *testing.T) {
	f := newFixture(t)
	anderWyk := uuid.New()
	l := f.create(t, models.CreateLidmaatRequest{
		Naam:         "Jan",
		Van:          "Botha",
		WykID:        &anderWyk,
		BesoekpuntID: &f.punt.ID,
	})
	require.NotNil(t, l.WykID)
	assert.Equal(t, f.wykA.ID, *l.WykID)
	require.NotNil(t, l.BesoekpuntID)
	assert.Equal(t, f.punt.ID, *l.BesoekpuntID)
}

func TestUpdateProfielDiff(t *testing.T) {
	f := newFixture(t)
	l := f.create(t, models.CreateLidmaatRequest{Naam: "Jan", Van: "Botha", Selfoon: "0821111111"})

	req := updateReqFrom(l)
	req.Selfoon = "0829999999"
	req.Adres = "Kerkstraat 1"
	_, err := f.svc.Update(context.Background(), l.ID, req)
	require.NoError(t, err)

	var profiel []oudit.Entry
	for _, e := range f.oudit.All() {
		if e.AksieTipe == oudit.AksieProfielWysig {
			profiel = append(profiel, e)
		}
	}
	require.Len(t, profiel, 1)
	assert.Equal(t, "Selfoon: 0821111111 → 0829999999, Adres: (leeg) → Kerkstraat 1", profiel[0].Beskrywing)
}

func TestUpdateRolChange(t *testing.T) {
	f := newFixture(t)
	l := f.create(t, models.CreateLidmaatRequest{Naam: "Jan", Van: "Botha"})

	req := updateReqFrom(l)
	req.Rol = models.RolKerkraadslid
	_, err := f.svc.Update(context.Background(), l.ID, req)
	require.NoError(t, err)

	var rol []oudit.Entry
	for _, e := range f.oudit.All() {
		if e.AksieTipe == oudit.AksieRolWysig {
			rol = append(rol, e)
		}
	}
	require.Len(t, rol, 1)
	assert.Equal(t, "Rol verander van Lidmaat na Kerkraadslid", rol[0].Beskrywing)
	assert.Equal(t, "Lidmaat", rol[0].OuWaarde)
	assert.Equal(t, "Kerkraadslid", rol[0].NuweWaarde)
}

func TestUpdateOorledeSideEffects(t *testing.T) {
	f := newFixture(t)
	l := f.create(t, models.CreateLidmaatRequest{Naam: "Jan", Van: "Botha"})

	req := updateReqFrom(l)
	req.IsOorlede = true
	req.Aktief = true
	got, err := f.svc.Update(context.Background(), l.ID, req)
	require.NoError(t, err)

	assert.True(t, got.IsOorlede)
	assert.False(t, got.Aktief, "oorlede lidmaat kan nie aktief bly nie")

	var status []oudit.Entry
	for _, e := range f.oudit.All() {
		if e.AksieTipe == oudit.AksieStatusWysig {
			status = append(status, e)
		}
	}
	require.Len(t, status, 1)
	assert.Equal(t, "Lidmaat gemerk as Oorlede", status[0].Beskrywing)
	assert.Equal(t, "Lewend", status[0].OuWaarde)
	assert.Equal(t, "Oorlede", status[0].NuweWaarde)

	stats, err := f.statistiek.ListByGemeente(context.Background(), f.gemeenteID)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, statistiek.TipeVermindering, stats[0].Tipe)
	assert.Equal(t, statistiek.RedeOorlede, stats[0].Rede)
	assert.Equal(t, l.ID, stats[0].LidmaatID)
	assert.Equal(t, "Jan Botha", stats[0].Beskrywing)
}

func TestMarkOorledeIdempotent(t *testing.T) {
	f := newFixture(t)
	l := f.create(t, models.CreateLidmaatRequest{Naam: "Jan", Van: "Botha"})
	ctx := context.Background()

	first, err := f.svc.MarkOorlede(ctx, l.ID)
	require.NoError(t, err)
	assert.True(t, first.IsOorlede)

	second, err := f.svc.MarkOorlede(ctx, l.ID)
	require.NoError(t, err)
	assert.True(t, second.IsOorlede)

	stats, err := f.statistiek.ListByGemeente(ctx, f.gemeenteID)
	require.NoError(t, err)
	assert.Len(t, stats, 1, "tweede merk mag nie nog 'n verlies aanteken nie")
}

func TestDeleteRemovesVerhoudings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.create(t, models.CreateLidmaatRequest{Naam: "Jan", Van: "Botha"})
	b := f.create(t, models.CreateLidmaatRequest{Naam: "Marie", Van: "Botha"})
	require.NoError(t, f.verhoudings.Create(ctx, &verhouding.Verhouding{
		ID:         uuid.New(),
		LidmaatID:  a.ID,
		VerwanteID: b.ID,
		Tipe:       verhouding.TipeGetroud,
		GemeenteID: f.gemeenteID,
		CreatedAt:  time.Now().UTC(),
	}))

	require.NoError(t, f.svc.Delete(ctx, a.ID))

	_, err := f.store.FindByID(ctx, a.ID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
	left, err := f.verhoudings.ListForLidmaat(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestBulkDelete(t *testing.T) {
	f := newFixture(t)
	a := f.create(t, models.CreateLidmaatRequest{Naam: "Jan", Van: "Botha"})
	b := f.create(t, models.CreateLidmaatRequest{Naam: "Marie", Van: "Botha"})

	res := f.svc.BulkDelete(context.Background(), []uuid.UUID{a.ID, uuid.New(), b.ID})
	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
}

func TestListFilters(t *testing.T) {
	f := newFixture(t)
	f.create(t, models.CreateLidmaatRequest{Naam: "Jan", Van: "Botha", Epos: "jan@voorbeeld.com"})
	f.create(t, models.CreateLidmaatRequest{Naam: "Marie", Van: "Smit", Rol: models.RolPredikant})

	got, err := f.svc.List(context.Background(), f.gemeenteID, models.ListFilter{Soek: "botha"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jan", got[0].Naam)

	got, err = f.svc.List(context.Background(), f.gemeenteID, models.ListFilter{Rol: models.RolPredikant})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Marie", got[0].Naam)
}
