package sakrament

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "gemeentenet/pkg/domain-errors"
)

func newService() *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(NewInMemoryStore(), WithLogger(logger))
}

func TestCreateKindValidation(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	gemeenteID := uuid.New()

	_, err := svc.CreateKind(ctx, gemeenteID, SaveKindRequest{OuerID: uuid.New()})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))

	_, err = svc.CreateKind(ctx, gemeenteID, SaveKindRequest{Naam: "Lena"})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))

	_, err = svc.CreateKind(ctx, gemeenteID, SaveKindRequest{Naam: "Lena", OuerID: uuid.New(), Fase: "skool"})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))
}

func TestCreateKindDefaultFase(t *testing.T) {
	svc := newService()
	k, err := svc.CreateKind(context.Background(), uuid.New(), SaveKindRequest{
		Naam:   " Lena ",
		OuerID: uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Lena", k.Naam)
	assert.Equal(t, FaseDoop, k.Fase)
}

func TestUpdateKindKeepsFaseWhenOmitted(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	ouer := uuid.New()
	k, err := svc.CreateKind(ctx, uuid.New(), SaveKindRequest{Naam: "Lena", OuerID: ouer, Fase: FaseKategese})
	require.NoError(t, err)

	got, err := svc.UpdateKind(ctx, k.ID, SaveKindRequest{Naam: "Lena Marie", OuerID: ouer})
	require.NoError(t, err)
	assert.Equal(t, "Lena Marie", got.Naam)
	assert.Equal(t, FaseKategese, got.Fase)
}

func TestJoernaal(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	k, err := svc.CreateKind(ctx, uuid.New(), SaveKindRequest{Naam: "Lena", OuerID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.AddJoernaal(ctx, k.ID, AddJoernaalRequest{Titel: "  "})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))

	_, err = svc.AddJoernaal(ctx, uuid.New(), AddJoernaalRequest{Titel: "Doopdag"})
	assert.True(t, derrors.HasCode(err, derrors.CodeNotFound))

	j, err := svc.AddJoernaal(ctx, k.ID, AddJoernaalRequest{Titel: "Doopdag", Inhoud: "Gedoop deur ds. Venter"})
	require.NoError(t, err)
	assert.Equal(t, k.ID, j.KindID)
	assert.Equal(t, k.GemeenteID, j.GemeenteID)

	entries, err := svc.ListJoernaal(ctx, k.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NoError(t, svc.DeleteJoernaal(ctx, j.ID))
	err = svc.DeleteJoernaal(ctx, j.ID)
	assert.True(t, derrors.HasCode(err, derrors.CodeNotFound))
}

func TestDeleteKindCascadesJoernaal(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	k, err := svc.CreateKind(ctx, uuid.New(), SaveKindRequest{Naam: "Lena", OuerID: uuid.New()})
	require.NoError(t, err)
	j, err := svc.AddJoernaal(ctx, k.ID, AddJoernaalRequest{Titel: "Doopdag"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteKind(ctx, k.ID))

	_, err = svc.GetKind(ctx, k.ID)
	assert.True(t, derrors.HasCode(err, derrors.CodeNotFound))
	err = svc.DeleteJoernaal(ctx, j.ID)
	assert.True(t, derrors.HasCode(err, derrors.CodeNotFound))
}
