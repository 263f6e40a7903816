package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemeentenet/internal/lidmaat/models"
	"gemeentenet/internal/lidmaat/service"
	"gemeentenet/internal/lidmaat/store"
	"gemeentenet/internal/oudit"
	"gemeentenet/internal/statistiek"
	"gemeentenet/internal/toewysing"
	"gemeentenet/internal/verhouding"
	"gemeentenet/internal/wyk"
	"gemeentenet/pkg/testutil"
)

type fixture struct {
	router     chi.Router
	gemeenteID uuid.UUID
	wykA       *wyk.Wyk
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &fixture{gemeenteID: uuid.New()}

	lidmate := store.NewInMemoryStore()
	wyke := wyk.NewInMemoryStore()
	verhoudings := verhouding.NewInMemoryStore()
	rec := oudit.NewRecorder(oudit.NewInMemoryStore(), logger)

	now := time.Now().UTC()
	f.wykA = &wyk.Wyk{ID: uuid.New(), Naam: "Wyk Noord", GemeenteID: f.gemeenteID, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, wyke.CreateWyk(context.Background(), f.wykA))

	svc := service.NewService(lidmate, wyke, verhoudings, rec, statistiek.NewInMemoryStore(), service.WithLogger(logger))
	toewys := toewysing.NewService(lidmate, wyke, rec, toewysing.WithLogger(logger))
	h := NewHandler(svc, rec, verhoudings, toewys, logger)

	f.router = chi.NewRouter()
	f.router.Route("/gemeentes/{gemeenteID}", func(r chi.Router) {
		h.Register(r)
	})
	return f
}

func (f *fixture) path(suffix string) string {
	return "/gemeentes/" + f.gemeenteID.String() + suffix
}

func (f *fixture) createLidmaat(t *testing.T, req models.CreateLidmaatRequest) *models.Lidmaat {
	t.Helper()
	rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, f.path("/lidmate"), req))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return testutil.UnmarshalResponse[models.Lidmaat](t, rr)
}

func TestCreateAndGet(t *testing.T) {
	f := newFixture(t)
	l := f.createLidmaat(t, models.CreateLidmaatRequest{Naam: "Jan", Van: "Botha"})

	rr := testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, f.path("/lidmate/"+l.ID.String())))
	testutil.AssertStatus(t, rr, http.StatusOK)
	got := testutil.UnmarshalResponse[models.Lidmaat](t, rr)
	assert.Equal(t, "Botha", got.Van)

	rr = testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, f.path("/lidmate/"+uuid.NewString())))
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	testutil.AssertErrorCode(t, rr, "not_found")
}

func TestCreateBadBody(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodPost, f.path("/lidmate"), bytes.NewBufferString("{nie json"))
	rr := testutil.DoRequest(f.router, req)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestBulkDeleteRequiresIDs(t *testing.T) {
	f := newFixture(t)
	rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost,
		f.path("/lidmate/bulk-verwyder"), map[string]any{"ids": []uuid.UUID{}}))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	assert.Contains(t, rr.Body.String(), "geen lidmate gekies nie")
}

func TestRemoveWykRoute(t *testing.T) {
	f := newFixture(t)
	l := f.createLidmaat(t, models.CreateLidmaatRequest{Naam: "Jan", Van: "Botha", WykID: &f.wykA.ID})
	require.NotNil(t, l.WykID)

	rr := testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodDelete, f.path("/lidmate/"+l.ID.String()+"/wyk")))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	got := testutil.UnmarshalResponse[models.Lidmaat](t, rr)
	assert.Nil(t, got.WykID)

	rr = testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodDelete, f.path("/lidmate/"+uuid.NewString()+"/wyk")))
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}
