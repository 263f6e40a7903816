package kennisgewing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "gemeentenet/pkg/domain-errors"
	"gemeentenet/pkg/sentinel"
)

type fakeGateway struct {
	last     *GatewayRequest
	eligible int
	err      error
}

func (g *fakeGateway) Send(_ context.Context, req GatewayRequest) (GatewayResponse, error) {
	g.last = &req
	if g.err != nil {
		return GatewayResponse{}, g.err
	}
	return GatewayResponse{EligibleSubscriptions: g.eligible}, nil
}

func newService(gw PushGateway) (*Service, *InMemoryStore) {
	store := NewInMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(store, gw, WithLogger(logger)), store
}

func TestSendDefaultsAndHistory(t *testing.T) {
	gw := &fakeGateway{eligible: 7}
	svc, store := newService(gw)
	gemeenteID := uuid.New()

	k, err := svc.Send(context.Background(), gemeenteID, SendRequest{
		Title: " Biduur ",
		Body:  "Woensdag om 19:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Biduur", k.Title)
	assert.Equal(t, "general", k.Tipe)
	assert.Equal(t, PriorityNormal, k.Priority)
	assert.Equal(t, AudienceAll, k.TargetAudience)
	assert.Equal(t, 7, k.EligibleSubscriptions)

	require.NotNil(t, gw.last)
	assert.Equal(t, "/kennisgewings", gw.last.Data.URL)

	hist, err := store.ListRecent(context.Background(), gemeenteID, HistoryLimit)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, k.ID, hist[0].ID)
}

func TestSendValidation(t *testing.T) {
	svc, _ := newService(&fakeGateway{})
	ctx := context.Background()
	gemeenteID := uuid.New()

	_, err := svc.Send(ctx, gemeenteID, SendRequest{Title: "Biduur"})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))

	_, err = svc.Send(ctx, gemeenteID, SendRequest{Title: "Biduur", Body: "x", TargetAudience: "almal"})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))

	_, err = svc.Send(ctx, gemeenteID, SendRequest{Title: "Biduur", Body: "x", TargetAudience: AudienceSpecificWyk})
	assert.True(t, derrors.HasCode(err, derrors.CodeValidation))
}

func TestSendGatewayUnavailable(t *testing.T) {
	gw := &fakeGateway{err: fmt.Errorf("push gateway status 502: %w", sentinel.ErrUnavailable)}
	svc, store := newService(gw)
	gemeenteID := uuid.New()

	_, err := svc.Send(context.Background(), gemeenteID, SendRequest{Title: "Biduur", Body: "x"})
	assert.True(t, derrors.HasCode(err, derrors.CodeInternal))
	assert.True(t, errors.Is(err, sentinel.ErrUnavailable))

	hist, err := store.ListRecent(context.Background(), gemeenteID, HistoryLimit)
	require.NoError(t, err)
	assert.Empty(t, hist, "mislukte stuur mag nie in die geskiedenis beland nie")
}

func TestDeleteNotFound(t *testing.T) {
	svc, _ := newService(&fakeGateway{})
	err := svc.Delete(context.Background(), uuid.New())
	assert.True(t, derrors.HasCode(err, derrors.CodeNotFound))
}

func TestHTTPGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/send-push-notification", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"eligible_subscriptions": 12}`))
	}))
	defer srv.Close()

	gw := NewHTTPGateway(srv.URL)
	resp, err := gw.Send(context.Background(), GatewayRequest{Title: "Biduur", Body: "x"})
	require.NoError(t, err)
	assert.Equal(t, 12, resp.EligibleSubscriptions)
}

func TestHTTPGatewayBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPGateway(srv.URL).Send(context.Background(), GatewayRequest{Title: "Biduur", Body: "x"})
	assert.True(t, errors.Is(err, sentinel.ErrUnavailable))
}
