package httptransport

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemeentenet/internal/gemeente"
	lidstore "gemeentenet/internal/lidmaat/store"
	"gemeentenet/internal/platform/metrics"
	"gemeentenet/internal/platform/token"
	"gemeentenet/internal/wyk"
)

const adminToken = "toets-admin-token"

// metrics.New registers on the global Prometheus registry, so it can only
// run once per process; share one instance across the tests in this package.
var testMetrics = metrics.New()

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := token.NewManager("toets-sleutel", time.Hour)
	svc := gemeente.NewService(gemeente.NewInMemoryStore(), lidstore.NewInMemoryStore(), wyk.NewInMemoryStore(), gemeente.WithLogger(logger))

	return NewRouter(Deps{
		Logger:     logger,
		Metrics:    testMetrics,
		Tokens:     tokens,
		AdminToken: adminToken,
		Auth:       NewAuthHandler(tokens, logger),
		Gemeentes:  gemeente.NewHandler(svc, logger),
	})
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAuthTokenRequiresAdminToken(t *testing.T) {
	router := newTestRouter(t)
	body := bytes.NewBufferString(`{"actor_id":"` + uuid.NewString() + `","naam":"Ds. Venter"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/token", body))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRequiresBearer(t *testing.T) {
	router := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/gemeentes", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/gemeentes", nil)
	req.Header.Set("Authorization", "Bearer nie-n-token")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Full flow: mint a session token, then use it on the admin surface.
func TestTokenFlow(t *testing.T) {
	router := newTestRouter(t)

	body := bytes.NewBufferString(`{"actor_id":"` + uuid.NewString() + `","naam":"Ds. Venter","rol":"admin"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/token", body)
	req.Header.Set("X-Admin-Token", adminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var issued struct {
		Token     string `json:"token"`
		TokenType string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &issued))
	assert.Equal(t, "Bearer", issued.TokenType)
	require.NotEmpty(t, issued.Token)

	req = httptest.NewRequest(http.MethodPost, "/admin/gemeentes", bytes.NewBufferString(`{"naam":"NHKA Pretoria"}`))
	req.Header.Set("Authorization", "Bearer "+issued.Token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/admin/gemeentes", nil)
	req.Header.Set("Authorization", "Bearer "+issued.Token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "NHKA Pretoria")
}
