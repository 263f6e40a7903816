package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gemeentenet/internal/gemeente"
	"gemeentenet/internal/platform/metrics"
	"gemeentenet/internal/platform/middleware"
)

// Registrar is implemented by every gemeente-scoped feature handler.
type Registrar interface {
	Register(r chi.Router)
}

// Deps collects everything the router mounts. The transport layer stays thin:
// handlers delegate to domain services and all policy lives in middleware.
type Deps struct {
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
	Tokens     middleware.TokenValidator
	AdminToken string

	Auth      *AuthHandler
	Gemeentes *gemeente.Handler
	Scoped    []Registrar
}

// NewRouter wires all endpoints. The admin surface lives under /admin with a
// Bearer session token; tokens are minted at /auth/token behind the static
// administrator token.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Latency(deps.Metrics))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireAdminToken(deps.AdminToken, deps.Logger))
		deps.Auth.Register(r)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireAuth(deps.Tokens, deps.Logger))
		r.Route("/gemeentes", func(r chi.Router) {
			deps.Gemeentes.Register(r, func(r chi.Router) {
				for _, reg := range deps.Scoped {
					reg.Register(r)
				}
			})
		})
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
