package gemeente

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gemeentenet/internal/transport/http/shared"
	derrors "gemeentenet/pkg/domain-errors"
)

type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the congregation routes. Unlike the feature handlers these
// are not nested under a gemeente scope; they manage the scopes themselves.
// The scoped callback lets the router hang feature subtrees under
// /{gemeenteID} without fighting chi over the path pattern.
func (h *Handler) Register(r chi.Router, scoped func(chi.Router)) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Route("/{gemeenteID}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Put("/", h.update)
		r.Post("/deaktiveer", h.deactivate)
		r.Post("/heraktiveer", h.reactivate)
		r.Get("/bank", h.getBank)
		r.Put("/bank", h.saveBank)
		r.Get("/oorsig", h.oorsig)
		if scoped != nil {
			scoped(r)
		}
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateGemeenteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	g, err := h.service.Create(r.Context(), req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, g)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	g, err := h.service.Get(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, g)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	gemeentes, err := h.service.List(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"gemeentes": gemeentes})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req UpdateGemeenteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	g, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, g)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	g, err := h.service.Deactivate(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, g)
}

func (h *Handler) reactivate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	g, err := h.service.Reactivate(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, g)
}

func (h *Handler) saveBank(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req SaveBankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	b, err := h.service.SaveBank(r.Context(), id, req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) getBank(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	b, err := h.service.GetBank(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) oorsig(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	o, err := h.service.Oorsig(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, o)
}
