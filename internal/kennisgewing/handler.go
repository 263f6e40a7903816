package kennisgewing

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

// Register mounts the notification routes on a gemeente-scoped router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/kennisgewings", func(r chi.Router) {
		r.Get("/", h.listRecent)
		r.Post("/", h.send)
		r.Delete("/{kennisgewingID}", h.delete)
	})
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	k, err := h.service.Send(r.Context(), gemeenteID, req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, k)
}

func (h *Handler) listRecent(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	entries, err := h.service.ListRecent(r.Context(), gemeenteID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"kennisgewings": entries})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "kennisgewingID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
