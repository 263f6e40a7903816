package geloofsonderrig

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

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

// Register mounts the payment routes on a gemeente-scoped router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/geloofsonderrig", func(r chi.Router) {
		r.Get("/betalings", h.list)
		r.Post("/betalings", h.record)
		r.Get("/betalings/totale", h.totale)
	})
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req RecordBetalingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	b, err := h.service.Record(r.Context(), gemeenteID, req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, b)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	jaar := 0
	if raw := r.URL.Query().Get("jaar"); raw != "" {
		jaar, err = strconv.Atoi(raw)
		if err != nil {
			shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige jaar"))
			return
		}
	}
	betalings, err := h.service.List(r.Context(), gemeenteID, jaar)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"betalings": betalings})
}

func (h *Handler) totale(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	totale, err := h.service.Totale(r.Context(), gemeenteID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"totale": totale})
}
