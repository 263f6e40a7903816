package toewysing

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gemeentenet/internal/lidmaat/models"
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

// Register mounts the assignment routes on a gemeente-scoped router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/toewysing", func(r chi.Router) {
		r.Post("/wyk", h.assignToWyk)
		r.Post("/wyk/verwyder", h.removeFromWyk)
		r.Post("/besoekpunt", h.assignToBesoekpunt)
		r.Post("/besoekpunt/verwyder", h.removeFromBesoekpunt)
		r.Get("/ontoegewys", h.listOntoegewys)
	})
}

type assignRequest struct {
	WykID        uuid.UUID   `json:"wyk_id"`
	BesoekpuntID uuid.UUID   `json:"besoekpunt_id"`
	LidmaatIDs   []uuid.UUID `json:"lidmaat_ids"`
}

func (h *Handler) assignToWyk(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	if req.WykID == uuid.Nil {
		shared.WriteError(w, derrors.New(derrors.CodeValidation, "wyk_id is verpligtend"))
		return
	}
	res, err := h.service.AssignToWyk(r.Context(), gemeenteID, req.WykID, req.LidmaatIDs)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) assignToBesoekpunt(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	if req.BesoekpuntID == uuid.Nil {
		shared.WriteError(w, derrors.New(derrors.CodeValidation, "besoekpunt_id is verpligtend"))
		return
	}
	res, err := h.service.AssignToBesoekpunt(r.Context(), gemeenteID, req.BesoekpuntID, req.LidmaatIDs)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) removeFromWyk(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	res, err := h.service.RemoveFromWyk(r.Context(), gemeenteID, req.LidmaatIDs)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) removeFromBesoekpunt(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	res, err := h.service.RemoveFromBesoekpunt(r.Context(), gemeenteID, req.LidmaatIDs)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) listOntoegewys(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	q := r.URL.Query()
	filter := OntoegewysFilter{
		Filter: q.Get("filter"),
		Soek:   q.Get("soek"),
		Rol:    models.Rol(q.Get("rol")),
	}
	lidmate, err := h.service.ListOntoegewys(r.Context(), gemeenteID, filter)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"lidmate": lidmate})
}
