// Package handler exposes member operations over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gemeentenet/internal/lidmaat/models"
	"gemeentenet/internal/lidmaat/service"
	"gemeentenet/internal/oudit"
	"gemeentenet/internal/transport/http/shared"
	"gemeentenet/internal/verhouding"
	derrors "gemeentenet/pkg/domain-errors"
)

// VerhoudingLister serves the member's relationship listing.
type VerhoudingLister interface {
	ListForLidmaat(ctx context.Context, lidmaatID uuid.UUID) ([]*verhouding.Verhouding, error)
}

// Toewysings covers the single-member removal routes. The batch service
// backs them with one-element slices.
type Toewysings interface {
	RemoveFromWyk(ctx context.Context, gemeenteID uuid.UUID, lidmaatIDs []uuid.UUID) (models.BatchResult, error)
	RemoveFromBesoekpunt(ctx context.Context, gemeenteID uuid.UUID, lidmaatIDs []uuid.UUID) (models.BatchResult, error)
}

type Handler struct {
	service     *service.Service
	oudit       *oudit.Recorder
	verhoudings VerhoudingLister
	toewysings  Toewysings
	logger      *slog.Logger
}

func NewHandler(svc *service.Service, rec *oudit.Recorder, verhoudings VerhoudingLister, toewysings Toewysings, logger *slog.Logger) *Handler {
	return &Handler{service: svc, oudit: rec, verhoudings: verhoudings, toewysings: toewysings, logger: logger}
}

// Register mounts the member routes on a gemeente-scoped router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/lidmate", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/duplikate", h.findDuplikate)
		r.Post("/duplikate/opruim", h.resolveDuplikate)
		r.Post("/bulk-verwyder", h.bulkDelete)
		r.Get("/{lidmaatID}", h.get)
		r.Put("/{lidmaatID}", h.update)
		r.Delete("/{lidmaatID}", h.delete)
		r.Post("/{lidmaatID}/oorlede", h.markOorlede)
		r.Get("/{lidmaatID}/oudit", h.listOudit)
		r.Get("/{lidmaatID}/verhoudings", h.listVerhoudings)
		r.Delete("/{lidmaatID}/wyk", h.removeWyk)
		r.Delete("/{lidmaatID}/besoekpunt", h.removeBesoekpunt)
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req models.CreateLidmaatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	l, err := h.service.Create(r.Context(), gemeenteID, req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, l)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "lidmaatID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	l, err := h.service.Get(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, l)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	filter := models.ListFilter{
		Soek: r.URL.Query().Get("soek"),
		Rol:  models.Rol(r.URL.Query().Get("rol")),
	}
	lidmate, err := h.service.List(r.Context(), gemeenteID, filter)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"lidmate": lidmate})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "lidmaatID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req models.UpdateLidmaatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	l, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, l)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "lidmaatID")
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

func (h *Handler) markOorlede(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "lidmaatID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	l, err := h.service.MarkOorlede(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, l)
}

func (h *Handler) bulkDelete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []uuid.UUID `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	if len(req.IDs) == 0 {
		shared.WriteError(w, derrors.New(derrors.CodeValidation, "geen lidmate gekies nie"))
		return
	}
	res := h.service.BulkDelete(r.Context(), req.IDs)
	shared.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) findDuplikate(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	groepe, err := h.service.FindDuplikate(r.Context(), gemeenteID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"groepe": groepe})
}

func (h *Handler) resolveDuplikate(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req struct {
		Keep map[string]uuid.UUID `json:"behou"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	res, err := h.service.ResolveDuplikate(r.Context(), gemeenteID, req.Keep)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) listOudit(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "lidmaatID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	entries, err := h.oudit.List(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"oudit": entries})
}

func (h *Handler) removeWyk(w http.ResponseWriter, r *http.Request) {
	h.removeToewysing(w, r, h.toewysings.RemoveFromWyk)
}

func (h *Handler) removeBesoekpunt(w http.ResponseWriter, r *http.Request) {
	h.removeToewysing(w, r, h.toewysings.RemoveFromBesoekpunt)
}

func (h *Handler) removeToewysing(w http.ResponseWriter, r *http.Request, remove func(context.Context, uuid.UUID, []uuid.UUID) (models.BatchResult, error)) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	id, err := shared.PathUUID(r, "lidmaatID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	res, err := remove(r.Context(), gemeenteID, []uuid.UUID{id})
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if res.Failed > 0 {
		shared.WriteError(w, derrors.New(derrors.CodeNotFound, "lidmaat nie gevind nie"))
		return
	}
	l, err := h.service.Get(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, l)
}

func (h *Handler) listVerhoudings(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "lidmaatID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	verhoudings, err := h.verhoudings.ListForLidmaat(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"verhoudings": verhoudings})
}
