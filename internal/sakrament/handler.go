package sakrament

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

// Register mounts the sacrament journey routes on a gemeente-scoped router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/sakrament", func(r chi.Router) {
		r.Get("/kinders", h.listKinders)
		r.Post("/kinders", h.createKind)
		r.Get("/kinders/{kindID}", h.getKind)
		r.Put("/kinders/{kindID}", h.updateKind)
		r.Delete("/kinders/{kindID}", h.deleteKind)
		r.Get("/kinders/{kindID}/joernaal", h.listJoernaal)
		r.Post("/kinders/{kindID}/joernaal", h.addJoernaal)
		r.Delete("/joernaal/{joernaalID}", h.deleteJoernaal)
	})
}

func (h *Handler) createKind(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req SaveKindRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	k, err := h.service.CreateKind(r.Context(), gemeenteID, req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, k)
}

func (h *Handler) getKind(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "kindID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	k, err := h.service.GetKind(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, k)
}

func (h *Handler) listKinders(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	kinders, err := h.service.ListKinders(r.Context(), gemeenteID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"kinders": kinders})
}

func (h *Handler) updateKind(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "kindID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req SaveKindRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	k, err := h.service.UpdateKind(r.Context(), id, req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, k)
}

func (h *Handler) deleteKind(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "kindID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if err := h.service.DeleteKind(r.Context(), id); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addJoernaal(w http.ResponseWriter, r *http.Request) {
	kindID, err := shared.PathUUID(r, "kindID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req AddJoernaalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	j, err := h.service.AddJoernaal(r.Context(), kindID, req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, j)
}

func (h *Handler) listJoernaal(w http.ResponseWriter, r *http.Request) {
	kindID, err := shared.PathUUID(r, "kindID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	inskrywings, err := h.service.ListJoernaal(r.Context(), kindID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"joernaal": inskrywings})
}

func (h *Handler) deleteJoernaal(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "joernaalID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if err := h.service.DeleteJoernaal(r.Context(), id); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
