package wyk

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	derrors "gemeentenet/pkg/domain-errors"

	"gemeentenet/internal/transport/http/shared"
)

type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the wyk and besoekpunt routes on a gemeente-scoped router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/wyke", func(r chi.Router) {
		r.Get("/", h.listWyke)
		r.Post("/", h.createWyk)
		r.Get("/{wykID}", h.getWyk)
		r.Put("/{wykID}", h.updateWyk)
		r.Delete("/{wykID}", h.deleteWyk)
		r.Get("/{wykID}/besoekpunte", h.listBesoekpunteVirWyk)
	})
	r.Route("/besoekpunte", func(r chi.Router) {
		r.Get("/", h.listBesoekpunte)
		r.Post("/", h.createBesoekpunt)
		r.Get("/{besoekpuntID}", h.getBesoekpunt)
		r.Put("/{besoekpuntID}", h.updateBesoekpunt)
		r.Delete("/{besoekpuntID}", h.deleteBesoekpunt)
	})
}

func (h *Handler) createWyk(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req CreateWykRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	wk, err := h.service.CreateWyk(r.Context(), gemeenteID, req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, wk)
}

func (h *Handler) getWyk(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "wykID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	wk, err := h.service.GetWyk(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, wk)
}

func (h *Handler) listWyke(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	wyke, err := h.service.ListWyke(r.Context(), gemeenteID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"wyke": wyke})
}

func (h *Handler) updateWyk(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "wykID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req UpdateWykRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	wk, err := h.service.UpdateWyk(r.Context(), id, req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, wk)
}

func (h *Handler) deleteWyk(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "wykID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if err := h.service.DeleteWyk(r.Context(), id); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createBesoekpunt(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req CreateBesoekpuntRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	b, err := h.service.CreateBesoekpunt(r.Context(), gemeenteID, req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, b)
}

func (h *Handler) getBesoekpunt(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "besoekpuntID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	b, err := h.service.GetBesoekpunt(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) listBesoekpunte(w http.ResponseWriter, r *http.Request) {
	gemeenteID, err := shared.PathUUID(r, "gemeenteID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	punte, err := h.service.ListBesoekpunte(r.Context(), gemeenteID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"besoekpunte": punte})
}

func (h *Handler) listBesoekpunteVirWyk(w http.ResponseWriter, r *http.Request) {
	wykID, err := shared.PathUUID(r, "wykID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	punte, err := h.service.ListBesoekpunteVirWyk(r.Context(), wykID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"besoekpunte": punte})
}

func (h *Handler) updateBesoekpunt(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "besoekpuntID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req UpdateBesoekpuntRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	b, err := h.service.UpdateBesoekpunt(r.Context(), id, req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) deleteBesoekpunt(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathUUID(r, "besoekpuntID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if err := h.service.DeleteBesoekpunt(r.Context(), id); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
