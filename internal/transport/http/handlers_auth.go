package httptransport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gemeentenet/internal/platform/token"
	"gemeentenet/internal/transport/http/shared"
	derrors "gemeentenet/pkg/domain-errors"
)

// TokenIssuer mints admin session tokens.
type TokenIssuer interface {
	Issue(claims token.Claims, now time.Time) (string, error)
}

// AuthHandler exchanges the static administrator token for a short-lived
// session token that carries the acting administrator's identity. Audit
// entries pick that identity up from the request context.
type AuthHandler struct {
	tokens TokenIssuer
	logger *slog.Logger
}

func NewAuthHandler(tokens TokenIssuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{tokens: tokens, logger: logger}
}

func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/token", h.issueToken)
}

type issueTokenRequest struct {
	ActorID uuid.UUID `json:"actor_id"`
	Naam    string    `json:"naam"`
	Rol     string    `json:"rol"`
}

func (h *AuthHandler) issueToken(w http.ResponseWriter, r *http.Request) {
	var req issueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "ongeldige versoekliggaam"))
		return
	}
	if req.ActorID == uuid.Nil {
		shared.WriteError(w, derrors.New(derrors.CodeValidation, "actor_id is verpligtend"))
		return
	}
	if req.Naam == "" {
		shared.WriteError(w, derrors.New(derrors.CodeValidation, "naam is verpligtend"))
		return
	}

	signed, err := h.tokens.Issue(token.Claims{ActorID: req.ActorID, ActorNaam: req.Naam, Rol: req.Rol}, time.Now())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "token uitreiking misluk", "error", err)
		shared.WriteError(w, derrors.New(derrors.CodeInternal, "kon nie token uitreik nie"))
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{
		"token":      signed,
		"token_type": "Bearer",
	})
}
