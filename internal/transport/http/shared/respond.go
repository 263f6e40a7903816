// Package shared centralizes JSON response and error envelope writing so every
// handler translates domain errors the same way.
package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	derrors "gemeentenet/pkg/domain-errors"
)

// PathUUID parses a UUID route parameter.
func PathUUID(r *http.Request, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, derrors.Newf(derrors.CodeBadRequest, "ongeldige %s", param)
	}
	return id, nil
}

// WriteJSON writes a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// WriteError translates a domain error into the JSON error envelope.
func WriteError(w http.ResponseWriter, err error) {
	code := derrors.CodeOf(err)
	WriteJSON(w, derrors.ToHTTPStatus(code), map[string]string{
		"error":             string(code),
		"error_description": derrors.MessageOf(err),
	})
}
