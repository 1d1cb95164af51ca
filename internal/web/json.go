// Package web holds the small response helpers shared by the per-context
// HTTP handlers.
package web

import (
	"encoding/json"
	"errors"
	"net/http"

	shared "github.com/Harish120/go-commerce/internal/shared/domain"
)

func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps domain error kinds to status codes. Anything unrecognized
// is a 500 with a generic body so internals don't leak.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, shared.ErrUnavailable), errors.Is(err, shared.ErrInsufficientStock):
		WriteJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, shared.ErrInvalidValue), errors.Is(err, shared.ErrCurrencyMismatch):
		WriteJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
