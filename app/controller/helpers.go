package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"wce-catalog/repository"
	"wce-catalog/service"
)

// writeJSON sends a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeError maps the error taxonomy onto HTTP statuses: not-found -> 404, validation
// -> 400, slug conflict -> 409, anything else -> 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, repository.ErrSlugConflict):
		status = http.StatusConflict
	}
	http.Error(w, fmt.Sprintf("%v", err), status)
}
