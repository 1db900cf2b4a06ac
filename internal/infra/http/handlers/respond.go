package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/matheuslc/prospectly/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeUseCaseError maps the error taxonomy onto HTTP statuses. Anything
// unrecognized is a 500 with a generic message so internals never leak.
func writeUseCaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		writeError(w, http.StatusNotFound, "Prospect not found")
	case usecase.IsValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case usecase.IsGenerationError(err):
		writeError(w, http.StatusInternalServerError, "Failed to generate email. Please try again.")
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
