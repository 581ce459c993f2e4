package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/plantnet/plantnet-server/internal/model"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// handleError maps domain errors to HTTP responses. Unauthenticated and
// internal causes are never detailed to the caller.
func handleError(w http.ResponseWriter, err error) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, model.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "unauthorized access")
	case errors.Is(err, model.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, model.ErrDownstreamUnavailable):
		writeError(w, http.StatusBadGateway, "service temporarily unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
