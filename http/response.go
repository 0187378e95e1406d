package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"interest-calculator/domain"
	"interest-calculator/repository"
	"interest-calculator/service"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// writeJSON encodes into a buffer first so a failed encode never leaves a half-written 200.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	logger := zerolog.Ctx(r.Context())

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Error: vErr.Error(), Field: vErr.Field})
	case errors.Is(err, repository.ErrSessionNotFound):
		writeJSON(w, r, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrUnknownField):
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
