package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vango-dev/toastify/pkg/engine"
)

var (
	// ErrBadRequest is returned for malformed or invalid API input.
	ErrBadRequest = errors.New("server: bad request")

	// ErrServerClosed is returned when closing an already closed server.
	ErrServerClosed = errors.New("server: closed")
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps err to a status code and writes a JSON error body.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, engine.ErrToastNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
