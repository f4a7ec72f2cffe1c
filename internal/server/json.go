package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// errorResponse is the JSON shape of every error the API returns.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	attrs := []any{
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"request_id", middleware.GetReqID(r.Context()),
	}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	s.logger.Error("request failed", attrs...)
	writeJSON(w, status, errorResponse{Error: msg})
}
