package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// ErrorResponse is the JSON envelope for 400 and 500 responses. The help
// payload is attached so a caller can correct the request without reading
// documentation.
type ErrorResponse struct {
	Error string      `json:"error"`
	Help  HelpPayload `json:"help"`
}

// writeError writes the JSON error envelope with 2-space indentation.
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ErrorResponse{Error: "Error: " + message, Help: s.help}); err != nil {
		logrus.WithError(err).Error("[Gateway] failed to write error response")
	}
}

// writeJSON writes an already-serialized JSON success body.
func writeJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logrus.WithError(err).Error("[Gateway] failed to write response")
	}
}

// writeText writes a plain-text response, used for not-found bodies.
func writeText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := io.WriteString(w, message); err != nil {
		logrus.WithError(err).Error("[Gateway] failed to write response")
	}
}
