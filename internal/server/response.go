package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/dgnsrekt/match-relay/internal/api/generated"
)

// writeJSON writes v as JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// detailErrorHandler renders validation failures in the detail shape.
func detailErrorHandler(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, generated.Detail{Detail: message})
}

// requestErrorHandler renders body decoding failures. Match publishers get
// the publish-status shape; everything else gets a detail.
func (s *Server) requestErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	message := err.Error()
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		message = "request body is empty"
	case errors.As(err, &maxErr):
		message = "request body too large"
	}

	s.logger.Error("error processing publish",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)

	if r.URL.Path == "/matches" {
		writeJSON(w, http.StatusBadRequest, generated.Status{Status: "error", Message: message})
		return
	}
	writeJSON(w, http.StatusBadRequest, generated.Detail{Detail: "invalid request body: " + message})
}

func (s *Server) responseErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) {
		// Caller went away while waiting; nobody is left to answer.
		s.logger.Debug("reader disconnected while waiting", zap.String("path", r.URL.Path))
		return
	}
	s.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, generated.Detail{Detail: err.Error()})
}
