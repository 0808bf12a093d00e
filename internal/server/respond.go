package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bodythrive/onerm/internal/onerm"
	"github.com/cespare/xxhash/v2"
)

// Error codes returned alongside validation failures.
const (
	codeInvalidInput   = "invalid_input"
	codeUnknownFormula = "unknown_formula"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeCachedJSON writes v with an ETag derived from the encoded body and
// answers 304 when the client already holds it.
func writeCachedJSON(w http.ResponseWriter, r *http.Request, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	body = append(body, '\n')

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// errorCode maps a domain error to its API code, or "" if it is not one.
func errorCode(err error) string {
	switch {
	case errors.Is(err, onerm.ErrUnknownFormula):
		return codeUnknownFormula
	case errors.Is(err, onerm.ErrInvalidInput):
		return codeInvalidInput
	default:
		return ""
	}
}

// writeError writes domain errors as 400 with a code and anything else as 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errorCode(err)
	if code == "" {
		s.log.Error("request failed", "path", r.URL.Path, "request_id", requestIDFromContext(r), "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error(), "code": code})
}
