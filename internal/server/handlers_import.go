package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bodythrive/onerm/internal/calculator"
	"github.com/bodythrive/onerm/internal/onerm"
	"github.com/bodythrive/onerm/internal/workoutlog"
)

// maxImportBytes caps an uploaded workout export.
const maxImportBytes = 10 << 20

// handleImportAlpha estimates per-exercise maxes from an Alpha Progression
// CSV export. Nothing is stored.
func (s *Server) handleImportAlpha(w http.ResponseWriter, r *http.Request) {
	f := calculator.DefaultFormula
	if v := r.URL.Query().Get("formula"); v != "" {
		parsed, err := onerm.ParseFormula(v)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		f = parsed
	}

	sessions, err := workoutlog.Parse(http.MaxBytesReader(w, r.Body, maxImportBytes))
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": fmt.Sprintf("export exceeds %d bytes", tooBig.Limit)})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "parsing export: " + err.Error()})
		return
	}

	sum, err := workoutlog.Estimate(sessions, f)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.log.Info("alpha export estimated",
		"request_id", requestIDFromContext(r),
		"sessions", sum.Sessions,
		"sets", sum.SetsSeen,
		"records", len(sum.Records),
	)
	writeJSON(w, http.StatusOK, sum)
}
