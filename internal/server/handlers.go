package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bodythrive/onerm/internal/calculator"
	"github.com/bodythrive/onerm/internal/onerm"
)

// maxBatch caps the number of inputs in one batch request.
const maxBatch = 100

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFormulas(w http.ResponseWriter, r *http.Request) {
	writeCachedJSON(w, r, calculator.ListFormulas())
}

func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	writeCachedJSON(w, r, calculator.New().View())
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	view, err := viewFromQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeCachedJSON(w, r, view)
}

// BatchItem is one input of a batch request. Missing fields take the
// calculator defaults.
type BatchItem struct {
	Weight  *float64 `json:"weight"`
	Reps    *int     `json:"reps"`
	Formula string   `json:"formula"`
}

// BatchResult is the outcome of one batch item.
type BatchResult struct {
	Index  int              `json:"index"`
	Code   string           `json:"code,omitempty"`
	Error  string           `json:"error,omitempty"`
	Result *calculator.View `json:"result,omitempty"`
}

func (s *Server) handleEstimateBatch(w http.ResponseWriter, r *http.Request) {
	var items []BatchItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if len(items) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "batch is empty"})
		return
	}
	if len(items) > maxBatch {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("batch exceeds %d items", maxBatch)})
		return
	}

	results := make([]BatchResult, 0, len(items))
	for i, item := range items {
		results = append(results, evaluateItem(i, item))
	}
	writeJSON(w, http.StatusOK, results)
}

func evaluateItem(i int, item BatchItem) BatchResult {
	weight, reps, f := calculator.DefaultWeight, calculator.DefaultReps, calculator.DefaultFormula
	if item.Weight != nil {
		weight = *item.Weight
	}
	if item.Reps != nil {
		reps = *item.Reps
	}
	if item.Formula != "" {
		parsed, err := onerm.ParseFormula(item.Formula)
		if err != nil {
			return BatchResult{Index: i, Code: errorCode(err), Error: err.Error()}
		}
		f = parsed
	}

	view := calculator.Evaluate(weight, reps, f)
	res := BatchResult{Index: i, Result: &view}
	if err := view.Err(); err != nil {
		res.Code = errorCode(err)
		res.Error = err.Error()
	}
	return res
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	weight, reps, _, err := parseInput(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := onerm.Validate(weight, reps); err != nil {
		s.writeError(w, r, err)
		return
	}

	views := make([]calculator.View, 0, len(onerm.Formulas()))
	for _, f := range onerm.Formulas() {
		views = append(views, calculator.Evaluate(weight, reps, f))
	}
	writeCachedJSON(w, r, views)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	view, err := viewFromQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeCachedJSON(w, r, view.Chart)
}

// parseInput reads weight, reps and formula from the query string.
// Absent parameters take the calculator defaults.
func parseInput(r *http.Request) (float64, int, onerm.Formula, error) {
	q := r.URL.Query()
	weight, reps, f := calculator.DefaultWeight, calculator.DefaultReps, calculator.DefaultFormula

	if v := q.Get("weight"); v != "" {
		parsed, err := onerm.ParseWeight(v)
		if err != nil {
			return 0, 0, 0, err
		}
		weight = parsed
	}
	if v := q.Get("reps"); v != "" {
		parsed, err := onerm.ParseReps(v)
		if err != nil {
			return 0, 0, 0, err
		}
		reps = parsed
	}
	if v := q.Get("formula"); v != "" {
		parsed, err := onerm.ParseFormula(v)
		if err != nil {
			return 0, 0, 0, err
		}
		f = parsed
	}
	return weight, reps, f, nil
}

// viewFromQuery evaluates the query input and fails on invalid input.
func viewFromQuery(r *http.Request) (calculator.View, error) {
	weight, reps, f, err := parseInput(r)
	if err != nil {
		return calculator.View{}, err
	}
	view := calculator.Evaluate(weight, reps, f)
	if err := view.Err(); err != nil {
		return calculator.View{}, err
	}
	return view, nil
}
