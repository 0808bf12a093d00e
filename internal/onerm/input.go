package onerm

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseWeight parses a weight field. Commas are accepted as decimal separators.
func ParseWeight(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: weight %q is not a number", ErrInvalidInput, s)
	}
	return w, nil
}

// ParseReps parses a reps field. Only whole numbers are accepted.
func ParseReps(s string) (int, error) {
	s = strings.TrimSpace(s)
	r, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: reps %q is not a whole number", ErrInvalidInput, s)
	}
	return r, nil
}
