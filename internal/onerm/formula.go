package onerm

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidInput is returned for a non-positive or non-finite weight,
	// or reps outside [MinReps, MaxReps].
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownFormula is returned for a formula that is not registered.
	ErrUnknownFormula = errors.New("unknown formula")
)

// Rep range accepted by every formula.
const (
	MinReps = 1
	MaxReps = 20
)

// Formula identifies a 1RM estimation formula.
type Formula uint8

const (
	Epley Formula = iota
	Brzycki
	Lombardi

	formulaCount
)

var formulaNames = [formulaCount]string{
	Epley:    "Epley",
	Brzycki:  "Brzycki",
	Lombardi: "Lombardi",
}

var formulaExpressions = [formulaCount]string{
	Epley:    "weight * (1 + reps / 30)",
	Brzycki:  "weight * (36 / (37 - reps))",
	Lombardi: "weight * reps^0.1",
}

// Formulas returns the registered formulas in selector order.
func Formulas() []Formula {
	return []Formula{Epley, Brzycki, Lombardi}
}

// Valid reports whether f is a registered formula.
func (f Formula) Valid() bool {
	return f < formulaCount
}

func (f Formula) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Formula(%d)", uint8(f))
	}
	return formulaNames[f]
}

// Expression returns the formula's equation in plain text.
func (f Formula) Expression() string {
	if !f.Valid() {
		return ""
	}
	return formulaExpressions[f]
}

// ParseFormula resolves a formula name, ignoring case and surrounding space.
func ParseFormula(name string) (Formula, error) {
	name = strings.TrimSpace(name)
	for _, f := range Formulas() {
		if strings.EqualFold(name, formulaNames[f]) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormula, name)
}

// MarshalText encodes the formula as its name.
func (f Formula) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText decodes a formula name.
func (f *Formula) UnmarshalText(text []byte) error {
	parsed, err := ParseFormula(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Apply evaluates the formula. Inputs are validated before evaluation and a
// non-finite result is reported as ErrInvalidInput.
func (f Formula) Apply(weight float64, reps int) (float64, error) {
	if err := Validate(weight, reps); err != nil {
		return 0, err
	}

	w, r := weight, float64(reps)
	var v float64
	switch f {
	case Epley:
		v = w * (1 + r/30)
	case Brzycki:
		// Unreachable with reps in range, kept for the 37-rep pole.
		if reps == 37 {
			return 0, fmt.Errorf("%w: brzycki undefined at 37 reps", ErrInvalidInput)
		}
		v = w * (36 / (37 - r))
	case Lombardi:
		v = w * math.Pow(r, 0.1)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownFormula, uint8(f))
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s produced %v", ErrInvalidInput, f, v)
	}
	return v, nil
}

// Validate checks weight and reps against the accepted ranges.
func Validate(weight float64, reps int) error {
	if err := ValidateWeight(weight); err != nil {
		return err
	}
	return ValidateReps(reps)
}

// ValidateWeight rejects non-finite and non-positive weights.
func ValidateWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: weight must be a finite number", ErrInvalidInput)
	}
	if weight <= 0 {
		return fmt.Errorf("%w: weight must be greater than 0, got %v", ErrInvalidInput, weight)
	}
	return nil
}

// ValidateReps rejects reps outside [MinReps, MaxReps].
func ValidateReps(reps int) error {
	if reps < MinReps || reps > MaxReps {
		return fmt.Errorf("%w: reps must be between %d and %d, got %d", ErrInvalidInput, MinReps, MaxReps, reps)
	}
	return nil
}
