package onerm

import (
	"fmt"
	"math"
)

// LiftInput is a weight lifted for a number of repetitions.
type LiftInput struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// Result is one full evaluation: the estimated max and its percentage table.
type Result struct {
	Weight  float64           `json:"weight"`
	Reps    int               `json:"reps"`
	Formula Formula           `json:"formula"`
	OneRM   float64           `json:"one_rm"`
	Table   []PercentageEntry `json:"table"`
}

// Estimate returns the estimated one-repetition maximum for weight x reps.
func Estimate(weight float64, reps int, f Formula) (float64, error) {
	if !f.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownFormula, uint8(f))
	}
	return f.Apply(weight, reps)
}

// Compute estimates the max for in and builds its percentage table.
func Compute(in LiftInput, f Formula) (Result, error) {
	m, err := Estimate(in.Weight, in.Reps, f)
	if err != nil {
		return Result{}, err
	}
	table := BuildTable(m)
	for _, e := range table {
		if math.IsNaN(e.TargetWeight) || math.IsInf(e.TargetWeight, 0) {
			return Result{}, fmt.Errorf("%w: %d%% of %v is not finite", ErrInvalidInput, e.Percentage, m)
		}
	}
	return Result{
		Weight:  in.Weight,
		Reps:    in.Reps,
		Formula: f,
		OneRM:   m,
		Table:   table,
	}, nil
}
