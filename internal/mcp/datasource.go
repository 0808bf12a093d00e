package mcp

import (
	"context"

	"github.com/bodythrive/onerm/internal/calculator"
	"github.com/bodythrive/onerm/internal/onerm"
)

// DataSource abstracts where estimates come from. Local computes in process
// and HTTPClient asks a running onerm server.
type DataSource interface {
	Estimate(ctx context.Context, weight float64, reps int, f onerm.Formula) (calculator.View, error)
	Compare(ctx context.Context, weight float64, reps int) ([]calculator.View, error)
	Formulas(ctx context.Context) ([]calculator.FormulaInfo, error)
}

// Local evaluates everything in process.
type Local struct{}

var _ DataSource = Local{}

func (Local) Estimate(_ context.Context, weight float64, reps int, f onerm.Formula) (calculator.View, error) {
	v := calculator.Evaluate(weight, reps, f)
	if err := v.Err(); err != nil {
		return calculator.View{}, err
	}
	return v, nil
}

func (Local) Compare(_ context.Context, weight float64, reps int) ([]calculator.View, error) {
	if err := onerm.Validate(weight, reps); err != nil {
		return nil, err
	}
	views := make([]calculator.View, 0, len(onerm.Formulas()))
	for _, f := range onerm.Formulas() {
		views = append(views, calculator.Evaluate(weight, reps, f))
	}
	return views, nil
}

func (Local) Formulas(context.Context) ([]calculator.FormulaInfo, error) {
	return calculator.ListFormulas(), nil
}
