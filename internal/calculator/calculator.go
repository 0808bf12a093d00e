// Package calculator holds the interactive state of the 1RM calculator and
// turns it into a displayable view after every edit.
package calculator

import (
	"fmt"

	"github.com/bodythrive/onerm/internal/chart"
	"github.com/bodythrive/onerm/internal/onerm"
)

// Reset state.
const (
	DefaultWeight  = 100.0
	DefaultReps    = 5
	DefaultFormula = onerm.Epley
)

// View is everything a front end displays for one state.
type View struct {
	Weight  float64                 `json:"weight"`
	Reps    int                     `json:"reps"`
	Formula onerm.Formula           `json:"formula"`
	Valid   bool                    `json:"valid"`
	Error   string                  `json:"error,omitempty"`
	OneRM   float64                 `json:"one_rm"`
	Display string                  `json:"display"`
	Table   []onerm.PercentageEntry `json:"table"`
	Chart   chart.Chart             `json:"chart"`

	err error
}

// Err returns the evaluation error, or nil for a valid view.
func (v View) Err() error {
	return v.err
}

// Evaluate computes the view for one input without keeping any state.
// Invalid input yields a view with Valid false, no table and "--" displayed.
func Evaluate(weight float64, reps int, f onerm.Formula) View {
	v := View{Weight: weight, Reps: reps, Formula: f}

	res, err := onerm.Compute(onerm.LiftInput{Weight: weight, Reps: reps}, f)
	if err != nil {
		v.err = err
		v.Error = err.Error()
		v.Display = onerm.Placeholder
		v.Table = []onerm.PercentageEntry{}
		v.Chart = chart.Chart{Title: "Weight", Bars: []chart.Bar{}, Options: chart.DefaultOptions()}
		return v
	}

	v.Valid = true
	v.OneRM = res.OneRM
	v.Display = onerm.FormatWeight(res.OneRM)
	v.Table = res.Table
	v.Chart = chart.Build(res.Table)
	return v
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithOnChange registers fn to receive a fresh view after every edit.
func WithOnChange(fn func(View)) Option {
	return func(c *Calculator) {
		c.onChange = fn
	}
}

// Calculator owns weight, reps and formula. It is not safe for concurrent use.
type Calculator struct {
	weight   float64
	reps     int
	formula  onerm.Formula
	onChange func(View)
}

// New returns a calculator at the reset state.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		weight:  DefaultWeight,
		reps:    DefaultReps,
		formula: DefaultFormula,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Weight returns the stored weight, valid or not.
func (c *Calculator) Weight() float64 { return c.weight }

// Reps returns the stored repetitions, valid or not.
func (c *Calculator) Reps() int { return c.reps }

// Formula returns the selected formula.
func (c *Calculator) Formula() onerm.Formula { return c.formula }

// SetWeight stores w and reports whether it is acceptable.
// An unacceptable weight is still stored so the view can show "--".
func (c *Calculator) SetWeight(w float64) error {
	c.weight = w
	c.changed()
	return onerm.ValidateWeight(w)
}

// SetReps stores r and reports whether it is acceptable.
func (c *Calculator) SetReps(r int) error {
	c.reps = r
	c.changed()
	return onerm.ValidateReps(r)
}

// SetFormula selects f. Unregistered formulas are rejected and not stored.
func (c *Calculator) SetFormula(f onerm.Formula) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %d", onerm.ErrUnknownFormula, uint8(f))
	}
	c.formula = f
	c.changed()
	return nil
}

// SetFormulaName selects a formula by name.
func (c *Calculator) SetFormulaName(name string) error {
	f, err := onerm.ParseFormula(name)
	if err != nil {
		return err
	}
	return c.SetFormula(f)
}

// Reset restores weight 100, reps 5 and Epley.
func (c *Calculator) Reset() {
	c.weight = DefaultWeight
	c.reps = DefaultReps
	c.formula = DefaultFormula
	c.changed()
}

// View recomputes the result from the current state.
func (c *Calculator) View() View {
	return Evaluate(c.weight, c.reps, c.formula)
}

func (c *Calculator) changed() {
	if c.onChange != nil {
		c.onChange(c.View())
	}
}

// FormulaInfo describes one registered formula.
type FormulaInfo struct {
	Name       onerm.Formula `json:"name"`
	Expression string        `json:"expression"`
	Default    bool          `json:"default"`
}

// ListFormulas returns the registered formulas in selector order.
func ListFormulas() []FormulaInfo {
	var out []FormulaInfo
	for _, f := range onerm.Formulas() {
		out = append(out, FormulaInfo{
			Name:       f,
			Expression: f.Expression(),
			Default:    f == DefaultFormula,
		})
	}
	return out
}
