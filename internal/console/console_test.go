package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bodythrive/onerm/internal/calculator"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string) (*calculator.Calculator, string) {
	t.Helper()
	calc := calculator.New()
	var out bytes.Buffer
	require.NoError(t, NewSession(calc, strings.NewReader(input), &out, 20).Run())
	return calc, out.String()
}

func TestSessionInitialView(t *testing.T) {
	_, out := run(t, "")
	require.Contains(t, out, "Estimated 1RM: 116.7 kg")
	require.Contains(t, out, " 90%")
}

func TestSessionEdits(t *testing.T) {
	calc, out := run(t, "formula brzycki\n120x3\n")
	require.Equal(t, 120.0, calc.Weight())
	require.Equal(t, 3, calc.Reps())
	require.Contains(t, out, "Brzycki formula, 120 kg x 3 reps")
}

func TestSessionInvalidInput(t *testing.T) {
	calc, out := run(t, "reps 25\n")
	require.Equal(t, 25, calc.Reps())
	require.Contains(t, out, "error: ")
	require.Contains(t, out, "Estimated 1RM: --")
}

func TestSessionUnknownCommand(t *testing.T) {
	_, out := run(t, "squat 5\n")
	require.Contains(t, out, "(type help)")
	require.Equal(t, 1, strings.Count(out, "Estimated 1RM"))
}

func TestSessionHelpAndQuit(t *testing.T) {
	calc, out := run(t, "help\nquit\nweight 200\n")
	require.Contains(t, out, calculator.HelpText)
	require.Equal(t, calculator.DefaultWeight, calc.Weight())
}

func TestSessionReset(t *testing.T) {
	calc, out := run(t, "weight 60\nreset\n")
	require.Equal(t, calculator.DefaultWeight, calc.Weight())
	require.Equal(t, 3, strings.Count(out, "Estimated 1RM"))
}
