package onerm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	t.Run("unknown formula", func(t *testing.T) {
		_, err := Estimate(100, 5, Formula(3))
		require.ErrorIs(t, err, ErrUnknownFormula)
	})

	t.Run("unknown formula checked before input", func(t *testing.T) {
		_, err := Estimate(-1, 0, Formula(42))
		require.ErrorIs(t, err, ErrUnknownFormula)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := Estimate(100, 25, Brzycki)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, f := range Formulas() {
			a, err := Estimate(142.5, 7, f)
			require.NoError(t, err)
			b, err := Estimate(142.5, 7, f)
			require.NoError(t, err)
			require.Equal(t, a, b)
		}
	})
}

func TestCompute(t *testing.T) {
	t.Run("epley default scenario", func(t *testing.T) {
		res, err := Compute(LiftInput{Weight: 100, Reps: 5}, Epley)
		require.NoError(t, err)
		require.Equal(t, 116.7, Round1(res.OneRM))
		require.Equal(t, Epley, res.Formula)
		require.Len(t, res.Table, 8)
		require.Equal(t, PercentageEntry{Percentage: 90, TargetWeight: 105.0}, res.Table[0])
		require.Equal(t, PercentageEntry{Percentage: 80, TargetWeight: 93.3}, res.Table[1])
	})

	t.Run("brzycki scenario", func(t *testing.T) {
		res, err := Compute(LiftInput{Weight: 100, Reps: 5}, Brzycki)
		require.NoError(t, err)
		require.Equal(t, 112.5, res.OneRM)
	})

	t.Run("propagates validation errors", func(t *testing.T) {
		_, err := Compute(LiftInput{Weight: 0, Reps: 5}, Epley)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
