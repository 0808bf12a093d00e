package calculator

import (
	"testing"

	"github.com/bodythrive/onerm/internal/onerm"
	"github.com/stretchr/testify/require"
)

func TestExec(t *testing.T) {
	t.Run("sets each field", func(t *testing.T) {
		c := New()

		cmd, err := c.Exec("weight 120")
		require.NoError(t, err)
		require.Equal(t, CmdWeight, cmd)
		require.Equal(t, 120.0, c.Weight())

		cmd, err = c.Exec("/reps 3")
		require.NoError(t, err)
		require.Equal(t, CmdReps, cmd)
		require.Equal(t, 3, c.Reps())

		cmd, err = c.Exec("/formula@onerm_bot Lombardi")
		require.NoError(t, err)
		require.Equal(t, CmdFormula, cmd)
		require.Equal(t, onerm.Lombardi, c.Formula())

		cmd, err = c.Exec("brzycki")
		require.NoError(t, err)
		require.Equal(t, CmdFormula, cmd)
		require.Equal(t, onerm.Brzycki, c.Formula())
	})

	t.Run("lift shorthand", func(t *testing.T) {
		c := New()
		for _, line := range []string{"80x10", "80 x 10", "80X10", "80,0x10"} {
			cmd, err := c.Exec(line)
			require.NoError(t, err, line)
			require.Equal(t, CmdLift, cmd)
			require.Equal(t, 80.0, c.Weight())
			require.Equal(t, 10, c.Reps())
			c.Reset()
		}

		_, err := c.Exec("80x25")
		require.ErrorIs(t, err, onerm.ErrInvalidInput)
		require.Equal(t, 25, c.Reps())
	})

	t.Run("non-numeric values are rejected and not stored", func(t *testing.T) {
		c := New()
		cmd, err := c.Exec("weight lots")
		require.Equal(t, CmdWeight, cmd)
		require.ErrorIs(t, err, onerm.ErrInvalidInput)
		require.Equal(t, 100.0, c.Weight())

		_, err = c.Exec("reps")
		require.ErrorIs(t, err, onerm.ErrInvalidInput)
		require.Equal(t, 5, c.Reps())
	})

	t.Run("unknown formula and command", func(t *testing.T) {
		c := New()
		_, err := c.Exec("formula mayhew")
		require.ErrorIs(t, err, onerm.ErrUnknownFormula)

		cmd, err := c.Exec("deadlift")
		require.Equal(t, CmdNone, cmd)
		require.ErrorIs(t, err, ErrUnknownCommand)
	})

	t.Run("control commands", func(t *testing.T) {
		c := New()
		_, _ = c.Exec("weight 200")

		cases := map[string]Command{
			"":       CmdNone,
			"show":   CmdShow,
			"/start": CmdHelp,
			"help":   CmdHelp,
			"quit":   CmdQuit,
			"reset":  CmdReset,
		}
		for line, want := range cases {
			got, err := c.Exec(line)
			require.NoError(t, err, line)
			require.Equal(t, want, got, line)
		}
		require.Equal(t, 100.0, c.Weight())
	})
}

func TestExecLiftFiresOneChange(t *testing.T) {
	var views []View
	c := New(WithOnChange(func(v View) { views = append(views, v) }))

	cmd, err := c.Exec("120x3")
	require.NoError(t, err)
	require.Equal(t, CmdLift, cmd)
	require.Len(t, views, 1)
	require.Equal(t, 120.0, views[0].Weight)
	require.Equal(t, 3, views[0].Reps)

	_, err = c.Exec("0x25")
	require.ErrorIs(t, err, onerm.ErrInvalidInput)
	require.Len(t, views, 2)
	require.Equal(t, "--", views[1].Display)
	require.Equal(t, 25, c.Reps())
}
