package calculator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bodythrive/onerm/internal/onerm"
)

// Command is the kind of edit or request a text line asked for.
type Command int

const (
	CmdNone Command = iota
	CmdWeight
	CmdReps
	CmdFormula
	CmdLift
	CmdReset
	CmdShow
	CmdHelp
	CmdQuit
)

// ErrUnknownCommand is returned by Exec for lines it cannot interpret.
var ErrUnknownCommand = errors.New("unknown command")

// HelpText lists the commands Exec understands.
const HelpText = `Commands:
  weight <kg>       set the lifted weight
  reps <n>          set repetitions (1-20)
  formula <name>    Epley, Brzycki or Lombardi
  <kg>x<reps>       set both at once, e.g. 100x5
  reset             back to 100 kg x 5, Epley
  show              print the current result
  help              this text
  quit              leave`

var liftPattern = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)\s*[xX×*]\s*(\d+)$`)

// Exec interprets one command line and applies it. A leading '/' and a
// trailing "@botname" on the command word are ignored, so chat commands
// share the same grammar.
func (c *Calculator) Exec(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return CmdNone, nil
	}

	if m := liftPattern.FindStringSubmatch(line); m != nil {
		return CmdLift, c.setLift(m[1], m[2])
	}

	fields := strings.Fields(line)
	name := strings.ToLower(strings.TrimPrefix(fields[0], "/"))
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	arg := strings.TrimSpace(strings.Join(fields[1:], " "))

	switch name {
	case "weight", "w":
		if arg == "" {
			return CmdWeight, fmt.Errorf("%w: weight needs a value", onerm.ErrInvalidInput)
		}
		w, err := onerm.ParseWeight(arg)
		if err != nil {
			return CmdWeight, err
		}
		return CmdWeight, c.SetWeight(w)
	case "reps", "r":
		if arg == "" {
			return CmdReps, fmt.Errorf("%w: reps needs a value", onerm.ErrInvalidInput)
		}
		r, err := onerm.ParseReps(arg)
		if err != nil {
			return CmdReps, err
		}
		return CmdReps, c.SetReps(r)
	case "formula", "f":
		return CmdFormula, c.SetFormulaName(arg)
	case "epley", "brzycki", "lombardi":
		return CmdFormula, c.SetFormulaName(name)
	case "reset":
		c.Reset()
		return CmdReset, nil
	case "show", "calc":
		return CmdShow, nil
	case "help", "start", "?":
		return CmdHelp, nil
	case "quit", "exit", "q":
		return CmdQuit, nil
	default:
		return CmdNone, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
}

func (c *Calculator) setLift(weight, reps string) error {
	w, err := onerm.ParseWeight(weight)
	if err != nil {
		return err
	}
	r, err := onerm.ParseReps(reps)
	if err != nil {
		return err
	}
	c.weight, c.reps = w, r
	c.changed()
	return errors.Join(onerm.ValidateWeight(w), onerm.ValidateReps(r))
}
