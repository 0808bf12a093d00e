// Package console runs the calculator as a line-oriented terminal session.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/bodythrive/onerm/internal/calculator"
	"github.com/bodythrive/onerm/internal/render"
)

// Prompt is written before every line read.
const Prompt = "> "

// Session reads commands from in and writes results to out.
type Session struct {
	calc  *calculator.Calculator
	in    io.Reader
	out   io.Writer
	width int
}

// NewSession creates a session over calc. A width of 0 uses the default
// bar width.
func NewSession(calc *calculator.Calculator, in io.Reader, out io.Writer, width int) *Session {
	return &Session{calc: calc, in: in, out: out, width: width}
}

// Run prints the current result, then executes commands until quit or EOF.
func (s *Session) Run() error {
	if err := s.show(); err != nil {
		return err
	}

	sc := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, Prompt)
		if !sc.Scan() {
			fmt.Fprintln(s.out)
			return sc.Err()
		}

		cmd, err := s.calc.Exec(sc.Text())
		if errors.Is(err, calculator.ErrUnknownCommand) {
			fmt.Fprintf(s.out, "error: %v (type help)\n", err)
			continue
		}

		switch cmd {
		case calculator.CmdNone:
		case calculator.CmdQuit:
			return nil
		case calculator.CmdHelp:
			fmt.Fprintln(s.out, calculator.HelpText)
		default:
			if err != nil {
				fmt.Fprintf(s.out, "error: %v\n", err)
			}
			if err := s.show(); err != nil {
				return err
			}
		}
	}
}

func (s *Session) show() error {
	return render.Text(s.out, render.FromView(s.calc.View()), s.width)
}
