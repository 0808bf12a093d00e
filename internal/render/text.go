package render

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// DefaultTextWidth is the bar width, in cells, of the longest bar.
const DefaultTextWidth = 40

// eighths are partial blocks from 1/8 to 7/8 of a cell.
var eighths = []rune{'▏', '▎', '▍', '▌', '▋', '▊', '▉'}

// Text writes d as a horizontal bar chart. Bars are scaled so the largest
// value spans width cells.
func Text(w io.Writer, d Document, width int) error {
	if width <= 0 {
		width = DefaultTextWidth
	}

	var sb strings.Builder
	sb.WriteString(d.Title + "\n")
	if d.Subtitle != "" {
		sb.WriteString(d.Subtitle + "\n")
	}
	fmt.Fprintf(&sb, "Estimated 1RM: %s\n", d.Result)
	if d.Note != "" {
		fmt.Fprintf(&sb, "! %s\n", d.Note)
	}

	if len(d.Chart.Bars) > 0 {
		sb.WriteString("\n")
		peak := d.Chart.Max()
		for _, b := range d.Chart.Bars {
			fmt.Fprintf(&sb, "%4s %s %s\n", b.Label, Bar(b.Value, peak, width), d.Chart.Options.FormatValue(b.Value))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Bar returns a bar of value scaled against max, padded to width cells.
func Bar(value, max float64, width int) string {
	if width <= 0 {
		return ""
	}
	units := 0
	if max > 0 && value > 0 {
		units = int(math.Round(value / max * float64(width*8)))
	}
	if units > width*8 {
		units = width * 8
	}

	full, rem := units/8, units%8
	var sb strings.Builder
	sb.WriteString(strings.Repeat("█", full))
	cells := full
	if rem > 0 {
		sb.WriteRune(eighths[rem-1])
		cells++
	}
	sb.WriteString(strings.Repeat(" ", width-cells))
	return sb.String()
}
