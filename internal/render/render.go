// Package render draws a calculator view as a terminal chart, an Excel
// workbook with a native column chart, or a one-page PDF.
package render

import (
	"fmt"
	"strconv"

	"github.com/bodythrive/onerm/internal/calculator"
	"github.com/bodythrive/onerm/internal/chart"
)

// Title heads every rendered document.
const Title = "1RM Calculator"

// Document is the renderer-neutral content of one export.
type Document struct {
	Title    string
	Subtitle string
	Result   string
	Note     string
	Chart    chart.Chart
}

// FromView builds the document for v. Invalid views carry their error as
// a note and an empty chart.
func FromView(v calculator.View) Document {
	d := Document{
		Title:    Title,
		Subtitle: fmt.Sprintf("%s formula, %s kg x %d reps", v.Formula, strconv.FormatFloat(v.Weight, 'f', -1, 64), v.Reps),
		Result:   v.Display,
		Chart:    v.Chart,
	}
	if !v.Valid {
		d.Note = v.Error
	}
	return d
}
