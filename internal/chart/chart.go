// Package chart shapes a percentage table into the bar chart a renderer
// consumes: ordered bars with palette colors plus display options.
package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bodythrive/onerm/internal/onerm"
)

// Color is a "#rrggbb" palette entry.
type Color string

// Palette is indexed by bar position. Bars get darker as the percentage
// drops; the last four share the darkest shade.
var Palette = [...]Color{
	"#3b82f6",
	"#2563eb",
	"#1d4ed8",
	"#1e40af",
	"#1e3a8a",
	"#1e3a8a",
	"#1e3a8a",
	"#1e3a8a",
}

// RGB decodes the color into its components.
func (c Color) RGB() (r, g, b uint8, err error) {
	s := strings.TrimPrefix(string(c), "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("color %q: want #rrggbb", string(c))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("color %q: %w", string(c), err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// Hex returns the color without the leading '#', upper-cased.
func (c Color) Hex() string {
	return strings.ToUpper(strings.TrimPrefix(string(c), "#"))
}

// Bar is one column of the chart.
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color Color   `json:"color"`
}

// Legend controls the chart legend.
type Legend struct {
	Display bool `json:"display"`
}

// Tooltip controls hover tooltips.
type Tooltip struct {
	Enabled bool `json:"enabled"`
}

// DataLabels controls the value printed on each bar.
type DataLabels struct {
	Display bool   `json:"display"`
	Color   string `json:"color"`
	Anchor  string `json:"anchor"`
	Align   string `json:"align"`
	Unit    string `json:"unit"`
}

// Options are the display options handed to the chart collaborator.
type Options struct {
	Responsive          bool       `json:"responsive"`
	MaintainAspectRatio bool       `json:"maintain_aspect_ratio"`
	Legend              Legend     `json:"legend"`
	Tooltip             Tooltip    `json:"tooltip"`
	DataLabels          DataLabels `json:"data_labels"`
}

// FormatValue renders a bar value the way its data label shows it.
func (o Options) FormatValue(v float64) string {
	return fmt.Sprintf("%.1f %s", onerm.Round1(v), o.DataLabels.Unit)
}

// Chart is a titled series of bars with options.
type Chart struct {
	Title   string  `json:"title"`
	Bars    []Bar   `json:"bars"`
	Options Options `json:"options"`
}

// DefaultOptions hides the legend, enables tooltips and labels every bar
// with its weight in kilograms.
func DefaultOptions() Options {
	return Options{
		Responsive:          true,
		MaintainAspectRatio: false,
		Legend:              Legend{Display: false},
		Tooltip:             Tooltip{Enabled: true},
		DataLabels: DataLabels{
			Display: true,
			Color:   "white",
			Anchor:  "end",
			Align:   "top",
			Unit:    onerm.Unit,
		},
	}
}

// Build converts the table into bars, keeping the table order.
func Build(table []onerm.PercentageEntry) Chart {
	bars := make([]Bar, 0, len(table))
	for i, e := range table {
		bars = append(bars, Bar{
			Label: fmt.Sprintf("%d%%", e.Percentage),
			Value: e.TargetWeight,
			Color: colorAt(i),
		})
	}
	return Chart{
		Title:   "Weight",
		Bars:    bars,
		Options: DefaultOptions(),
	}
}

func colorAt(i int) Color {
	if i >= len(Palette) {
		return Palette[len(Palette)-1]
	}
	return Palette[i]
}

// Max returns the largest bar value, or 0 for an empty chart.
func (c Chart) Max() float64 {
	var m float64
	for _, b := range c.Bars {
		if b.Value > m {
			m = b.Value
		}
	}
	return m
}
