package onerm

import "fmt"

// Unit is appended to every displayed weight.
const Unit = "kg"

// Placeholder is displayed instead of a result when the input is invalid.
const Placeholder = "--"

// FormatWeight renders v with one decimal and the unit, e.g. "116.7 kg".
func FormatWeight(v float64) string {
	return fmt.Sprintf("%.1f %s", Round1(v), Unit)
}
