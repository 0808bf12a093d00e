package onerm

import "math"

// Percentages of the estimated max listed in a table, heaviest first.
var Percentages = [...]int{90, 80, 70, 60, 50, 40, 30, 20}

// PercentageEntry is a training weight at a percentage of the estimated max.
type PercentageEntry struct {
	Percentage   int     `json:"percentage"`
	TargetWeight float64 `json:"target_weight"`
}

// BuildTable returns one entry per percentage, in descending order.
func BuildTable(estimatedMax float64) []PercentageEntry {
	table := make([]PercentageEntry, 0, len(Percentages))
	for _, p := range Percentages {
		table = append(table, PercentageEntry{
			Percentage:   p,
			TargetWeight: Round1(estimatedMax * (float64(p) / 100)),
		})
	}
	return table
}

// Round1 rounds to one decimal place, halves away from zero. Values of
// 1e15 and above have no fractional digits left and are returned as is.
func Round1(v float64) float64 {
	if math.Abs(v) >= 1e15 {
		return v
	}
	return math.Round(v*10) / 10
}
