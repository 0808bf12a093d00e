package chart

import (
	"encoding/json"
	"testing"

	"github.com/bodythrive/onerm/internal/onerm"
)

// TestBuildEpleyDefaults verifies labels, values and colors for the 100x5 Epley table.
func TestBuildEpleyDefaults(t *testing.T) {
	m, err := onerm.Estimate(100, 5, onerm.Epley)
	if err != nil {
		t.Fatal(err)
	}
	c := Build(onerm.BuildTable(m))

	if len(c.Bars) != 8 {
		t.Fatalf("bars = %d, want 8", len(c.Bars))
	}
	wantLabels := []string{"90%", "80%", "70%", "60%", "50%", "40%", "30%", "20%"}
	for i, b := range c.Bars {
		if b.Label != wantLabels[i] {
			t.Errorf("bar %d label = %q, want %q", i, b.Label, wantLabels[i])
		}
		if b.Color != Palette[i] {
			t.Errorf("bar %d color = %q, want %q", i, b.Color, Palette[i])
		}
	}
	if c.Bars[0].Value != 105.0 {
		t.Errorf("bar 0 value = %v, want 105.0", c.Bars[0].Value)
	}
	if c.Bars[1].Value != 93.3 {
		t.Errorf("bar 1 value = %v, want 93.3", c.Bars[1].Value)
	}
}

// TestPaletteDarkensDownward verifies the bottom four bars share the darkest shade.
func TestPaletteDarkensDownward(t *testing.T) {
	for i := 4; i < len(Palette); i++ {
		if Palette[i] != "#1e3a8a" {
			t.Errorf("palette[%d] = %q, want #1e3a8a", i, Palette[i])
		}
	}
	seen := map[Color]bool{}
	for _, c := range Palette[:5] {
		if seen[c] {
			t.Errorf("palette repeats %q before the dark tail", c)
		}
		seen[c] = true
	}
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if o.Legend.Display {
		t.Error("legend should be hidden")
	}
	if !o.Tooltip.Enabled {
		t.Error("tooltip should be enabled")
	}
	if got := o.FormatValue(93.3); got != "93.3 kg" {
		t.Errorf("FormatValue = %q, want %q", got, "93.3 kg")
	}
	if got := o.FormatValue(105); got != "105.0 kg" {
		t.Errorf("FormatValue = %q, want %q", got, "105.0 kg")
	}
}

func TestColorRGB(t *testing.T) {
	r, g, b, err := Color("#3b82f6").RGB()
	if err != nil {
		t.Fatal(err)
	}
	if r != 0x3b || g != 0x82 || b != 0xf6 {
		t.Errorf("RGB = %d,%d,%d, want 59,130,246", r, g, b)
	}
	if _, _, _, err := Color("blue").RGB(); err == nil {
		t.Error("expected error for non-hex color")
	}
	if got := Color("#1e3a8a").Hex(); got != "1E3A8A" {
		t.Errorf("Hex = %q, want 1E3A8A", got)
	}
}

func TestChartJSON(t *testing.T) {
	c := Build(onerm.BuildTable(112.5))
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Chart
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Bars[7].Label != "20%" || decoded.Bars[7].Value != 22.5 {
		t.Errorf("last bar = %+v, want 20%% / 22.5", decoded.Bars[7])
	}
	if decoded.Options.DataLabels.Unit != "kg" {
		t.Errorf("unit = %q, want kg", decoded.Options.DataLabels.Unit)
	}
}

func TestMax(t *testing.T) {
	if got := Build(onerm.BuildTable(200)).Max(); got != 180 {
		t.Errorf("Max = %v, want 180", got)
	}
	if got := (Chart{}).Max(); got != 0 {
		t.Errorf("empty Max = %v, want 0", got)
	}
}
