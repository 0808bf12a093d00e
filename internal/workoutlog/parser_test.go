package workoutlog

import (
	"strings"
	"testing"
)

const sampleCSV = `
"Legs · Day 2 · Week 4 · Push-Pull-Legs";"2026-02-19 4:54 h";"1:02 hr"
"1. Hack Squats · Machine · 8 reps";"WU1 · 37,5 kg · 9 reps<br>WU2 · 72,5 kg · 7 reps"
#;KG;REPS;RIR
1;115;8;1
2;115;10;1
3;115;10;1
"2. Sumo Squats · Smith machine · 10 reps";"WU1 · 35 kg · 8 reps"
#;KG;REPS;RIR
1;70;8;1
2;70;12;1
"3. Hyperextensions on Roman Chair · Bodyweight · 10 reps";"WU1 · +0 kg · 8 reps"
#;KG;REPS;RIR
1;+35;10;0
2;+35;9;1
3;+35;10;0
"4. Reverse Lunges · Dumbbells · 10 reps"
#;KG;REPS;RIR
1;10;10;1
2;10;10;1
3;10;10;0
"5. Standing Calf Raises · Machine · 12 reps";"WU1 · 47,5 kg · 8 reps"
#;KG;REPS;RIR
1;157,5;11;1
2;157,5;11;0
3;157,5;10;0
"6. Hanging Leg Raises · Bodyweight · 12 reps · 2 dropsets"
#;KG;REPS;RIR
1;+0;12;1
2;+0;12;1
3;+0;12;0

"Push · Day 1 · Week 4 · Push-Pull-Legs";"2026-02-17 5:04 h";"1:12 hr"
"1. Bench Press · Barbell · 6 reps";"WU1 · 22,5 kg · 10 reps<br>WU2 · 47,5 kg · 8 reps<br>WU3 · 77,5 kg · 6 reps"
#;KG;REPS;RIR
1;102,5;6;0
2;102,5;6;0,5
3;100;6;0
`

// TestParseSessions covers a two-session export end to end.
func TestParseSessions(t *testing.T) {
	sessions, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(sessions))
	}

	s1 := sessions[0]
	if s1.Name != "Legs · Day 2 · Week 4 · Push-Pull-Legs" || s1.Duration != "1:02 hr" {
		t.Errorf("s1 = %q %q", s1.Name, s1.Duration)
	}
	if s1.Date.Hour() != 4 || s1.Date.Minute() != 54 {
		t.Errorf("s1.Date = %v, want 04:54", s1.Date)
	}
	if len(s1.Exercises) != 6 {
		t.Fatalf("s1 exercises = %d, want 6", len(s1.Exercises))
	}

	cases := []struct {
		name, equipment string
		sets            int
	}{
		{"Hack Squats", "Machine", 5},
		{"Sumo Squats", "Smith machine", 3},
		{"Hyperextensions on Roman Chair", "Bodyweight", 4},
		{"Reverse Lunges", "Dumbbells", 3},
		{"Standing Calf Raises", "Machine", 4},
		{"Hanging Leg Raises", "Bodyweight", 3},
	}
	for i, tc := range cases {
		ex := s1.Exercises[i]
		if ex.Name != tc.name || ex.Equipment != tc.equipment {
			t.Errorf("exercise %d = %q / %q, want %q / %q", i, ex.Name, ex.Equipment, tc.name, tc.equipment)
		}
		if len(ex.Sets) != tc.sets {
			t.Errorf("%s sets = %d, want %d", tc.name, len(ex.Sets), tc.sets)
		}
	}

	bench := sessions[1].Exercises[0]
	if bench.TargetReps != 6 {
		t.Errorf("bench target = %d, want 6", bench.TargetReps)
	}
	working := bench.Sets[3]
	if working.Warmup || working.Weight != 102.5 || working.Reps != 6 {
		t.Errorf("bench set 1 = %+v", working)
	}
	if bench.Sets[4].RIR != 0.5 {
		t.Errorf("bench set 2 RIR = %v, want 0.5", bench.Sets[4].RIR)
	}
}

func TestParseLoad(t *testing.T) {
	cases := []struct {
		in     string
		weight float64
		bw     bool
	}{
		{"102,5", 102.5, false},
		{"+35", 35, true},
		{"+0", 0, true},
		{" 60 ", 60, false},
	}
	for _, tc := range cases {
		w, bw, err := parseLoad(tc.in)
		if err != nil {
			t.Errorf("parseLoad(%q) error: %v", tc.in, err)
			continue
		}
		if w != tc.weight || bw != tc.bw {
			t.Errorf("parseLoad(%q) = %v, %v, want %v, %v", tc.in, w, bw, tc.weight, tc.bw)
		}
	}

	if _, _, err := parseLoad("heavy"); err == nil {
		t.Error("expected error for non-numeric load")
	}
}

func TestParseWarmups(t *testing.T) {
	sets := parseWarmups("WU1 · 37,5 kg · 9 reps<br>junk<br>WU2 · +0 kg · 7 reps")
	if len(sets) != 2 {
		t.Fatalf("warmup sets = %d, want 2", len(sets))
	}
	if sets[0].Weight != 37.5 || sets[0].Reps != 9 || !sets[0].Warmup {
		t.Errorf("wu1 = %+v", sets[0])
	}
	if !sets[1].BodyweightPlus {
		t.Error("wu2 should be bodyweight-plus")
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"exercise without session": `"1. Bench Press · Barbell · 6 reps"`,
		"set without exercise":     "\"Push\";\"2026-02-17 5:04 h\";\"1:12 hr\"\n1;100;5;1",
		"bad weight":               "\"Push\";\"2026-02-17 5:04 h\";\"1:12 hr\"\n\"1. Bench Press · Barbell · 6 reps\"\n1;abc;5;1",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(in)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	sessions, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("sessions = %d, want 0", len(sessions))
	}
}
