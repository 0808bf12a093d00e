// Package workoutlog reads Alpha Progression CSV exports and finds the best
// estimated one-rep max per exercise.
package workoutlog

import "time"

// Session is one logged workout.
type Session struct {
	Name      string     `json:"name"`
	Date      time.Time  `json:"date"`
	Duration  string     `json:"duration"`
	Exercises []Exercise `json:"exercises"`
}

// Exercise is one movement within a session.
type Exercise struct {
	Number     int    `json:"number"`
	Name       string `json:"name"`
	Equipment  string `json:"equipment,omitempty"`
	TargetReps int    `json:"target_reps"`
	Sets       []Set  `json:"sets"`
}

// Set is one logged set. Bodyweight-plus sets record only the added load.
type Set struct {
	Number         int     `json:"number"`
	Weight         float64 `json:"weight"`
	BodyweightPlus bool    `json:"bodyweight_plus,omitempty"`
	Reps           int     `json:"reps"`
	RIR            float64 `json:"rir"`
	Warmup         bool    `json:"warmup,omitempty"`
}
