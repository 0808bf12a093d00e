package workoutlog

import (
	"time"

	"github.com/bodythrive/onerm/internal/onerm"
)

// Record is the best estimated max found for one exercise.
type Record struct {
	Exercise  string        `json:"exercise"`
	Equipment string        `json:"equipment,omitempty"`
	Date      time.Time     `json:"date"`
	Weight    float64       `json:"weight"`
	Reps      int           `json:"reps"`
	Formula   onerm.Formula `json:"formula"`
	OneRM     float64       `json:"one_rm"`
	Display   string        `json:"display"`
}

// Summary is the outcome of estimating a whole export.
type Summary struct {
	Sessions    int      `json:"sessions"`
	SetsSeen    int      `json:"sets_seen"`
	SetsSkipped int      `json:"sets_skipped"`
	Records     []Record `json:"records"`
}

// Estimate finds the highest estimated max per exercise using f. Warmups,
// bodyweight-plus sets and sets outside the formula's domain are skipped.
// Records keep the order in which exercises first appear.
func Estimate(sessions []Session, f onerm.Formula) (Summary, error) {
	if !f.Valid() {
		return Summary{}, onerm.ErrUnknownFormula
	}

	sum := Summary{Sessions: len(sessions), Records: []Record{}}
	best := make(map[string]int)

	for _, s := range sessions {
		for _, ex := range s.Exercises {
			for _, set := range ex.Sets {
				sum.SetsSeen++
				if set.Warmup || set.BodyweightPlus {
					sum.SetsSkipped++
					continue
				}
				est, err := f.Apply(set.Weight, set.Reps)
				if err != nil {
					sum.SetsSkipped++
					continue
				}

				rec := Record{
					Exercise:  ex.Name,
					Equipment: ex.Equipment,
					Date:      s.Date,
					Weight:    set.Weight,
					Reps:      set.Reps,
					Formula:   f,
					OneRM:     onerm.Round1(est),
					Display:   onerm.FormatWeight(est),
				}
				i, ok := best[ex.Name]
				switch {
				case !ok:
					best[ex.Name] = len(sum.Records)
					sum.Records = append(sum.Records, rec)
				case rec.OneRM > sum.Records[i].OneRM:
					sum.Records[i] = rec
				}
			}
		}
	}
	return sum, nil
}
