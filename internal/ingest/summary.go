package ingest

import (
	"math"

	"github.com/claude/gymez/internal/models"
	"github.com/claude/gymez/internal/strength"
)

// LbsPerKg converts logged kilograms to the pound thresholds used by
// strength.Classify.
const LbsPerKg = 2.20462

// Summarize finds, per exercise and equipment, the working set with the
// highest estimated one-rep max under f. Warmups are ignored. Bodyweight-plus
// sets and sets outside the estimator's input range are counted as skipped.
// Lifts keep the order in which exercises first appear; ties keep the
// earlier set.
func Summarize(sessions []models.WorkoutSession, f strength.Formula) models.TrainingSummary {
	sum := models.TrainingSummary{Formula: f, Sessions: len(sessions), Lifts: []models.LiftBest{}}
	index := map[[2]string]int{}

	for _, s := range sessions {
		for _, ex := range s.Exercises {
			for _, set := range ex.Sets {
				if set.IsWarmup {
					continue
				}
				sum.WorkingSets++
				if set.IsBodyweightPlus {
					sum.SkippedSets++
					continue
				}
				est, ok := strength.Estimate(set.WeightKg, set.Reps, f)
				if !ok {
					sum.SkippedSets++
					continue
				}

				key := [2]string{ex.Name, ex.Equipment}
				i, seen := index[key]
				if seen && est <= sum.Lifts[i].OneRepMaxKg {
					continue
				}
				lbs := est * LbsPerKg
				best := models.LiftBest{
					Exercise:     ex.Name,
					Equipment:    ex.Equipment,
					Date:         s.Date,
					WeightKg:     set.WeightKg,
					Reps:         set.Reps,
					OneRepMaxKg:  est,
					OneRepMaxLbs: math.Round(lbs),
					Tier:         strength.Classify(lbs, ex.Name),
				}
				if seen {
					sum.Lifts[i] = best
				} else {
					index[key] = len(sum.Lifts)
					sum.Lifts = append(sum.Lifts, best)
				}
			}
		}
	}
	return sum
}
