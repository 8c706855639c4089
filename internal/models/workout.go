package models

import (
	"time"

	"github.com/claude/gymez/internal/strength"
)

// WorkoutSession is one logged training session.
type WorkoutSession struct {
	Name      string            `json:"name"`
	Date      time.Time         `json:"date"`
	Duration  string            `json:"duration,omitempty"`
	Exercises []WorkoutExercise `json:"exercises"`
}

// WorkoutExercise is an exercise within a session, warmups first.
type WorkoutExercise struct {
	Number     int          `json:"number"`
	Name       string       `json:"name"`
	Equipment  string       `json:"equipment,omitempty"`
	TargetReps int          `json:"target_reps"`
	Sets       []WorkoutSet `json:"sets"`
}

// WorkoutSet is a single logged set. For bodyweight-plus sets WeightKg is
// the added load only.
type WorkoutSet struct {
	Number           int     `json:"number"`
	WeightKg         float64 `json:"weight_kg"`
	IsBodyweightPlus bool    `json:"is_bodyweight_plus,omitempty"`
	Reps             int     `json:"reps"`
	RIR              float64 `json:"rir"`
	IsWarmup         bool    `json:"is_warmup,omitempty"`
}

// LiftBest is the working set with the highest estimated one-rep max for
// an exercise across a training log.
type LiftBest struct {
	Exercise     string        `json:"exercise"`
	Equipment    string        `json:"equipment,omitempty"`
	Date         time.Time     `json:"date"`
	WeightKg     float64       `json:"weight_kg"`
	Reps         int           `json:"reps"`
	OneRepMaxKg  float64       `json:"one_rep_max_kg"`
	OneRepMaxLbs float64       `json:"one_rep_max_lbs"`
	Tier         strength.Tier `json:"tier"`
}

// TrainingSummary is the outcome of analyzing a training log.
type TrainingSummary struct {
	Formula     strength.Formula `json:"formula"`
	Sessions    int              `json:"sessions"`
	WorkingSets int              `json:"working_sets"`
	SkippedSets int              `json:"skipped_sets"`
	Lifts       []LiftBest       `json:"lifts"`
}
