package strength

import (
	"errors"
	"fmt"
	"math"
)

// MaxReps is the highest rep count accepted for an estimate.
const MaxReps = 30

// ErrInvalidInput is returned for a weight or rep count the formulas cannot use.
var ErrInvalidInput = errors.New("invalid input")

// LiftInput is one submaximal set.
type LiftInput struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// Validate reports whether the set can be fed to a formula.
func (in LiftInput) Validate() error {
	if math.IsNaN(in.Weight) || math.IsInf(in.Weight, 0) {
		return fmt.Errorf("%w: weight must be a finite number", ErrInvalidInput)
	}
	if in.Weight <= 0 {
		return fmt.Errorf("%w: weight must be greater than zero", ErrInvalidInput)
	}
	if in.Reps <= 0 {
		return fmt.Errorf("%w: reps must be greater than zero", ErrInvalidInput)
	}
	if in.Reps > MaxReps {
		return fmt.Errorf("%w: reps must be at most %d", ErrInvalidInput, MaxReps)
	}
	return nil
}

// ValidOneRepMax reports whether m can seed a chart or a classification.
func ValidOneRepMax(m float64) bool {
	return m > 0 && !math.IsNaN(m) && !math.IsInf(m, 0)
}
