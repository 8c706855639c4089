package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/claude/gymez/internal/strength"
)

// OneRepMaxRequest is the body of a one-rep-max calculation.
type OneRepMaxRequest struct {
	Weight   float64 `json:"weight"`
	Reps     int     `json:"reps"`
	Formula  string  `json:"formula,omitempty"`
	Exercise string  `json:"exercise,omitempty"`
}

// Resolve parses the formula, falling back to def when none was given.
// An unrecognized formula returns an error wrapping strength.ErrUnknownFormula.
func (r OneRepMaxRequest) Resolve(def strength.Formula) (strength.LiftInput, strength.Formula, error) {
	in := strength.LiftInput{Weight: r.Weight, Reps: r.Reps}
	if strings.TrimSpace(r.Formula) == "" {
		return in, def, nil
	}
	f, err := strength.ParseFormula(r.Formula)
	if err != nil {
		return in, 0, err
	}
	return in, f, nil
}

// StrengthLevel is a classified one-rep max.
type StrengthLevel struct {
	Exercise string        `json:"exercise"`
	Tier     strength.Tier `json:"tier"`
	Color    string        `json:"color"`
}

// NewStrengthLevel classifies oneRepMax for exercise.
func NewStrengthLevel(oneRepMax float64, exercise string) StrengthLevel {
	tier := strength.Classify(oneRepMax, exercise)
	return StrengthLevel{Exercise: exercise, Tier: tier, Color: tier.Color()}
}

// OneRepMaxResponse is a calculation plus an optional strength level.
type OneRepMaxResponse struct {
	strength.Result
	Strength *StrengthLevel `json:"strength,omitempty"`
}

// Evaluate runs a full calculation for the request. Errors wrap either
// strength.ErrUnknownFormula or strength.ErrInvalidInput.
func Evaluate(req OneRepMaxRequest, def strength.Formula) (*OneRepMaxResponse, error) {
	in, f, err := req.Resolve(def)
	if err != nil {
		return nil, err
	}
	res, err := strength.Calculate(in, f)
	if err != nil {
		return nil, err
	}
	resp := &OneRepMaxResponse{Result: *res}
	if req.Exercise != "" {
		level := NewStrengthLevel(res.OneRepMax, req.Exercise)
		resp.Strength = &level
	}
	return resp, nil
}

// LiftSet is a set as received over the wire. Reps is decoded as a number;
// Input rejects fractional counts.
type LiftSet struct {
	Weight float64 `json:"weight"`
	Reps   float64 `json:"reps"`
}

// Input converts the set, wrapping strength.ErrInvalidInput for
// non-integer reps. Range checks are left to LiftInput.Validate.
func (s LiftSet) Input() (strength.LiftInput, error) {
	reps, err := WholeReps(s.Reps)
	if err != nil {
		return strength.LiftInput{}, err
	}
	return strength.LiftInput{Weight: s.Weight, Reps: reps}, nil
}

// WholeReps converts a decoded rep count to an int.
func WholeReps(v float64) (int, error) {
	if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: reps must be a whole number", strength.ErrInvalidInput)
	}
	return int(v), nil
}

// OneRepMaxBody is the JSON body of a one-rep-max calculation.
type OneRepMaxBody struct {
	LiftSet
	Formula  string `json:"formula,omitempty"`
	Exercise string `json:"exercise,omitempty"`
}

// Request converts the body, failing on non-integer reps.
func (b OneRepMaxBody) Request() (OneRepMaxRequest, error) {
	in, err := b.Input()
	if err != nil {
		return OneRepMaxRequest{}, err
	}
	return OneRepMaxRequest{Weight: in.Weight, Reps: in.Reps, Formula: b.Formula, Exercise: b.Exercise}, nil
}

// PersonalRecordRequest compares a candidate set against the previous best.
type PersonalRecordRequest struct {
	Candidate LiftSet  `json:"candidate"`
	Best      *LiftSet `json:"best,omitempty"`
}

// Compare validates both sets and compares them by estimated one-rep max.
func (r PersonalRecordRequest) Compare() (*strength.RecordComparison, error) {
	candidate, err := r.Candidate.Input()
	if err != nil {
		return nil, fmt.Errorf("candidate: %w", err)
	}
	var best *strength.LiftInput
	if r.Best != nil {
		in, err := r.Best.Input()
		if err != nil {
			return nil, fmt.Errorf("best: %w", err)
		}
		best = &in
	}
	return strength.CompareRecord(candidate, best)
}
