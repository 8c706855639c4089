package strength

import "math"

// RecordComparison is the outcome of checking a set against a previous best.
type RecordComparison struct {
	NewRecord         bool     `json:"new_record"`
	CandidateEstimate float64  `json:"candidate_estimate"`
	BestEstimate      *float64 `json:"best_estimate,omitempty"`
}

// epleyEstimate is the unrounded Epley 1RM used to rank sets.
func epleyEstimate(in LiftInput) float64 {
	return Epley.raw(in.Weight, in.Reps)
}

// CompareRecord reports whether candidate beats best by estimated 1RM.
// A nil best means there is no previous record, so any valid candidate wins.
// Estimates in the result are rounded; the comparison is not.
func CompareRecord(candidate LiftInput, best *LiftInput) (*RecordComparison, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}
	cand := epleyEstimate(candidate)
	out := &RecordComparison{CandidateEstimate: roundWeight(cand)}
	if best == nil {
		out.NewRecord = true
		return out, nil
	}
	if err := best.Validate(); err != nil {
		return nil, err
	}
	prev := epleyEstimate(*best)
	rounded := roundWeight(prev)
	out.BestEstimate = &rounded
	out.NewRecord = cand > prev
	return out, nil
}

// IsNewRecord is CompareRecord reduced to its verdict; invalid input is never a record.
func IsNewRecord(candidate LiftInput, best *LiftInput) bool {
	cmp, err := CompareRecord(candidate, best)
	return err == nil && cmp.NewRecord
}

// roundWeight rounds to one decimal place.
func roundWeight(v float64) float64 {
	return math.Round(v*10) / 10
}
