package models

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/claude/gymez/internal/strength"
)

// TestEvaluateDefaultFormula verifies an empty formula uses the configured default.
func TestEvaluateDefaultFormula(t *testing.T) {
	resp, err := Evaluate(OneRepMaxRequest{Weight: 225, Reps: 5}, strength.Brzycki)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Formula != strength.Brzycki || resp.OneRepMax != 253 {
		t.Errorf("got %s %v, want brzycki 253", resp.Formula, resp.OneRepMax)
	}
	if resp.Strength != nil {
		t.Error("strength should be omitted without an exercise")
	}
}

// TestEvaluateWithExercise verifies the strength level is attached when an exercise is named.
func TestEvaluateWithExercise(t *testing.T) {
	resp, err := Evaluate(OneRepMaxRequest{Weight: 180, Reps: 3, Formula: "epley", Exercise: "Bench Press"}, strength.Epley)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 180 * 1.1 = 198
	if resp.OneRepMax != 198 {
		t.Errorf("one_rep_max = %v, want 198", resp.OneRepMax)
	}
	if resp.Strength == nil || resp.Strength.Tier != strength.Intermediate {
		t.Fatalf("strength = %+v, want Intermediate", resp.Strength)
	}
	if resp.Strength.Color != "#10b981" {
		t.Errorf("color = %q, want #10b981", resp.Strength.Color)
	}
}

// TestEvaluateErrors verifies the two error kinds stay distinguishable.
func TestEvaluateErrors(t *testing.T) {
	_, err := Evaluate(OneRepMaxRequest{Weight: 100, Reps: 5, Formula: "nope"}, strength.Epley)
	if !errors.Is(err, strength.ErrUnknownFormula) {
		t.Errorf("err = %v, want ErrUnknownFormula", err)
	}
	_, err = Evaluate(OneRepMaxRequest{Weight: 100, Reps: 31}, strength.Epley)
	if !errors.Is(err, strength.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

// TestOneRepMaxResponseJSON verifies the embedded result is flattened in JSON.
func TestOneRepMaxResponseJSON(t *testing.T) {
	resp, err := Evaluate(OneRepMaxRequest{Weight: 225, Reps: 5, Exercise: "Squat"}, strength.Epley)
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got["formula"] != "epley" {
		t.Errorf("formula = %v, want epley", got["formula"])
	}
	if got["one_rep_max"] != 263.0 {
		t.Errorf("one_rep_max = %v, want 263", got["one_rep_max"])
	}
	if rows, ok := got["percentages"].([]any); !ok || len(rows) != 13 {
		t.Errorf("percentages = %v, want 13 rows", got["percentages"])
	}
	level, ok := got["strength"].(map[string]any)
	if !ok || level["tier"] != "Novice" {
		t.Errorf("strength = %v, want Novice", got["strength"])
	}
}

// TestWholeReps verifies decoded rep counts must be integers within range.
func TestWholeReps(t *testing.T) {
	if got, err := WholeReps(5); err != nil || got != 5 {
		t.Errorf("WholeReps(5) = %d, %v", got, err)
	}
	for _, v := range []float64{5.5, math.NaN(), math.Inf(1), 1e12} {
		if _, err := WholeReps(v); !errors.Is(err, strength.ErrInvalidInput) {
			t.Errorf("WholeReps(%v) err = %v, want ErrInvalidInput", v, err)
		}
	}
}

// TestOneRepMaxBodyFractionalReps verifies a fractional rep count decodes but fails conversion.
func TestOneRepMaxBodyFractionalReps(t *testing.T) {
	var body OneRepMaxBody
	if err := json.Unmarshal([]byte(`{"weight":225,"reps":5.5,"formula":"epley"}`), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := body.Request(); !errors.Is(err, strength.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}

	body.Reps = 5
	req, err := body.Request()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Weight != 225 || req.Reps != 5 || req.Formula != "epley" {
		t.Errorf("request = %+v", req)
	}
}

// TestPersonalRecordRequestCompare verifies both sets are validated before comparing.
func TestPersonalRecordRequestCompare(t *testing.T) {
	cmp, err := PersonalRecordRequest{
		Candidate: LiftSet{Weight: 205, Reps: 5},
		Best:      &LiftSet{Weight: 225, Reps: 1},
	}.Compare()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cmp.NewRecord {
		t.Error("205x5 should beat 225x1")
	}

	tests := map[string]PersonalRecordRequest{
		"fractional candidate reps": {Candidate: LiftSet{Weight: 205, Reps: 4.5}},
		"fractional best reps":      {Candidate: LiftSet{Weight: 205, Reps: 5}, Best: &LiftSet{Weight: 225, Reps: 1.5}},
		"zero best weight":          {Candidate: LiftSet{Weight: 205, Reps: 5}, Best: &LiftSet{Weight: 0, Reps: 5}},
	}
	for name, req := range tests {
		if _, err := req.Compare(); !errors.Is(err, strength.ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", name, err)
		}
	}
}
