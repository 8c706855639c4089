package strength

import "fmt"

// Result is one complete calculation.
type Result struct {
	Weight      float64         `json:"weight"`
	Reps        int             `json:"reps"`
	Formula     Formula         `json:"formula"`
	OneRepMax   float64         `json:"one_rep_max"`
	Percentages []PercentageRow `json:"percentages"`
}

// Calculate validates the input and runs the formula and chart together.
// Invalid input returns an error wrapping ErrInvalidInput.
func Calculate(in LiftInput, f Formula) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	oneRM, ok := Estimate(in.Weight, in.Reps, f)
	if !ok {
		return nil, fmt.Errorf("%w: unknown formula", ErrInvalidInput)
	}
	return &Result{
		Weight:      in.Weight,
		Reps:        in.Reps,
		Formula:     f,
		OneRepMax:   oneRM,
		Percentages: BuildPercentageChart(oneRM),
	}, nil
}

// Calculator keeps the state of one calculator screen: the chosen formula,
// the chosen lift and the last successful result. It is not safe for
// concurrent use.
type Calculator struct {
	Formula Formula
	Lift    string
	Weight  float64
	Reps    int

	last *Result
}

// NewCalculator returns a calculator using formula f.
func NewCalculator(f Formula) *Calculator {
	return &Calculator{Formula: f}
}

// QuickSelect fills weight and reps from a common lift preset.
func (c *Calculator) QuickSelect(name string) bool {
	lift, ok := FindCommonLift(name)
	if !ok {
		return false
	}
	c.Lift = lift.Name
	c.Weight = lift.AvgMale
	c.Reps = QuickSelectReps
	return true
}

// Calculate recomputes from the current weight and reps. On invalid input
// it returns the error and Last still reports the previous result.
func (c *Calculator) Calculate() (*Result, error) {
	res, err := Calculate(LiftInput{Weight: c.Weight, Reps: c.Reps}, c.Formula)
	if err != nil {
		return nil, err
	}
	c.last = res
	return res, nil
}

// Last returns the last successful result, or nil.
func (c *Calculator) Last() *Result {
	return c.last
}

// Tier classifies the last result against the selected lift.
func (c *Calculator) Tier() Tier {
	if c.last == nil {
		return NotApplicable
	}
	return Classify(c.last.OneRepMax, c.Lift)
}

// Reset clears inputs, lift selection and the last result.
func (c *Calculator) Reset() {
	c.Weight = 0
	c.Reps = 0
	c.Lift = ""
	c.last = nil
}
