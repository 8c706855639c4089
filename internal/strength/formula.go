package strength

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Formula selects one of the one-rep-max estimation formulas.
type Formula int

const (
	Epley Formula = iota
	Brzycki
	Lander
	Lombardi
	Mayhew
	OConner
	Wathen
)

// ErrUnknownFormula is returned when a formula name cannot be resolved.
var ErrUnknownFormula = errors.New("unknown formula")

// Formulas lists every formula in display order.
var Formulas = []Formula{Epley, Brzycki, Lander, Lombardi, Mayhew, OConner, Wathen}

// FormulaInfo is display metadata for a formula.
type FormulaInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var formulaInfo = [...]FormulaInfo{
	Epley:    {ID: "epley", Name: "Epley", Description: "Most commonly used"},
	Brzycki:  {ID: "brzycki", Name: "Brzycki", Description: "Popular alternative"},
	Lander:   {ID: "lander", Name: "Lander", Description: "Good for higher reps"},
	Lombardi: {ID: "lombardi", Name: "Lombardi", Description: "Simple formula"},
	Mayhew:   {ID: "mayhew", Name: "Mayhew", Description: "Accurate for moderate reps"},
	OConner:  {ID: "oconner", Name: "O'Conner", Description: "Conservative estimate"},
	Wathen:   {ID: "wathen", Name: "Wathen", Description: "Accurate for higher reps"},
}

// Info returns the formula's display metadata.
func (f Formula) Info() FormulaInfo {
	if !f.valid() {
		return FormulaInfo{ID: "unknown", Name: "Unknown"}
	}
	return formulaInfo[f]
}

// String returns the formula identifier, e.g. "epley".
func (f Formula) String() string {
	return f.Info().ID
}

func (f Formula) valid() bool {
	return f >= Epley && f <= Wathen
}

// MarshalText encodes the formula as its identifier.
func (f Formula) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownFormula, int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText decodes a formula identifier.
func (f *Formula) UnmarshalText(b []byte) error {
	parsed, err := ParseFormula(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFormula resolves a formula by identifier or display name. Matching
// ignores case, whitespace and apostrophes so "O'Conner" and "oconner" agree.
func ParseFormula(s string) (Formula, error) {
	key := normalizeFormulaKey(s)
	for _, f := range Formulas {
		if key == f.Info().ID {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownFormula, s)
}

func normalizeFormulaKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("'", "", "’", "", " ", "", "-", "").Replace(s)
}

// AllFormulaInfo returns metadata for every formula in display order.
func AllFormulaInfo() []FormulaInfo {
	out := make([]FormulaInfo, len(Formulas))
	for i, f := range Formulas {
		out[i] = f.Info()
	}
	return out
}

// raw evaluates the formula without rounding. Callers validate reps first;
// Brzycki divides by zero at 37 reps.
func (f Formula) raw(w float64, r int) float64 {
	reps := float64(r)
	switch f {
	case Epley:
		return w * (1 + reps/30)
	case Brzycki:
		return w * (36 / (37 - reps))
	case Lander:
		return (100 * w) / (101.3 - 2.67123*reps)
	case Lombardi:
		return w * math.Pow(reps, 0.1)
	case Mayhew:
		return (100 * w) / (52.2 + 41.9*math.Exp(-0.055*reps))
	case OConner:
		return w * (1 + reps/40)
	case Wathen:
		return (100 * w) / (48.8 + 53.8*math.Exp(-0.075*reps))
	}
	return math.NaN()
}

// Estimate returns the rounded one-rep max for a set of reps at weight.
// ok is false when the input is invalid or the formula is unknown; no
// partial result is computed in that case.
func Estimate(weight float64, reps int, f Formula) (oneRepMax float64, ok bool) {
	if err := (LiftInput{Weight: weight, Reps: reps}).Validate(); err != nil {
		return 0, false
	}
	if !f.valid() {
		return 0, false
	}
	return math.Round(f.raw(weight, reps)), true
}

// EstimateAll evaluates every formula for the same input.
func EstimateAll(weight float64, reps int) (map[Formula]float64, bool) {
	if err := (LiftInput{Weight: weight, Reps: reps}).Validate(); err != nil {
		return nil, false
	}
	out := make(map[Formula]float64, len(Formulas))
	for _, f := range Formulas {
		out[f] = math.Round(f.raw(weight, reps))
	}
	return out, true
}
