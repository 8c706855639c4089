package strength

// Tier is a qualitative strength level.
type Tier string

const (
	Beginner      Tier = "Beginner"
	Novice        Tier = "Novice"
	Intermediate  Tier = "Intermediate"
	Advanced      Tier = "Advanced"
	Elite         Tier = "Elite"
	NotApplicable Tier = "N/A"
)

// tierOrder is ascending; thresholds[i] is the upper bound of tierOrder[i].
var tierOrder = [...]Tier{Beginner, Novice, Intermediate, Advanced, Elite}

var tierColors = map[Tier]string{
	Beginner:      "#6b7280",
	Novice:        "#3b82f6",
	Intermediate:  "#10b981",
	Advanced:      "#f59e0b",
	Elite:         "#ef4444",
	NotApplicable: "#6b7280",
}

// Color returns the display color for the tier.
func (t Tier) Color() string {
	if c, ok := tierColors[t]; ok {
		return c
	}
	return tierColors[NotApplicable]
}

// Rank orders tiers from 1 (Beginner) to 5 (Elite). NotApplicable ranks 0.
func (t Tier) Rank() int {
	for i, o := range tierOrder {
		if o == t {
			return i + 1
		}
	}
	return 0
}

// Standard holds the ascending 1RM thresholds for one exercise, in pounds.
type Standard struct {
	Exercise   string     `json:"exercise"`
	Thresholds [4]float64 `json:"thresholds"`
}

// Standards covers the exercises Classify knows about.
var Standards = []Standard{
	{Exercise: "Bench Press", Thresholds: [4]float64{135, 185, 225, 315}},
	{Exercise: "Squat", Thresholds: [4]float64{185, 275, 365, 455}},
	{Exercise: "Deadlift", Thresholds: [4]float64{225, 315, 405, 500}},
}

// StandardFor looks up the thresholds for an exercise by exact name.
func StandardFor(exercise string) (Standard, bool) {
	for _, s := range Standards {
		if s.Exercise == exercise {
			return s, true
		}
	}
	return Standard{}, false
}

// Classify buckets a one-rep max into a tier for the named exercise.
// Exercises without a standard return NotApplicable, as does an invalid 1RM.
func Classify(oneRepMax float64, exercise string) Tier {
	std, ok := StandardFor(exercise)
	if !ok || !ValidOneRepMax(oneRepMax) {
		return NotApplicable
	}
	for i, limit := range std.Thresholds {
		if oneRepMax < limit {
			return tierOrder[i]
		}
	}
	return Elite
}
