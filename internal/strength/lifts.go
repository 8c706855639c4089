package strength

// CommonLift is a quick-select preset with typical working weights in pounds.
type CommonLift struct {
	Name      string  `json:"name"`
	AvgMale   float64 `json:"avg_male"`
	AvgFemale float64 `json:"avg_female"`
}

// QuickSelectReps is the rep count filled in when a common lift is picked.
const QuickSelectReps = 5

// CommonLifts is the quick-select catalog.
var CommonLifts = []CommonLift{
	{Name: "Bench Press", AvgMale: 135, AvgFemale: 65},
	{Name: "Squat", AvgMale: 185, AvgFemale: 95},
	{Name: "Deadlift", AvgMale: 225, AvgFemale: 115},
	{Name: "Overhead Press", AvgMale: 95, AvgFemale: 45},
	{Name: "Barbell Row", AvgMale: 135, AvgFemale: 65},
}

// FindCommonLift looks up a preset by name.
func FindCommonLift(name string) (CommonLift, bool) {
	for _, l := range CommonLifts {
		if l.Name == name {
			return l, true
		}
	}
	return CommonLift{}, false
}
