package strength

import "math"

// PercentageRow is one line of a training-percentage chart.
type PercentageRow struct {
	Percent  int     `json:"percent"`
	Weight   float64 `json:"weight"`
	RepRange string  `json:"reps"`
}

type repPercentage struct {
	percent int
	reps    string
}

// repPercentages is ordered by descending percent.
var repPercentages = [...]repPercentage{
	{100, "1"},
	{95, "2"},
	{93, "3"},
	{90, "4"},
	{87, "5"},
	{85, "6"},
	{83, "7"},
	{80, "8"},
	{77, "9"},
	{75, "10"},
	{70, "11-12"},
	{67, "13-15"},
	{65, "16-20"},
}

// ChartRows is the number of rows BuildPercentageChart returns.
const ChartRows = len(repPercentages)

// BuildPercentageChart derives training loads from a one-rep max. It returns
// nil when oneRepMax is not a positive finite number.
func BuildPercentageChart(oneRepMax float64) []PercentageRow {
	if !ValidOneRepMax(oneRepMax) {
		return nil
	}
	rows := make([]PercentageRow, len(repPercentages))
	for i, p := range repPercentages {
		rows[i] = PercentageRow{
			Percent:  p.percent,
			Weight:   math.Round(oneRepMax * float64(p.percent) / 100),
			RepRange: p.reps,
		}
	}
	return rows
}
