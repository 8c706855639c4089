package render

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"

	"github.com/claude/gymez/internal/strength"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrEmptyChart is returned when there are no rows to draw.
var ErrEmptyChart = errors.New("empty chart")

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 4 * vg.Inch
)

var barColor = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}

// PercentageChartPNG draws implied weight per percentage of max as a bar chart.
func PercentageChartPNG(rows []strength.PercentageRow, title string) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyChart
	}

	values := make(plotter.Values, len(rows))
	labels := make([]string, len(rows))
	for i, r := range rows {
		values[i] = r.Weight
		labels[i] = fmt.Sprintf("%d%%\n%s", r.Percent, r.RepRange)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "% of 1RM / reps"
	p.Y.Label.Text = "Weight"

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, fmt.Errorf("building bar chart: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(labels...)

	wt, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("creating png writer: %w", err)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("rendering png: %w", err)
	}
	return buf.Bytes(), nil
}
