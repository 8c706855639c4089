package render

import (
	"fmt"

	"github.com/claude/gymez/internal/models"
	"github.com/claude/gymez/internal/strength"
	"github.com/xuri/excelize/v2"
)

const (
	SheetChart = "Chart"
	SheetLifts = "Lifts"
)

// XLSXContentType is the media type of the workbooks produced here.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ChartWorkbook writes a percentage chart to a single-sheet workbook.
func ChartWorkbook(oneRepMax float64, rows []strength.PercentageRow) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyChart
	}

	data := make([][]any, 0, len(rows)+2)
	data = append(data, []any{"1RM", oneRepMax})
	data = append(data, []any{"Percent", "Weight", "Reps"})
	for _, r := range rows {
		data = append(data, []any{r.Percent, r.Weight, r.RepRange})
	}
	return workbook(SheetChart, data, 2, []float64{10, 10, 10})
}

// SummaryWorkbook writes the best lift per exercise from a training log.
func SummaryWorkbook(sum *models.TrainingSummary) ([]byte, error) {
	data := make([][]any, 0, len(sum.Lifts)+1)
	data = append(data, []any{"Exercise", "Equipment", "Date", "Weight (kg)", "Reps", "1RM (kg)", "1RM (lbs)", "Tier"})
	for _, l := range sum.Lifts {
		data = append(data, []any{
			l.Exercise, l.Equipment, l.Date.Format("2006-01-02"),
			l.WeightKg, l.Reps, l.OneRepMaxKg, l.OneRepMaxLbs, string(l.Tier),
		})
	}
	return workbook(SheetLifts, data, 1, []float64{32, 16, 12, 12, 8, 10, 10, 14})
}

// workbook renders rows into a sheet named sheet, bolding row headerRow.
func workbook(sheet string, rows [][]any, headerRow int, widths []float64) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(widths), headerRow)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", headerRow), last, bold); err != nil {
		return nil, fmt.Errorf("styling header: %w", err)
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, fmt.Errorf("sizing column %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
