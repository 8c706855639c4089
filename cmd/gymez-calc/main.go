package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/claude/gymez/internal/config"
	"github.com/claude/gymez/internal/ingest/alpha"
	"github.com/claude/gymez/internal/models"
	"github.com/claude/gymez/internal/render"
	"github.com/claude/gymez/internal/strength"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// defaultFormula picks the formula used when -formula is not given:
// the config file when -config is set, then GYMEZ_CALCULATOR_FORMULA, then Epley.
func defaultFormula(configPath string) (strength.Formula, error) {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return 0, err
		}
		return cfg.Calculator.DefaultFormula()
	}
	return config.CalculatorConfig{Formula: os.Getenv("GYMEZ_CALCULATOR_FORMULA")}.DefaultFormula()
}

func run(args []string, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("gymez-calc", flag.ContinueOnError)
	fset.SetOutput(stderr)
	weight := fset.Float64("weight", 0, "weight lifted (lbs)")
	reps := fset.Int("reps", 0, "reps performed (1-30)")
	formulaName := fset.String("formula", "", "formula: epley, brzycki, lander, lombardi, mayhew, oconner, wathen")
	exercise := fset.String("exercise", "", "exercise name for strength classification, e.g. \"Bench Press\"")
	configPath := fset.String("config", "", "optional config file supplying the default formula")
	all := fset.Bool("all", false, "print the estimate from every formula")
	asJSON := fset.Bool("json", false, "print JSON instead of a table")
	logPath := fset.String("log", "", "Alpha Progression CSV export to summarize instead of a single set")
	xlsxPath := fset.String("xlsx", "", "also write the chart (or log summary) to this .xlsx file")
	if err := fset.Parse(args); err != nil {
		return 2
	}

	def, err := defaultFormula(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if *logPath != "" {
		f := def
		if *formulaName != "" {
			if f, err = strength.ParseFormula(*formulaName); err != nil {
				fmt.Fprintf(stderr, "error: %v\n", err)
				return 1
			}
		}
		return runLog(*logPath, *xlsxPath, f, *asJSON, stdout, stderr)
	}

	resp, err := models.Evaluate(models.OneRepMaxRequest{
		Weight:   *weight,
		Reps:     *reps,
		Formula:  *formulaName,
		Exercise: *exercise,
	}, def)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		fmt.Fprintf(stderr, "Usage: gymez-calc -weight 225 -reps 5 [-formula epley] [-exercise \"Bench Press\"] [-all] [-json] [-xlsx chart.xlsx]\n")
		fmt.Fprintf(stderr, "       gymez-calc -log export.csv [-formula epley] [-json] [-xlsx summary.xlsx]\n")
		return 1
	}

	if *xlsxPath != "" {
		book, err := render.ChartWorkbook(resp.OneRepMax, resp.Percentages)
		if err == nil {
			err = os.WriteFile(*xlsxPath, book, 0644)
		}
		if err != nil {
			fmt.Fprintf(stderr, "error: writing workbook: %v\n", err)
			return 1
		}
	}

	var estimates map[strength.Formula]float64
	if *all {
		estimates, _ = strength.EstimateAll(*weight, *reps)
	}

	if *asJSON {
		out := map[string]any{"result": resp}
		if estimates != nil {
			out["all_formulas"] = estimates
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	printTable(stdout, resp, estimates)
	return 0
}

func runLog(path, xlsxPath string, f strength.Formula, asJSON bool, stdout, stderr io.Writer) int {
	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer file.Close()

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	sum, err := alpha.NewProvider(log).Analyze(file, f)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if xlsxPath != "" {
		book, err := render.SummaryWorkbook(sum)
		if err == nil {
			err = os.WriteFile(xlsxPath, book, 0644)
		}
		if err != nil {
			fmt.Fprintf(stderr, "error: writing workbook: %v\n", err)
			return 1
		}
	}

	if asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sum); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	fmt.Fprintf(stdout, "%d sessions, %d working sets (%d not estimated), formula %s\n\n",
		sum.Sessions, sum.WorkingSets, sum.SkippedSets, f.Info().Name)
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EXERCISE\tEQUIPMENT\tBEST SET\t1RM (KG)\t1RM (LBS)\tTIER")
	for _, l := range sum.Lifts {
		fmt.Fprintf(tw, "%s\t%s\t%g x %d\t%g\t%g\t%s\n",
			l.Exercise, l.Equipment, l.WeightKg, l.Reps, l.OneRepMaxKg, l.OneRepMaxLbs, l.Tier)
	}
	tw.Flush()
	return 0
}

func printTable(w io.Writer, resp *models.OneRepMaxResponse, estimates map[strength.Formula]float64) {
	fmt.Fprintf(w, "%g x %d (%s): estimated 1RM %g\n", resp.Weight, resp.Reps, resp.Formula.Info().Name, resp.OneRepMax)
	if resp.Strength != nil {
		fmt.Fprintf(w, "%s strength level: %s\n", resp.Strength.Exercise, resp.Strength.Tier)
	}

	if estimates != nil {
		fmt.Fprintln(w)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "FORMULA\t1RM")
		for _, f := range strength.Formulas {
			fmt.Fprintf(tw, "%s\t%g\n", f.Info().Name, estimates[f])
		}
		tw.Flush()
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PERCENT\tWEIGHT\tREPS")
	for _, row := range resp.Percentages {
		fmt.Fprintf(tw, "%d%%\t%g\t%s\n", row.Percent, row.Weight, row.RepRange)
	}
	tw.Flush()
}
