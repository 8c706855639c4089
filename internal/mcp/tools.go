package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/claude/gymez/internal/models"
	"github.com/claude/gymez/internal/strength"
	"github.com/mark3labs/mcp-go/mcp"
)

func formulaIDs() []string {
	ids := make([]string, len(strength.Formulas))
	for i, f := range strength.Formulas {
		ids[i] = f.String()
	}
	return ids
}

// requireReps reads a whole-number rep count. JSON numbers arrive as float64.
func requireReps(req mcp.CallToolRequest, key string) (int, error) {
	v, err := req.RequireFloat(key)
	if err != nil {
		return 0, err
	}
	return models.WholeReps(v)
}

// --- Tool definitions ---

var toolEstimateOneRepMax = mcp.NewTool("estimate_one_rep_max",
	mcp.WithDescription("Estimate a one-rep max from a submaximal set. Returns the rounded 1RM, a 13-row training percentage chart, and a strength tier when an exercise is given."),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Weight lifted (lbs), greater than zero")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Reps performed, 1 to 30")),
	mcp.WithString("formula", mcp.Description("Estimation formula. Defaults to the server's configured formula."), mcp.Enum(formulaIDs()...)),
	mcp.WithString("exercise", mcp.Description("Exercise name for strength classification (e.g. 'Bench Press', 'Squat', 'Deadlift')")),
)

var toolBuildPercentageChart = mcp.NewTool("build_percentage_chart",
	mcp.WithDescription("Build a training percentage chart (100% down to 65%) with implied weights and typical rep ranges for a one-rep max."),
	mcp.WithNumber("one_rep_max", mcp.Required(), mcp.Description("One-rep max (lbs), greater than zero")),
)

var toolClassifyStrength = mcp.NewTool("classify_strength",
	mcp.WithDescription("Classify a one-rep max into Beginner, Novice, Intermediate, Advanced or Elite. Exercises without standards return N/A."),
	mcp.WithNumber("one_rep_max", mcp.Required(), mcp.Description("One-rep max (lbs)")),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name: 'Bench Press', 'Squat' or 'Deadlift'")),
)

var toolComparePersonalRecord = mcp.NewTool("compare_personal_record",
	mcp.WithDescription("Check whether a set beats a previous best by estimated (Epley) one-rep max. Omit the best set when there is no previous record."),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Candidate set weight (lbs)")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Candidate set reps")),
	mcp.WithNumber("best_weight", mcp.Description("Previous best set weight (lbs)")),
	mcp.WithNumber("best_reps", mcp.Description("Previous best set reps")),
)

var toolListFormulas = mcp.NewTool("list_formulas",
	mcp.WithDescription("List the available one-rep-max formulas and which one is the default."),
)

var toolAnalyzeTrainingLog = mcp.NewTool("analyze_training_log",
	mcp.WithDescription("Analyze an Alpha Progression CSV export. Returns, per exercise, the working set with the highest estimated one-rep max (kg and lbs) and its strength tier. Warmups and bodyweight-plus sets are not estimated."),
	mcp.WithString("csv", mcp.Required(), mcp.Description("Full text of the CSV export")),
	mcp.WithString("formula", mcp.Description("Estimation formula. Defaults to the server's configured formula."), mcp.Enum(formulaIDs()...)),
)

// --- Tool handlers ---

func (h *handlers) estimateOneRepMax(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}
	reps, err := requireReps(req, "reps")
	if err != nil {
		return mcp.NewToolResultError("reps: " + err.Error()), nil
	}

	resp, err := models.Evaluate(models.OneRepMaxRequest{
		Weight:   weight,
		Reps:     reps,
		Formula:  req.GetString("formula", ""),
		Exercise: req.GetString("exercise", ""),
	}, h.formula)
	if err != nil {
		if !errors.Is(err, strength.ErrInvalidInput) && !errors.Is(err, strength.ErrUnknownFormula) {
			h.log.Error("mcp estimate_one_rep_max", "error", err)
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(resp)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) buildPercentageChart(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	oneRM, err := req.RequireFloat("one_rep_max")
	if err != nil {
		return mcp.NewToolResultError("one_rep_max parameter is required"), nil
	}
	rows := strength.BuildPercentageChart(oneRM)
	if rows == nil {
		return mcp.NewToolResultError("one_rep_max must be a positive number"), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"one_rep_max": oneRM,
		"percentages": rows,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) classifyStrength(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	oneRM, err := req.RequireFloat("one_rep_max")
	if err != nil {
		return mcp.NewToolResultError("one_rep_max parameter is required"), nil
	}
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	if !strength.ValidOneRepMax(oneRM) {
		return mcp.NewToolResultError("one_rep_max must be a positive number"), nil
	}

	result, err := mcp.NewToolResultJSON(models.NewStrengthLevel(oneRM, exercise))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) comparePersonalRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}
	reps, err := requireReps(req, "reps")
	if err != nil {
		return mcp.NewToolResultError("reps: " + err.Error()), nil
	}

	// A previous best is given when either argument is present.
	var best *strength.LiftInput
	args := req.GetArguments()
	_, hasWeight := args["best_weight"]
	_, hasReps := args["best_reps"]
	if hasWeight || hasReps {
		bw, err := req.RequireFloat("best_weight")
		if err != nil {
			return mcp.NewToolResultError("best_weight and best_reps must be given together: " + err.Error()), nil
		}
		br, err := requireReps(req, "best_reps")
		if err != nil {
			return mcp.NewToolResultError("best_weight and best_reps must be given together: " + err.Error()), nil
		}
		best = &strength.LiftInput{Weight: bw, Reps: br}
	}

	cmp, err := strength.CompareRecord(strength.LiftInput{Weight: weight, Reps: reps}, best)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(cmp)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listFormulas(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(map[string]any{
		"default":  h.formula,
		"formulas": strength.AllFormulaInfo(),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) analyzeTrainingLog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	csv, err := req.RequireString("csv")
	if err != nil {
		return mcp.NewToolResultError("csv parameter is required"), nil
	}
	f := h.formula
	if name := req.GetString("formula", ""); name != "" {
		if f, err = strength.ParseFormula(name); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	sum, err := h.alpha.Analyze(strings.NewReader(csv), f)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sum)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
