package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/claude/gymez/internal/ingest/alpha"
	"github.com/claude/gymez/internal/strength"
	"github.com/mark3labs/mcp-go/mcp"
)

func newHandlers() *handlers {
	return &handlers{formula: strength.Epley, alpha: alpha.NewProvider(slog.Default()), log: slog.Default()}
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	switch c := res.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	}
	t.Fatalf("unexpected content type %T", res.Content[0])
	return ""
}

// TestEstimateOneRepMaxTool verifies the tool returns the estimate, chart and tier.
func TestEstimateOneRepMaxTool(t *testing.T) {
	h := newHandlers()
	res, err := h.estimateOneRepMax(context.Background(), callRequest(map[string]any{
		"weight":   225.0,
		"reps":     5.0,
		"formula":  "brzycki",
		"exercise": "Bench Press",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool error: %s", resultText(t, res))
	}

	var got struct {
		Formula     string           `json:"formula"`
		OneRepMax   float64          `json:"one_rep_max"`
		Percentages []map[string]any `json:"percentages"`
		Strength    struct {
			Tier string `json:"tier"`
		} `json:"strength"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Formula != "brzycki" || got.OneRepMax != 253 {
		t.Errorf("got %s %v, want brzycki 253", got.Formula, got.OneRepMax)
	}
	if len(got.Percentages) != 13 {
		t.Errorf("percentages = %d rows, want 13", len(got.Percentages))
	}
	if got.Strength.Tier != "Advanced" {
		t.Errorf("tier = %q, want Advanced", got.Strength.Tier)
	}
}

// TestEstimateOneRepMaxToolInvalid verifies invalid input becomes a tool error, not a protocol error.
func TestEstimateOneRepMaxToolInvalid(t *testing.T) {
	h := newHandlers()
	cases := []map[string]any{
		{"weight": 100.0, "reps": 31.0},
		{"weight": 0.0, "reps": 5.0},
		{"weight": 100.0, "reps": 4.5},
		{"weight": 100.0},
		{"weight": 100.0, "reps": 5.0, "formula": "wendler"},
	}
	for _, args := range cases {
		res, err := h.estimateOneRepMax(context.Background(), callRequest(args))
		if err != nil {
			t.Fatalf("%v: unexpected protocol error: %v", args, err)
		}
		if !res.IsError {
			t.Errorf("%v: expected tool error", args)
		}
	}
}

// TestBuildPercentageChartTool verifies the 85% row for a 263 lb max.
func TestBuildPercentageChartTool(t *testing.T) {
	h := newHandlers()
	res, err := h.buildPercentageChart(context.Background(), callRequest(map[string]any{"one_rep_max": 263.0}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: %v", err)
	}
	var got struct {
		Percentages []strength.PercentageRow `json:"percentages"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Percentages) != 13 {
		t.Fatalf("rows = %d, want 13", len(got.Percentages))
	}
	if row := got.Percentages[5]; row.Percent != 85 || row.Weight != 224 || row.RepRange != "6" {
		t.Errorf("85%% row = %+v, want 224 for 6", row)
	}

	res, _ = h.buildPercentageChart(context.Background(), callRequest(map[string]any{"one_rep_max": -1.0}))
	if !res.IsError {
		t.Error("negative one_rep_max should be a tool error")
	}
}

// TestClassifyStrengthTool verifies bench press classification and the N/A sentinel.
func TestClassifyStrengthTool(t *testing.T) {
	h := newHandlers()
	for exercise, want := range map[string]string{"Bench Press": "Intermediate", "Curl": "N/A"} {
		res, err := h.classifyStrength(context.Background(), callRequest(map[string]any{
			"one_rep_max": 200.0,
			"exercise":    exercise,
		}))
		if err != nil || res.IsError {
			t.Fatalf("%s: unexpected failure: %v", exercise, err)
		}
		if text := resultText(t, res); !strings.Contains(text, `"tier":"`+want+`"`) {
			t.Errorf("%s: result %s, want tier %s", exercise, text, want)
		}
	}
}

// TestComparePersonalRecordTool verifies best sets are optional and compared by estimate.
func TestComparePersonalRecordTool(t *testing.T) {
	h := newHandlers()
	res, err := h.comparePersonalRecord(context.Background(), callRequest(map[string]any{
		"weight": 205.0, "reps": 5.0, "best_weight": 225.0, "best_reps": 1.0,
	}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: %v", err)
	}
	if text := resultText(t, res); !strings.Contains(text, `"new_record":true`) {
		t.Errorf("result %s, want new_record true", text)
	}

	res, _ = h.comparePersonalRecord(context.Background(), callRequest(map[string]any{
		"weight": 205.0, "reps": 5.0, "best_weight": 225.0,
	}))
	if !res.IsError {
		t.Error("best_weight without best_reps should be a tool error")
	}

	res, _ = h.comparePersonalRecord(context.Background(), callRequest(map[string]any{
		"weight": 205.0, "reps": 5.0, "best_reps": 5.0,
	}))
	if !res.IsError {
		t.Error("best_reps without best_weight should be a tool error")
	}
}

// TestComparePersonalRecordToolZeroBest verifies an explicit zero best weight is rejected
// rather than treated as no previous record.
func TestComparePersonalRecordToolZeroBest(t *testing.T) {
	h := newHandlers()
	res, err := h.comparePersonalRecord(context.Background(), callRequest(map[string]any{
		"weight": 205.0, "reps": 5.0, "best_weight": 0.0, "best_reps": 5.0,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("result %s, want tool error", resultText(t, res))
	}
	if text := resultText(t, res); !strings.Contains(text, "invalid input") {
		t.Errorf("error = %q, want invalid input", text)
	}

	res, _ = h.comparePersonalRecord(context.Background(), callRequest(map[string]any{
		"weight": 205.0, "reps": 5.0,
	}))
	if res.IsError || !strings.Contains(resultText(t, res), `"new_record":true`) {
		t.Errorf("no previous best should be a new record")
	}
}

// TestListFormulasTool verifies the configured default is reported.
func TestListFormulasTool(t *testing.T) {
	h := &handlers{formula: strength.Wathen, log: slog.Default()}
	res, err := h.listFormulas(context.Background(), callRequest(nil))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: %v", err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, `"default":"wathen"`) {
		t.Errorf("result %s, want default wathen", text)
	}
}

// TestResources verifies each static resource serves JSON under its URI.
func TestResources(t *testing.T) {
	h := newHandlers()
	readers := map[string]func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error){
		"gymez://formulas":           h.formulaCatalog,
		"gymez://strength_standards": h.strengthStandards,
		"gymez://common_lifts":       h.commonLifts,
	}
	for uri, read := range readers {
		var req mcp.ReadResourceRequest
		req.Params.URI = uri
		contents, err := read(context.Background(), req)
		if err != nil {
			t.Fatalf("%s: %v", uri, err)
		}
		text, ok := contents[0].(mcp.TextResourceContents)
		if !ok {
			t.Fatalf("%s: content type %T", uri, contents[0])
		}
		if text.URI != uri || !json.Valid([]byte(text.Text)) {
			t.Errorf("%s: bad contents %+v", uri, text)
		}
	}
}

// TestNewRegistersTools verifies every tool is listed by the server.
func TestNewRegistersTools(t *testing.T) {
	s := New(strength.Epley, "test", slog.Default())
	msg := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"estimate_one_rep_max", "build_percentage_chart", "classify_strength", "compare_personal_record", "list_formulas", "analyze_training_log"} {
		if !strings.Contains(string(data), `"`+name+`"`) {
			t.Errorf("tools/list missing %s", name)
		}
	}
}

// TestAnalyzeTrainingLogTool verifies a CSV export is summarized through the tool.
func TestAnalyzeTrainingLogTool(t *testing.T) {
	h := newHandlers()
	csv := "\"Legs\";\"2026-02-19 16:54 h\";\"1:02 hr\"\n" +
		"\"1. Squat · Barbell · 5 reps\"\n" +
		"#;KG;REPS;RIR\n" +
		"1;150;5;1\n" +
		"2;140;5;0\n"
	res, err := h.analyzeTrainingLog(context.Background(), callRequest(map[string]any{"csv": csv}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool error: %s", resultText(t, res))
	}
	var got struct {
		Formula string `json:"formula"`
		Lifts   []struct {
			Exercise    string  `json:"exercise"`
			OneRepMaxKg float64 `json:"one_rep_max_kg"`
			Tier        string  `json:"tier"`
		} `json:"lifts"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Formula != "epley" || len(got.Lifts) != 1 {
		t.Fatalf("got %+v", got)
	}
	if got.Lifts[0].OneRepMaxKg != 175 || got.Lifts[0].Tier != "Advanced" {
		t.Errorf("lift = %+v, want 175 kg Advanced", got.Lifts[0])
	}

	res, _ = h.analyzeTrainingLog(context.Background(), callRequest(map[string]any{"csv": csv, "formula": "nope"}))
	if !res.IsError {
		t.Error("expected tool error for unknown formula")
	}
	res, _ = h.analyzeTrainingLog(context.Background(), callRequest(map[string]any{}))
	if !res.IsError {
		t.Error("expected tool error for missing csv")
	}
}
