package mcp

import (
	"log/slog"

	"github.com/claude/gymez/internal/ingest/alpha"
	"github.com/claude/gymez/internal/strength"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
// def is the formula used when a tool call does not name one.
func New(def strength.Formula, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("GymEZ", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("GymEZ strength calculator. Estimate one-rep maxes from submaximal sets, build training percentage charts, and classify lifts into strength tiers. Weights are in pounds."),
	)

	h := &handlers{formula: def, alpha: alpha.NewProvider(log), log: log}

	s.AddTools(
		server.ServerTool{Tool: toolEstimateOneRepMax, Handler: h.estimateOneRepMax},
		server.ServerTool{Tool: toolBuildPercentageChart, Handler: h.buildPercentageChart},
		server.ServerTool{Tool: toolClassifyStrength, Handler: h.classifyStrength},
		server.ServerTool{Tool: toolComparePersonalRecord, Handler: h.comparePersonalRecord},
		server.ServerTool{Tool: toolListFormulas, Handler: h.listFormulas},
		server.ServerTool{Tool: toolAnalyzeTrainingLog, Handler: h.analyzeTrainingLog},
	)

	s.AddResources(
		server.ServerResource{Resource: resFormulas, Handler: h.formulaCatalog},
		server.ServerResource{Resource: resStrengthStandards, Handler: h.strengthStandards},
		server.ServerResource{Resource: resCommonLifts, Handler: h.commonLifts},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	formula strength.Formula
	alpha   *alpha.Provider
	log     *slog.Logger
}

// --- Resource definitions ---

var resFormulas = mcp.NewResource(
	"gymez://formulas",
	"Formulas",
	mcp.WithResourceDescription("One-rep-max estimation formulas with identifiers and descriptions"),
	mcp.WithMIMEType("application/json"),
)

var resStrengthStandards = mcp.NewResource(
	"gymez://strength_standards",
	"Strength Standards",
	mcp.WithResourceDescription("Per-exercise 1RM thresholds (lbs) separating Beginner, Novice, Intermediate, Advanced and Elite"),
	mcp.WithMIMEType("application/json"),
)

var resCommonLifts = mcp.NewResource(
	"gymez://common_lifts",
	"Common Lifts",
	mcp.WithResourceDescription("Quick-select lifts with typical working weights (lbs)"),
	mcp.WithMIMEType("application/json"),
)
