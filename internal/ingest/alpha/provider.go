package alpha

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/claude/gymez/internal/ingest"
	"github.com/claude/gymez/internal/models"
	"github.com/claude/gymez/internal/strength"
)

// Provider analyzes Alpha Progression CSV exports.
type Provider struct {
	log *slog.Logger
}

// NewProvider creates a new Alpha Progression provider.
func NewProvider(log *slog.Logger) *Provider {
	return &Provider{log: log}
}

// Analyze parses an export and returns the best estimated one-rep max per
// exercise under f. Nothing is stored.
func (p *Provider) Analyze(r io.Reader, f strength.Formula) (*models.TrainingSummary, error) {
	sessions, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	sum := ingest.Summarize(sessions, f)
	p.log.Info("alpha export analyzed",
		"formula", f.String(),
		"sessions", sum.Sessions,
		"working_sets", sum.WorkingSets,
		"skipped_sets", sum.SkippedSets,
		"lifts", len(sum.Lifts),
	)
	return &sum, nil
}
