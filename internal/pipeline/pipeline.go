// Package pipeline runs a catalog through the checker, the dictionary filter
// and the suggestion ranker, rendering every issue that survives.
package pipeline

import (
	"context"
	"fmt"
	"iter"

	"github.com/ppiankov/pocheck/internal/checker"
	"github.com/ppiankov/pocheck/internal/issue"
	"github.com/ppiankov/pocheck/internal/model"
	"github.com/ppiankov/pocheck/internal/report"
	"go.uber.org/zap"
)

// Pipeline orchestrates a single sequential check run
type Pipeline struct {
	checker    checker.Checker
	dictionary []string
	renderer   *report.Renderer
	logger     *zap.SugaredLogger
}

// Summary accumulates the outcome of a run
type Summary struct {
	Strings    int `json:"strings"`    // Strings submitted to the checker
	Findings   int `json:"findings"`   // Raw findings returned by the checker
	Suppressed int `json:"suppressed"` // Findings matched by the custom dictionary
	Issues     int `json:"issues"`     // Findings reported to the user
}

// New creates a pipeline. The checker is owned by the caller, who must close it.
func New(c checker.Checker, dictionary []string, renderer *report.Renderer, logger *zap.SugaredLogger) *Pipeline {
	return &Pipeline{
		checker:    c,
		dictionary: dictionary,
		renderer:   renderer,
		logger:     logger,
	}
}

// Run checks every candidate in order and returns the accumulated summary.
// A checker failure stops the run; the partial summary is returned with the error.
func (p *Pipeline) Run(ctx context.Context, candidates iter.Seq[model.Candidate]) (Summary, error) {
	var sum Summary

	for candidate := range candidates {
		sum.Strings++

		findings, err := p.checker.Check(ctx, candidate.Text)
		if err != nil {
			return sum, fmt.Errorf("%w: check %s string of entry %d: %w", model.ErrDependency, candidate.Side, candidate.Index, err)
		}

		next, err := p.handle(candidate, findings, sum)
		if err != nil {
			return sum, err
		}
		sum = next
	}

	return sum, nil
}

// handle filters, ranks and renders the findings of one string
func (p *Pipeline) handle(candidate model.Candidate, findings []model.Finding, sum Summary) (Summary, error) {
	for _, f := range findings {
		sum.Findings++

		r, ok := issue.Report(f, p.dictionary)
		if !ok {
			sum.Suppressed++
			p.logger.Debugw("finding suppressed by custom dictionary",
				"entry", candidate.Index, "side", candidate.Side, "text", issue.Flagged(f), "rule", f.RuleID)
			continue
		}

		if err := p.renderer.Render(r); err != nil {
			return sum, fmt.Errorf("render issue: %w", err)
		}
		sum.Issues++
	}
	return sum, nil
}
