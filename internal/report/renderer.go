// Package report renders issue reports to the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/ppiankov/pocheck/internal/model"
)

// Renderer writes one colored block per issue
type Renderer struct {
	w       io.Writer
	verbose bool

	message    *color.Color
	context    *color.Color
	suggestion *color.Color
	rule       *color.Color
}

// NewRenderer creates a renderer writing to w. Verbose adds the rule ID line.
func NewRenderer(w io.Writer, verbose bool) *Renderer {
	return &Renderer{
		w:          w,
		verbose:    verbose,
		message:    color.New(color.FgRed),
		context:    color.New(color.FgYellow),
		suggestion: color.New(color.FgGreen),
		rule:       color.New(color.FgWhite),
	}
}

// DisableColor turns color off for this renderer regardless of the terminal
func (r *Renderer) DisableColor() {
	for _, c := range []*color.Color{r.message, r.context, r.suggestion, r.rule} {
		c.DisableColor()
	}
}

// Render writes the block for one issue:
//
//	message
//	context
//	   ^^^^  (offset spaces, length carets)
//	   fix   (only with a suggestion)
//	Triggered rule ID: X (verbose only)
func (r *Renderer) Render(issue model.IssueReport) error {
	indent := strings.Repeat(" ", max(issue.Offset, 0))
	pointer := strings.Repeat("^", max(issue.Length, 0))

	var err error
	printf := func(c *color.Color, format string, a ...any) {
		if err != nil {
			return
		}
		if c == nil {
			_, err = fmt.Fprintf(r.w, format, a...)
			return
		}
		_, err = c.Fprintf(r.w, format, a...)
	}

	printf(r.message, "%s\n", strings.TrimSpace(issue.Message))
	printf(r.context, "%s\n", strings.TrimRight(issue.Context, " \t\r\n"))
	printf(nil, "%s%s\n", indent, pointer)

	if issue.HasSuggestion {
		printf(r.suggestion, "%s%s\n", indent, issue.Suggestion)
	}

	if r.verbose {
		printf(r.rule, "Triggered rule ID: %s\n", issue.RuleID)
	}

	printf(nil, "\n")
	return err
}

// RenderTotal writes the closing line with the number of reported issues
func (r *Renderer) RenderTotal(total int) error {
	_, err := fmt.Fprintf(r.w, "Total number of issues: %d\n", total)
	return err
}
