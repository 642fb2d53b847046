// Package issue decides which checker findings are reported and what
// correction, if any, is suggested for them.
package issue

import (
	"slices"

	"github.com/ppiankov/pocheck/internal/model"
)

// Flagged returns the span of the finding's context that the checker flagged.
// Offsets are clamped to the context, so a span running past the end yields
// the shorter tail and an offset beyond the end yields "".
func Flagged(f model.Finding) string {
	runes := []rune(f.Context)

	start := min(max(f.Offset, 0), len(runes))
	end := min(start+max(f.Length, 0), len(runes))

	return string(runes[start:end])
}

// Valid reports whether the finding should be surfaced. It is false only when
// the flagged text matches a dictionary entry exactly.
func Valid(f model.Finding, dict []string) bool {
	return !slices.Contains(dict, Flagged(f))
}
