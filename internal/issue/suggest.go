package issue

import (
	"github.com/agnivade/levenshtein"
	"github.com/ppiankov/pocheck/internal/model"
)

// Edit distance cutoffs used when ranking suggestions
const (
	// Dictionary lookups are tighter when the checker already has a suggestion
	CutoffWithCheckerSuggestion = 2
	CutoffDictionaryOnly        = 3
	ArbitrationCutoff           = 3
)

// Distance returns the Levenshtein distance between a and b, or cutoff+1 when
// the real distance is larger than cutoff.
func Distance(a, b string, cutoff int) int {
	d := levenshtein.ComputeDistance(a, b)
	if d > cutoff {
		return cutoff + 1
	}
	return d
}

// FromDictionary returns the dictionary word closest to typo within cutoff.
// On equal distance the word listed first wins.
func FromDictionary(typo string, dict []string, cutoff int) (string, bool) {
	best := cutoff + 1
	word := ""
	found := false

	for _, known := range dict {
		if d := Distance(typo, known, cutoff); d < best {
			best = d
			word = known
			found = true
		}
	}

	return word, found
}

// Suggest picks the replacement to show for a valid finding. The checker's
// first replacement competes with the closest dictionary word; the smaller
// edit distance to the flagged text wins and the checker wins ties.
func Suggest(f model.Finding, dict []string) (string, bool) {
	typo := Flagged(f)

	fromChecker := ""
	if len(f.Replacements) > 0 {
		fromChecker = f.Replacements[0]
	}
	hasChecker := fromChecker != ""

	cutoff := CutoffDictionaryOnly
	if hasChecker {
		cutoff = CutoffWithCheckerSuggestion
	}
	fromDict, hasDict := FromDictionary(typo, dict, cutoff)

	switch {
	case hasChecker && hasDict:
		if Distance(typo, fromChecker, ArbitrationCutoff) <= Distance(typo, fromDict, ArbitrationCutoff) {
			return fromChecker, true
		}
		return fromDict, true
	case hasChecker:
		return fromChecker, true
	case hasDict:
		return fromDict, true
	default:
		return "", false
	}
}

// Report filters a finding and, when it is valid, builds its IssueReport
func Report(f model.Finding, dict []string) (model.IssueReport, bool) {
	if !Valid(f, dict) {
		return model.IssueReport{}, false
	}
	suggestion, ok := Suggest(f, dict)
	return model.NewIssueReport(f, suggestion, ok), true
}
