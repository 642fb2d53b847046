package model

// Finding is one issue reported by a checker for a submitted string.
// Offset and Length count runes of Context.
type Finding struct {
	Message      string   `json:"message"`
	ShortMessage string   `json:"short_message,omitempty"`
	RuleID       string   `json:"rule_id,omitempty"`
	Category     string   `json:"category,omitempty"`
	Context      string   `json:"context"`
	Offset       int      `json:"offset"`
	Length       int      `json:"length"`
	Replacements []string `json:"replacements,omitempty"` // Ordered, may be empty or hold empty strings
}

// IssueReport is a finding that survived the dictionary filter, ready for output
type IssueReport struct {
	Message       string
	Context       string
	Offset        int
	Length        int
	Suggestion    string
	HasSuggestion bool
	RuleID        string
}

// NewIssueReport builds the report for a finding and an optional suggestion
func NewIssueReport(f Finding, suggestion string, ok bool) IssueReport {
	return IssueReport{
		Message:       f.Message,
		Context:       f.Context,
		Offset:        f.Offset,
		Length:        f.Length,
		Suggestion:    suggestion,
		HasSuggestion: ok,
		RuleID:        f.RuleID,
	}
}
