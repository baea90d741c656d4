package rule

import "github.com/jeduden/agentlint/internal/lint"

// Rule is a single heuristic check over the whole set of documents in
// a workspace.
//
// Check must be a pure function of docs: it must not mutate them and
// must return the same diagnostics, in the same order, for the same
// input. Individual diagnostics may carry a severity other than the
// rule's default.
type Rule interface {
	ID() string
	Category() lint.Category
	Severity() lint.Severity
	Description() string
	Check(docs []*lint.Document) []lint.Diagnostic
}

// Diag builds a diagnostic carrying the rule's ID, category and default
// severity.
func Diag(r Rule, file string, line int, message, fix string) lint.Diagnostic {
	return lint.Diagnostic{
		Severity: r.Severity(),
		Category: r.Category(),
		RuleID:   r.ID(),
		File:     file,
		Line:     line,
		Message:  message,
		Fix:      fix,
	}
}
