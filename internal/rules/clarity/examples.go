package clarity

import (
	"regexp"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

var exampleWordingRe = regexp.MustCompile(`(?i)example|e\.g\.|for instance|like this|such as`)

// HasExamples asks for examples in a main file of any real length.
type HasExamples struct{}

// ID implements rule.Rule.
func (r *HasExamples) ID() string { return "clarity/has-examples" }

// Category implements rule.Rule.
func (r *HasExamples) Category() lint.Category { return lint.Clarity }

// Severity implements rule.Rule.
func (r *HasExamples) Severity() lint.Severity { return lint.Info }

// Description implements rule.Rule.
func (r *HasExamples) Description() string {
	return "Including examples helps the agent understand expected behavior"
}

// Check implements rule.Rule.
func (r *HasExamples) Check(docs []*lint.Document) []lint.Diagnostic {
	mainDoc := lint.MainDocument(docs)
	if mainDoc == nil || len(mainDoc.Lines) <= 30 {
		return nil
	}
	if exampleWordingRe.MatchString(mainDoc.Content) || lint.HasCodeBlock(mainDoc) {
		return nil
	}
	return []lint.Diagnostic{rule.Diag(r, mainDoc.Name, 0,
		"No examples found. Adding examples (code blocks, sample outputs) helps the agent understand expectations.",
		"Add a ## Examples section or include inline examples with ``` code blocks")}
}
