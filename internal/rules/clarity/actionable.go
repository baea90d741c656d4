package clarity

import (
	"fmt"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

var passivePhrases = []phrase{
	p(`\bshould be done\b`, "Use active voice: 'Do X' instead of 'X should be done'"),
	p(`\bit is expected\b`, "Use direct instructions: 'Always do X' instead of 'it is expected'"),
	p(`\bcan be used\b`, "Be direct: 'Use X for Y' instead of 'X can be used'"),
}

// ActionableInstructions prefers active voice over passive phrasing.
type ActionableInstructions struct{}

// ID implements rule.Rule.
func (r *ActionableInstructions) ID() string { return "clarity/actionable-instructions" }

// Category implements rule.Rule.
func (r *ActionableInstructions) Category() lint.Category { return lint.Clarity }

// Severity implements rule.Rule.
func (r *ActionableInstructions) Severity() lint.Severity { return lint.Info }

// Description implements rule.Rule.
func (r *ActionableInstructions) Description() string {
	return "Prefer active voice and direct instructions"
}

// Check implements rule.Rule.
func (r *ActionableInstructions) Check(docs []*lint.Document) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, d := range docs {
		if !d.IsMarkdown() {
			continue
		}
		for i, line := range d.Lines {
			ph, ok := firstMatch(passivePhrases, line)
			if !ok {
				continue
			}
			diags = append(diags, rule.Diag(r, d.Name, i+1,
				fmt.Sprintf("Passive instruction: %q", excerpt(line, 80)),
				ph.suggestion))
		}
	}
	return diags
}
