package structure

import (
	"fmt"
	"strings"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

// NoEmptySections flags headings in core files that have no body text.
type NoEmptySections struct{}

// ID implements rule.Rule.
func (r *NoEmptySections) ID() string { return "structure/no-empty-sections" }

// Category implements rule.Rule.
func (r *NoEmptySections) Category() lint.Category { return lint.Structure }

// Severity implements rule.Rule.
func (r *NoEmptySections) Severity() lint.Severity { return lint.Warning }

// Description implements rule.Rule.
func (r *NoEmptySections) Description() string {
	return "Core agent files should not have empty sections"
}

// Check implements rule.Rule.
func (r *NoEmptySections) Check(docs []*lint.Document) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, d := range lint.CoreDocuments(docs) {
		for _, s := range d.Sections {
			if hasText(s.Body()) {
				continue
			}
			diags = append(diags, rule.Diag(r, d.Name, s.StartLine+1,
				fmt.Sprintf("Empty section: %q. Either add content or remove the heading.", s.Heading),
				""))
		}
	}
	return diags
}

func hasText(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return true
		}
	}
	return false
}
