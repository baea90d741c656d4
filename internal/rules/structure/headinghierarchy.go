package structure

import (
	"fmt"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

// HeadingHierarchy flags headings that skip levels, e.g. h1 followed by h3.
// The first heading of a document sets the baseline and is never flagged.
type HeadingHierarchy struct{}

// ID implements rule.Rule.
func (r *HeadingHierarchy) ID() string { return "structure/heading-hierarchy" }

// Category implements rule.Rule.
func (r *HeadingHierarchy) Category() lint.Category { return lint.Structure }

// Severity implements rule.Rule.
func (r *HeadingHierarchy) Severity() lint.Severity { return lint.Info }

// Description implements rule.Rule.
func (r *HeadingHierarchy) Description() string {
	return "Headings should follow a logical hierarchy (no skipping levels)"
}

// Check implements rule.Rule.
func (r *HeadingHierarchy) Check(docs []*lint.Document) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, d := range docs {
		if !d.IsMarkdown() {
			continue
		}
		prevLevel := 0
		for _, s := range d.Sections {
			if prevLevel > 0 && s.Level > prevLevel+1 {
				diags = append(diags, rule.Diag(r, d.Name, s.StartLine+1,
					fmt.Sprintf("Heading level skipped: h%d -> h%d. Consider using h%d instead.",
						prevLevel, s.Level, prevLevel+1),
					""))
			}
			prevLevel = s.Level
		}
	}
	return diags
}
