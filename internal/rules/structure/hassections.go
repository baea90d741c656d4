package structure

import (
	"fmt"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

const minSections = 3

// HasSections checks that the main file is organized into sections.
type HasSections struct{}

// ID implements rule.Rule.
func (r *HasSections) ID() string { return "structure/has-sections" }

// Category implements rule.Rule.
func (r *HasSections) Category() lint.Category { return lint.Structure }

// Severity implements rule.Rule.
func (r *HasSections) Severity() lint.Severity { return lint.Warning }

// Description implements rule.Rule.
func (r *HasSections) Description() string {
	return "Main file should have organized sections with headings"
}

// Check implements rule.Rule.
func (r *HasSections) Check(docs []*lint.Document) []lint.Diagnostic {
	mainDoc := lint.MainDocument(docs)
	if mainDoc == nil || len(mainDoc.Sections) >= minSections {
		return nil
	}
	return []lint.Diagnostic{rule.Diag(r, mainDoc.Name, 0,
		fmt.Sprintf("Only %d section(s) found. Use ## headings to organize instructions into clear sections (aim for %d+).",
			len(mainDoc.Sections), minSections),
		"Add sections like ## Identity, ## Tools, ## Boundaries, ## Memory Strategy")}
}
