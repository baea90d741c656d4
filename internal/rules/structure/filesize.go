package structure

import (
	"fmt"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

// FileSize warns when a main file grows past Max lines.
type FileSize struct {
	Max int
}

// ID implements rule.Rule.
func (r *FileSize) ID() string { return "structure/file-size" }

// Category implements rule.Rule.
func (r *FileSize) Category() lint.Category { return lint.Structure }

// Severity implements rule.Rule.
func (r *FileSize) Severity() lint.Severity { return lint.Warning }

// Description implements rule.Rule.
func (r *FileSize) Description() string {
	return "Files should not be excessively long (readability)"
}

// Check implements rule.Rule.
func (r *FileSize) Check(docs []*lint.Document) []lint.Diagnostic {
	max := r.Max
	if max <= 0 {
		max = 500
	}
	var diags []lint.Diagnostic
	for _, d := range docs {
		if !lint.IsMainName(d.Name) || len(d.Lines) <= max {
			continue
		}
		diags = append(diags, rule.Diag(r, d.Name, 0,
			fmt.Sprintf("File is %d lines; consider splitting into separate files (SOUL.md, TOOLS.md, etc.) for maintainability.",
				len(d.Lines)),
			"Split into focused files: SOUL.md (identity), TOOLS.md (tool config), SECURITY.md (security rules)"))
	}
	return diags
}
