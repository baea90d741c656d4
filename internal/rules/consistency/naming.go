package consistency

import (
	"fmt"
	"strings"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

// NamingConvention flags root-level files that mix UPPERCASE.md and
// lowercase.md names.
type NamingConvention struct{}

// ID implements rule.Rule.
func (r *NamingConvention) ID() string { return "consistency/naming-convention" }

// Category implements rule.Rule.
func (r *NamingConvention) Category() lint.Category { return lint.Consistency }

// Severity implements rule.Rule.
func (r *NamingConvention) Severity() lint.Severity { return lint.Info }

// Description implements rule.Rule.
func (r *NamingConvention) Description() string {
	return "File naming should follow a consistent convention"
}

// Check implements rule.Rule.
func (r *NamingConvention) Check(docs []*lint.Document) []lint.Diagnostic {
	var upper, lower []string
	for _, d := range docs {
		if !d.IsMarkdown() || strings.Contains(d.Name, "/") {
			continue
		}
		stem := strings.TrimSuffix(d.Name, ".md")
		// Names without cased letters count as both.
		if stem == strings.ToUpper(stem) {
			upper = append(upper, d.Name)
		}
		if stem == strings.ToLower(stem) {
			lower = append(lower, d.Name)
		}
	}
	if len(upper) == 0 || len(lower) == 0 {
		return nil
	}
	return []lint.Diagnostic{rule.Diag(r, lint.WorkspaceFile, 0,
		fmt.Sprintf("Mixed file naming: %d UPPERCASE (%s), %d lowercase (%s). Pick one convention.",
			len(upper), strings.Join(upper, ", "), len(lower), strings.Join(lower, ", ")),
		"Use consistent naming; UPPERCASE.md is the common convention for agent files.")}
}
