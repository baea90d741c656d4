package structure

import (
	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

// ModularFiles suggests splitting a workspace that is one long file.
type ModularFiles struct{}

// ID implements rule.Rule.
func (r *ModularFiles) ID() string { return "structure/modular-files" }

// Category implements rule.Rule.
func (r *ModularFiles) Category() lint.Category { return lint.Structure }

// Severity implements rule.Rule.
func (r *ModularFiles) Severity() lint.Severity { return lint.Info }

// Description implements rule.Rule.
func (r *ModularFiles) Description() string {
	return "Using multiple focused files is better than one monolith"
}

// Check implements rule.Rule.
func (r *ModularFiles) Check(docs []*lint.Document) []lint.Diagnostic {
	var md []*lint.Document
	for _, d := range docs {
		if d.IsMarkdown() {
			md = append(md, d)
		}
	}
	if len(md) != 1 || len(md[0].Lines) <= 100 {
		return nil
	}
	return []lint.Diagnostic{rule.Diag(r, md[0].Name, 0,
		"Only 1 file found with 100+ lines. Consider splitting into modular files for better organization.",
		"Create separate files: SOUL.md (personality), USER.md (user context), TOOLS.md (tool documentation)")}
}
