package structure

import (
	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

// HasMainFile requires a CLAUDE.md or AGENTS.md entry point.
type HasMainFile struct{}

// ID implements rule.Rule.
func (r *HasMainFile) ID() string { return "structure/has-main-file" }

// Category implements rule.Rule.
func (r *HasMainFile) Category() lint.Category { return lint.Structure }

// Severity implements rule.Rule.
func (r *HasMainFile) Severity() lint.Severity { return lint.Critical }

// Description implements rule.Rule.
func (r *HasMainFile) Description() string {
	return "Workspace must have a CLAUDE.md or AGENTS.md file"
}

// Check implements rule.Rule.
func (r *HasMainFile) Check(docs []*lint.Document) []lint.Diagnostic {
	for _, d := range docs {
		for _, name := range lint.MainFileNames {
			if d.Name == name {
				return nil
			}
		}
	}
	return []lint.Diagnostic{rule.Diag(r, lint.WorkspaceFile, 0,
		"No CLAUDE.md or AGENTS.md found. This is the main entry point for your agent.",
		"Create a CLAUDE.md file with your agent's core instructions.")}
}
