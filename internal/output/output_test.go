package output

import (
	"time"

	"github.com/jeduden/agentlint/internal/engine"
	"github.com/jeduden/agentlint/internal/lint"
)

func sampleResult() *engine.LintResult {
	diags := []lint.Diagnostic{
		{
			Severity: lint.Critical,
			Category: lint.Structure,
			RuleID:   "structure/has-main-file",
			File:     lint.WorkspaceFile,
			Message:  "No CLAUDE.md or AGENTS.md found.",
			Fix:      "Create a CLAUDE.md file.",
		},
		{
			Severity: lint.Warning,
			Category: lint.Clarity,
			RuleID:   "clarity/no-vague-instructions",
			File:     "SOUL.md",
			Line:     4,
			Message:  "Vague instruction: \"try to\"",
		},
		{
			Severity: lint.Info,
			Category: lint.RemoteReady,
			RuleID:   "remote-ready/env-vars-documented",
			File:     lint.WorkspaceFile,
			Message:  "No environment variables documented.",
		},
	}
	cats, total := engine.Score(diags)
	return &engine.LintResult{
		Workspace:   "/ws",
		Documents:   []*lint.Document{lint.NewDocument("SOUL.md", "/ws/SOUL.md", "# Soul\n\n## Identity\ntry to help\n")},
		Categories:  cats,
		TotalScore:  total,
		Diagnostics: diags,
		Timestamp:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}
