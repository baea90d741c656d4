// Package completeness holds rules that look for the topics a complete
// agent configuration covers: identity, tools, boundaries, memory and
// the user. Each topic is satisfied by a dedicated file or by a section
// heading anywhere in the workspace.
package completeness

import (
	"regexp"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

func init() {
	rule.Register(&Topic{
		id:          "completeness/has-identity",
		severity:    lint.Warning,
		description: "Agent identity or role should be defined",
		files:       []string{"SOUL.md", "IDENTITY.md"},
		heading:     regexp.MustCompile(`(?i)identity|persona|who (you are|am i)|\brole\b|about`),
		message:     "No identity or role definition found. The agent should know who it is and what it is for.",
		fix:         "Add a SOUL.md or IDENTITY.md, or a ## Identity section describing the agent's role.",
	})
	rule.Register(&Topic{
		id:          "completeness/has-tool-docs",
		severity:    lint.Warning,
		description: "Available tools and commands should be documented",
		files:       []string{"TOOLS.md"},
		heading:     regexp.MustCompile(`(?i)tool|command|capabilit`),
		message:     "No tool documentation found. List the tools and commands the agent may use.",
		fix:         "Add a TOOLS.md or a ## Tools section with commands and when to use them.",
	})
	rule.Register(&Topic{
		id:          "completeness/has-boundaries",
		severity:    lint.Warning,
		description: "Boundaries and constraints should be stated",
		heading:     regexp.MustCompile(`(?i)boundar|\brules?\b|constraint|limit|guardrail|don'?t|never`),
		message:     "No boundaries section found. State what the agent must not do.",
		fix:         "Add a ## Boundaries section listing actions that are off limits.",
	})
	rule.Register(&Topic{
		id:          "completeness/has-memory-strategy",
		severity:    lint.Info,
		description: "A memory or context strategy should be described",
		files:       []string{"MEMORY.md"},
		prefix:      "memory/",
		heading:     regexp.MustCompile(`(?i)memory|context|state|persist`),
		message:     "No memory strategy found. Describe what the agent should remember between sessions and where.",
		fix:         "Add a MEMORY.md or a ## Memory Strategy section.",
	})
	rule.Register(&Topic{
		id:          "completeness/has-user-context",
		severity:    lint.Info,
		description: "Information about the user or audience helps tailor responses",
		files:       []string{"USER.md"},
		heading:     regexp.MustCompile(`(?i)\buser\b|audience|owner|about me`),
		message:     "No user context found. Describe who the agent works for and their preferences.",
		fix:         "Add a USER.md or a ## User section.",
	})
}
