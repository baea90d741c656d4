package consistency

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

var identityFiles = []string{"SOUL.md", "IDENTITY.md", "CLAUDE.md", "AGENTS.md"}

var identityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\*\*Name:\*\*\s*(.+)`),
	regexp.MustCompile(`(?im)^-\s*\*\*Name:\*\*\s*(.+)`),
	regexp.MustCompile(`(?i)name\s*[:=]\s*['"]([^'"]+)['"]`),
	regexp.MustCompile(`(?m)^#\s+.*?[-\x{2014}]\s*(.+)`),
}

var notAName = regexp.MustCompile(`(?i)^(the|a|an|this|that|your|my|it|is|are|was|string|function|class)`)

const maxIdentityNames = 3

// IdentityAlignment warns when the identity files declare many different
// agent names.
type IdentityAlignment struct{}

// ID implements rule.Rule.
func (r *IdentityAlignment) ID() string { return "consistency/identity-alignment" }

// Category implements rule.Rule.
func (r *IdentityAlignment) Category() lint.Category { return lint.Consistency }

// Severity implements rule.Rule.
func (r *IdentityAlignment) Severity() lint.Severity { return lint.Warning }

// Description implements rule.Rule.
func (r *IdentityAlignment) Description() string {
	return "Agent identity should be consistent across files"
}

// Check implements rule.Rule.
func (r *IdentityAlignment) Check(docs []*lint.Document) []lint.Diagnostic {
	var names []string
	seen := map[string]bool{}
	add := func(raw string) {
		name := strings.Join(firstN(strings.Fields(raw), 3), " ")
		if n := utf8.RuneCountInString(name); n <= 2 || n >= 25 || notAName.MatchString(name) || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	for _, d := range docs {
		if !isIdentityFile(d.Name) {
			continue
		}
		if fm := lint.FrontMatter(d); fm != nil {
			if s, ok := fm["name"].(string); ok {
				add(s)
			}
		}
		for _, re := range identityPatterns {
			for _, m := range re.FindAllStringSubmatch(d.Content, -1) {
				add(m[1])
			}
		}
	}

	if len(names) <= maxIdentityNames {
		return nil
	}
	return []lint.Diagnostic{rule.Diag(r, lint.WorkspaceFile, 0,
		fmt.Sprintf("Multiple identity names found: %s. Ensure they refer to the same entity.", strings.Join(names, ", ")),
		"Use a single consistent name for the agent across all files.")}
}

func isIdentityFile(name string) bool {
	for _, f := range identityFiles {
		if name == f {
			return true
		}
	}
	return false
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
