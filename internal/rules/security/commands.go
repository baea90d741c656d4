package security

import (
	"fmt"
	"regexp"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

// dangerousCommands are checked in order. Patterns marked codeOnly only
// apply inside code blocks, where they read as commands rather than prose.
var dangerousCommands = []struct {
	what     string
	re       *regexp.Regexp
	codeOnly bool
}{
	{"recursive delete of root or home", regexp.MustCompile(`\brm\s+-(?:rf|fr|r\s+-f|f\s+-r)\s+(?:/|~|\$HOME)(?:[\s\x60'"]|$|/\*)`), false},
	{"piping a download into a shell", regexp.MustCompile(`\b(?:curl|wget)\b[^|\n]*\|\s*(?:sudo\s+)?(?:ba|z)?sh\b`), false},
	{"world-writable permissions", regexp.MustCompile(`\bchmod\s+(?:-R\s+)?777\b`), false},
	{"skipping permission prompts", regexp.MustCompile(`--dangerously-skip-permissions`), false},
	{"running as root via sudo", regexp.MustCompile(`(?:^|[\s$(])sudo\s+\S`), true},
}

// NoDangerousCommands flags destructive or privilege-escalating commands
// in core files, once per line.
type NoDangerousCommands struct{}

// ID implements rule.Rule.
func (r *NoDangerousCommands) ID() string { return "security/no-dangerous-commands" }

// Category implements rule.Rule.
func (r *NoDangerousCommands) Category() lint.Category { return lint.Security }

// Severity implements rule.Rule.
func (r *NoDangerousCommands) Severity() lint.Severity { return lint.Warning }

// Description implements rule.Rule.
func (r *NoDangerousCommands) Description() string {
	return "Instructions should not tell the agent to run destructive commands"
}

// Check implements rule.Rule.
func (r *NoDangerousCommands) Check(docs []*lint.Document) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, d := range lint.CoreDocuments(docs) {
		code := lint.CodeBlockLines(d)
		for i, line := range d.Lines {
			for _, c := range dangerousCommands {
				if c.codeOnly && !code[i+1] {
					continue
				}
				if !c.re.MatchString(line) {
					continue
				}
				diags = append(diags, rule.Diag(r, d.Name, i+1,
					fmt.Sprintf("Dangerous command (%s).", c.what),
					"Remove the command or require explicit user confirmation before running it."))
				break
			}
		}
	}
	return diags
}
