package security

import (
	"fmt"
	"regexp"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

type secretPattern struct {
	kind string
	re   *regexp.Regexp
}

// secretPatterns are checked in order; the first match on a line wins.
var secretPatterns = []secretPattern{
	{"Anthropic API key", regexp.MustCompile(`\bsk-ant-[A-Za-z0-9_-]{20,}`)},
	{"OpenAI API key", regexp.MustCompile(`\bsk-(?:proj-)?[A-Za-z0-9]{20,}`)},
	{"GitHub token", regexp.MustCompile(`\b(?:ghp|gho|ghu|ghs|ghr)_[A-Za-z0-9]{36}\b|\bgithub_pat_[A-Za-z0-9_]{22,}`)},
	{"AWS access key", regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`)},
	{"Slack token", regexp.MustCompile(`\bxox[bpars]-[A-Za-z0-9-]{10,}`)},
	{"private key", regexp.MustCompile(`-----BEGIN (?:RSA |EC |OPENSSH |DSA )?PRIVATE KEY-----`)},
	{"hardcoded credential", regexp.MustCompile(`(?i)\b(?:password|passwd|secret|api[_-]?key|access[_-]?token|auth[_-]?token)\s*[:=]\s*["']?[A-Za-z0-9/+_\-]{8,}`)},
}

// NoSecrets flags credentials pasted into agent files. Messages name the
// kind of secret, never the value.
type NoSecrets struct{}

// ID implements rule.Rule.
func (r *NoSecrets) ID() string { return "security/no-secrets" }

// Category implements rule.Rule.
func (r *NoSecrets) Category() lint.Category { return lint.Security }

// Severity implements rule.Rule.
func (r *NoSecrets) Severity() lint.Severity { return lint.Critical }

// Description implements rule.Rule.
func (r *NoSecrets) Description() string {
	return "Agent files must not contain API keys, tokens or passwords"
}

// Check implements rule.Rule.
func (r *NoSecrets) Check(docs []*lint.Document) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, d := range docs {
		for i, line := range d.Lines {
			for _, sp := range secretPatterns {
				if !sp.re.MatchString(line) {
					continue
				}
				diags = append(diags, rule.Diag(r, d.Name, i+1,
					fmt.Sprintf("Possible %s in plain text.", sp.kind),
					"Remove the secret, rotate it, and reference an environment variable instead."))
				break
			}
		}
	}
	return diags
}
