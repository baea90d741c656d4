package security

import (
	"regexp"
	"strings"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

var securityHeadingRe = regexp.MustCompile(`(?i)security|safety|permission|privacy`)

// HasSecuritySection asks for explicit security guidance.
type HasSecuritySection struct{}

// ID implements rule.Rule.
func (r *HasSecuritySection) ID() string { return "security/has-security-section" }

// Category implements rule.Rule.
func (r *HasSecuritySection) Category() lint.Category { return lint.Security }

// Severity implements rule.Rule.
func (r *HasSecuritySection) Severity() lint.Severity { return lint.Warning }

// Description implements rule.Rule.
func (r *HasSecuritySection) Description() string {
	return "Workspace should document security boundaries"
}

// Check implements rule.Rule.
func (r *HasSecuritySection) Check(docs []*lint.Document) []lint.Diagnostic {
	if len(docs) == 0 {
		return nil
	}
	for _, d := range docs {
		if d.Name == "SECURITY.md" || strings.HasSuffix(d.Name, "/SECURITY.md") {
			return nil
		}
		if d.HasHeading(securityHeadingRe.MatchString) {
			return nil
		}
	}
	file := lint.WorkspaceFile
	if m := lint.MainDocument(docs); m != nil {
		file = m.Name
	}
	return []lint.Diagnostic{rule.Diag(r, file, 0,
		"No security guidance found. Agents with tool access need explicit rules about secrets, destructive actions and external data.",
		"Add a SECURITY.md or a ## Security section.")}
}
