package clarity

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

var imperativeRe = regexp.MustCompile(`(?i)^[-*]\s*(Always|Never|Do|Don't|Must|Should|Ensure|Make sure|Remember|Check)`)

const maxImperatives = 30

// InstructionDensity warns when the main file is a wall of imperatives.
type InstructionDensity struct{}

// ID implements rule.Rule.
func (r *InstructionDensity) ID() string { return "clarity/instruction-density" }

// Category implements rule.Rule.
func (r *InstructionDensity) Category() lint.Category { return lint.Clarity }

// Severity implements rule.Rule.
func (r *InstructionDensity) Severity() lint.Severity { return lint.Info }

// Description implements rule.Rule.
func (r *InstructionDensity) Description() string {
	return "Files with too many instructions may cause confusion"
}

// Check implements rule.Rule.
func (r *InstructionDensity) Check(docs []*lint.Document) []lint.Diagnostic {
	mainDoc := lint.MainDocument(docs)
	if mainDoc == nil {
		return nil
	}
	n := 0
	for _, l := range mainDoc.Lines {
		if imperativeRe.MatchString(strings.TrimSpace(l)) {
			n++
		}
	}
	if n <= maxImperatives {
		return nil
	}
	return []lint.Diagnostic{rule.Diag(r, mainDoc.Name, 0,
		fmt.Sprintf("%d imperative instructions found. Consider prioritizing; too many rules can dilute important ones.", n),
		"Group instructions by priority. Put critical rules first, nice-to-haves later.")}
}
