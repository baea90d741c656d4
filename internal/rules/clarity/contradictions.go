package clarity

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

// The capture is the keyword's object: one to four words.
var (
	alwaysRe = regexp.MustCompile(`always\s+(\w+(?:\s+\w+){0,3})`)
	neverRe  = regexp.MustCompile(`never\s+(\w+(?:\s+\w+){0,3})`)
)

type directive struct {
	text string
	line int
}

// NoContradictions flags "always X" and "never X" pairs in the same file.
type NoContradictions struct{}

// ID implements rule.Rule.
func (r *NoContradictions) ID() string { return "clarity/no-contradictions" }

// Category implements rule.Rule.
func (r *NoContradictions) Category() lint.Category { return lint.Clarity }

// Severity implements rule.Rule.
func (r *NoContradictions) Severity() lint.Severity { return lint.Critical }

// Description implements rule.Rule.
func (r *NoContradictions) Description() string {
	return "Instructions within a file should not contradict each other"
}

// Check implements rule.Rule. Every matching pair is reported, so a
// phrase repeated on both sides yields one diagnostic per combination.
func (r *NoContradictions) Check(docs []*lint.Document) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, d := range docs {
		if !d.IsMarkdown() {
			continue
		}

		var always, never []directive
		for i, line := range d.Lines {
			line = strings.ToLower(line)
			if m := alwaysRe.FindStringSubmatch(line); m != nil {
				always = append(always, directive{text: m[1], line: i + 1})
			}
			if m := neverRe.FindStringSubmatch(line); m != nil {
				never = append(never, directive{text: m[1], line: i + 1})
			}
		}

		for _, a := range always {
			for _, n := range never {
				if a.text != n.text {
					continue
				}
				diags = append(diags, rule.Diag(r, d.Name, n.line,
					fmt.Sprintf("Contradiction: \"always %s\" (line %d) vs \"never %s\" (line %d)",
						a.text, a.line, n.text, n.line),
					"Resolve the contradiction: pick one or add conditional logic"))
			}
		}
	}
	return diags
}
