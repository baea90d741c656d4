package consistency

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

const minInstructionLen = 20

var (
	bulletPrefixRe = regexp.MustCompile(`^[-*>]\s*`)
	spaceRunRe     = regexp.MustCompile(`\s+`)
)

// NoDuplicateInstructions flags bullet and quote lines repeated across
// core files. The first file containing a line owns it.
type NoDuplicateInstructions struct{}

// ID implements rule.Rule.
func (r *NoDuplicateInstructions) ID() string { return "consistency/no-duplicate-instructions" }

// Category implements rule.Rule.
func (r *NoDuplicateInstructions) Category() lint.Category { return lint.Consistency }

// Severity implements rule.Rule.
func (r *NoDuplicateInstructions) Severity() lint.Severity { return lint.Warning }

// Description implements rule.Rule.
func (r *NoDuplicateInstructions) Description() string {
	return "Same instruction should not appear in multiple files"
}

// Check implements rule.Rule.
func (r *NoDuplicateInstructions) Check(docs []*lint.Document) []lint.Diagnostic {
	owner := map[string]string{}

	var diags []lint.Diagnostic
	for _, d := range lint.CoreDocuments(docs) {
		for i, raw := range d.Lines {
			norm, ok := normalizeInstruction(raw)
			if !ok {
				continue
			}
			first, seen := owner[norm]
			if !seen || first == d.Name {
				owner[norm] = d.Name
				continue
			}
			diags = append(diags, rule.Diag(r, d.Name, i+1,
				fmt.Sprintf("Duplicate instruction also in %s: %q", first, truncate(norm, 60)),
				"Keep the instruction in one place and reference it from other files."))
		}
	}
	return diags
}

// normalizeInstruction strips the bullet or quote marker, lowercases and
// collapses whitespace. Lines that are not bullets or quotes, or that are
// shorter than minInstructionLen before or after normalizing, are skipped.
func normalizeInstruction(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if utf8.RuneCountInString(line) < minInstructionLen {
		return "", false
	}
	if !strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "*") && !strings.HasPrefix(line, ">") {
		return "", false
	}
	norm := bulletPrefixRe.ReplaceAllString(line, "")
	norm = strings.TrimSpace(spaceRunRe.ReplaceAllString(strings.ToLower(norm), " "))
	if utf8.RuneCountInString(norm) < minInstructionLen {
		return "", false
	}
	return norm, true
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
