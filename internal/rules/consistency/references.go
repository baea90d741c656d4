package consistency

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

var (
	verbRefRe     = regexp.MustCompile(`(?i)(?:see|read|check|refer to|load|include)\s+[\x60"']?([A-Z][A-Za-z_-]+\.md)[\x60"']?`)
	backtickRefRe = regexp.MustCompile("`([A-Z][A-Za-z_-]+\\.md)`")
)

// genericRefs name file patterns ("check SKILL.md for each skill"), not
// files expected in the workspace.
var genericRefs = []string{"SKILL.md", "README.md", "CHANGELOG.md", "LICENSE.md"}

// ReferencedFilesExist flags references to .md files that were not
// scanned. Each missing name is reported once per referencing document.
type ReferencedFilesExist struct{}

// ID implements rule.Rule.
func (r *ReferencedFilesExist) ID() string { return "consistency/referenced-files-exist" }

// Category implements rule.Rule.
func (r *ReferencedFilesExist) Category() lint.Category { return lint.Consistency }

// Severity implements rule.Rule.
func (r *ReferencedFilesExist) Severity() lint.Severity { return lint.Critical }

// Description implements rule.Rule.
func (r *ReferencedFilesExist) Description() string {
	return "Files referenced in agent configs should exist"
}

// Check implements rule.Rule.
func (r *ReferencedFilesExist) Check(docs []*lint.Document) []lint.Diagnostic {
	known := make(map[string]bool, len(docs))
	for _, d := range docs {
		known[strings.ToLower(d.Name)] = true
	}

	var diags []lint.Diagnostic
	for _, d := range docs {
		reported := map[string]bool{}
		for _, re := range []*regexp.Regexp{verbRefRe, backtickRefRe} {
			for _, m := range re.FindAllStringSubmatchIndex(d.Content, -1) {
				name := d.Content[m[2]:m[3]]
				key := strings.ToLower(name)
				if isGeneric(name) || known[key] || reported[key] {
					continue
				}
				reported[key] = true
				diags = append(diags, rule.Diag(r, d.Name, d.LineOfOffset(m[2]),
					fmt.Sprintf("Referenced file %q not found in workspace.", name),
					fmt.Sprintf("Create %s or remove the reference.", name)))
			}
		}
	}
	return diags
}

func isGeneric(name string) bool {
	for _, g := range genericRefs {
		if strings.EqualFold(name, g) {
			return true
		}
	}
	return false
}
