package completeness

import (
	"regexp"
	"strings"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

// Topic requires that the workspace covers a subject, either through one
// of files, a document under prefix, or a section heading matching
// heading. An empty workspace is left to structure/has-main-file.
type Topic struct {
	id          string
	severity    lint.Severity
	description string
	files       []string
	prefix      string
	heading     *regexp.Regexp
	message     string
	fix         string
}

// ID implements rule.Rule.
func (r *Topic) ID() string { return r.id }

// Category implements rule.Rule.
func (r *Topic) Category() lint.Category { return lint.Completeness }

// Severity implements rule.Rule.
func (r *Topic) Severity() lint.Severity { return r.severity }

// Description implements rule.Rule.
func (r *Topic) Description() string { return r.description }

// Check implements rule.Rule.
func (r *Topic) Check(docs []*lint.Document) []lint.Diagnostic {
	if len(docs) == 0 || r.covered(docs) {
		return nil
	}
	file := lint.WorkspaceFile
	if m := lint.MainDocument(docs); m != nil {
		file = m.Name
	}
	return []lint.Diagnostic{rule.Diag(r, file, 0, r.message, r.fix)}
}

func (r *Topic) covered(docs []*lint.Document) bool {
	for _, d := range docs {
		for _, f := range r.files {
			if d.Name == f || strings.HasSuffix(d.Name, "/"+f) {
				return true
			}
		}
		if r.prefix != "" && strings.HasPrefix(d.Name, r.prefix) {
			return true
		}
		if r.heading != nil && d.HasHeading(r.heading.MatchString) {
			return true
		}
	}
	return false
}
