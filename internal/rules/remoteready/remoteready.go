// Package remoteready holds auxiliary rules that check whether a
// workspace can drive a headless agent run. Their category carries no
// weight in the total score.
package remoteready

import (
	"regexp"
	"strings"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

func init() {
	rule.Register(&WorkspacePathSpecified{})
	rule.Register(&EnvVarsDocumented{})
	rule.Register(&ModelSettingsSpecified{})
}

func anyMatch(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func notMemory(d *lint.Document) bool { return !strings.HasPrefix(d.Name, "memory/") }

func notAuxiliary(d *lint.Document) bool { return !lint.IsAuxiliary(d.Name) }

// target picks the document a workspace-level finding is attached to:
// TOOLS.md, then the main file.
func target(docs []*lint.Document) string {
	if d := lint.FindDocument(docs, "TOOLS.md"); d != nil {
		return d.Name
	}
	if d := lint.MainDocument(docs); d != nil {
		return d.Name
	}
	return lint.WorkspaceFile
}
