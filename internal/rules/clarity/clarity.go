// Package clarity holds rules about how specific and actionable the
// instructions are.
package clarity

import (
	"regexp"
	"strings"

	"github.com/jeduden/agentlint/internal/rule"
)

func init() {
	rule.Register(&NoVagueInstructions{})
	rule.Register(&ActionableInstructions{})
	rule.Register(&HasExamples{})
	rule.Register(&NoContradictions{})
	rule.Register(&InstructionDensity{})
}

// phrase is a textual pattern with the fix suggested when it matches.
type phrase struct {
	re         *regexp.Regexp
	suggestion string
}

func p(expr, suggestion string) phrase {
	return phrase{re: regexp.MustCompile(`(?i)` + expr), suggestion: suggestion}
}

// firstMatch returns the first phrase matching line.
func firstMatch(phrases []phrase, line string) (phrase, bool) {
	for _, ph := range phrases {
		if ph.re.MatchString(line) {
			return ph, true
		}
	}
	return phrase{}, false
}

// excerpt trims line and cuts it to at most n runes.
func excerpt(line string, n int) string {
	s := []rune(strings.TrimSpace(line))
	if len(s) > n {
		s = s[:n]
	}
	return string(s)
}
