package clarity

import (
	"fmt"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

// vaguePhrases are checked in order; the first match on a line wins.
var vaguePhrases = []phrase{
	p(`\bbe helpful\b`, "Specify HOW to be helpful (e.g., 'provide code examples', 'explain step by step')"),
	p(`\bbe nice\b`, "Define the specific tone (e.g., 'use casual but professional tone')"),
	p(`\bbe smart\b`, "Specify what 'smart' means in context (e.g., 'prioritize accuracy over speed')"),
	p(`\bbe concise\b`, "Set specific limits (e.g., 'keep responses under 3 paragraphs unless asked for more')"),
	p(`\bdo your best\b`, "Define what success looks like specifically"),
	p(`\btry to\b`, "Use direct instructions instead of 'try to' (e.g., 'do X' not 'try to do X')"),
	p(`\bif possible\b`, "Specify the conditions or constraints explicitly"),
	p(`\bas needed\b`, "Define when it's needed with specific triggers"),
	p(`\bwhen appropriate\b`, "Define what 'appropriate' means in your context"),
	p(`\buse common sense\b`, "AI doesn't have 'common sense'; spell out the specific rules"),
	p(`\buse good judgment\b`, "Define the criteria for judgment (e.g., 'prefer X over Y when Z')"),
	p(`\betc\.?\b`, "List all items explicitly; 'etc' leaves AI guessing"),
	p(`\band so on\b`, "Be exhaustive; list all relevant items"),
	p(`\bthings like\b`, "List specific items instead of 'things like'"),
}

// NoVagueInstructions flags vague wording in core files, at most once
// per line.
type NoVagueInstructions struct{}

// ID implements rule.Rule.
func (r *NoVagueInstructions) ID() string { return "clarity/no-vague-instructions" }

// Category implements rule.Rule.
func (r *NoVagueInstructions) Category() lint.Category { return lint.Clarity }

// Severity implements rule.Rule.
func (r *NoVagueInstructions) Severity() lint.Severity { return lint.Warning }

// Description implements rule.Rule.
func (r *NoVagueInstructions) Description() string {
	return "Instructions should be specific and actionable, not vague"
}

// Check implements rule.Rule.
func (r *NoVagueInstructions) Check(docs []*lint.Document) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, d := range lint.CoreDocuments(docs) {
		for i, line := range d.Lines {
			ph, ok := firstMatch(vaguePhrases, line)
			if !ok {
				continue
			}
			diags = append(diags, rule.Diag(r, d.Name, i+1,
				fmt.Sprintf("Vague instruction: %q", excerpt(line, 80)),
				ph.suggestion))
		}
	}
	return diags
}
