package engine

import (
	"fmt"

	"github.com/jeduden/agentlint/internal/config"
	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

// PanicRuleID is the rule ID of the diagnostic that replaces the output
// of a rule that panicked.
const PanicRuleID = "engine/rule-panic"

// EnabledRules returns the rules cfg leaves enabled, in their original
// order. A nil cfg enables every rule.
func EnabledRules(rules []rule.Rule, cfg *config.Config) []rule.Rule {
	var enabled []rule.Rule
	for _, rl := range rules {
		if cfg.Enabled(rl.ID()) {
			enabled = append(enabled, rl)
		}
	}
	return enabled
}

// CheckRule runs rl against docs. A panic inside the rule is recovered
// and reported as a single critical diagnostic in the rule's category.
func CheckRule(rl rule.Rule, docs []*lint.Document) (diags []lint.Diagnostic) {
	defer func() {
		if v := recover(); v != nil {
			diags = []lint.Diagnostic{{
				Severity: lint.Critical,
				Category: rl.Category(),
				RuleID:   PanicRuleID,
				File:     lint.WorkspaceFile,
				Message:  fmt.Sprintf("Rule %s failed: %v", rl.ID(), v),
				Fix:      "Report this failure; the rule's findings are missing from this run.",
			}}
		}
	}()
	return rl.Check(docs)
}

// AdjustDiagnostics applies per-file rule settings to diags: findings of
// rules disabled for their file are dropped and severity overrides are
// applied. It returns a new slice; diags is not modified.
func AdjustDiagnostics(cfg *config.Config, diags []lint.Diagnostic) []lint.Diagnostic {
	if cfg == nil || len(diags) == 0 {
		return diags
	}

	effective := make(map[string]map[string]config.RuleCfg)
	out := make([]lint.Diagnostic, 0, len(diags))
	for _, d := range diags {
		eff, ok := effective[d.File]
		if !ok {
			eff = config.Effective(cfg, d.File)
			effective[d.File] = eff
		}
		rc, ok := eff[d.RuleID]
		if ok {
			if !rc.Enabled {
				continue
			}
			if rc.Severity != "" {
				d.Severity = rc.Severity
			}
		}
		out = append(out, d)
	}
	return out
}
