package remoteready

import (
	"regexp"

	"github.com/jeduden/agentlint/internal/lint"
	"github.com/jeduden/agentlint/internal/rule"
)

var workspacePathRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)workspace.*[:=]\s*[\x60'"]?/[^\s\x60'"]+`),
	regexp.MustCompile(`(?i)repo.*[:=]\s*[\x60'"]?/[^\s\x60'"]+`),
	regexp.MustCompile(`(?i)working\s+dir(?:ectory)?.*[:=]\s*[\x60'"]?/[^\s\x60'"]+`),
	regexp.MustCompile(`(?i)cwd.*[:=]\s*[\x60'"]?/[^\s\x60'"]+`),
	regexp.MustCompile(`(?i)\bworkdir\b.*/[^\s]+`),
	regexp.MustCompile(`(?i)(?:repo|workspace|workdir|cwd)\s*=\s*/[^\s]+`),
}

// WorkspacePathSpecified asks for an explicit absolute workspace path.
type WorkspacePathSpecified struct{}

// ID implements rule.Rule.
func (r *WorkspacePathSpecified) ID() string { return "remote-ready/workspace-path-specified" }

// Category implements rule.Rule.
func (r *WorkspacePathSpecified) Category() lint.Category { return lint.RemoteReady }

// Severity implements rule.Rule.
func (r *WorkspacePathSpecified) Severity() lint.Severity { return lint.Warning }

// Description implements rule.Rule.
func (r *WorkspacePathSpecified) Description() string {
	return "Workspace path should be explicitly documented for remote execution"
}

// Check implements rule.Rule.
func (r *WorkspacePathSpecified) Check(docs []*lint.Document) []lint.Diagnostic {
	mainDoc := lint.MainDocument(docs)
	if mainDoc == nil {
		return nil
	}
	if anyMatch(workspacePathRes, lint.JoinContent(docs, notMemory)) {
		return nil
	}
	return []lint.Diagnostic{rule.Diag(r, mainDoc.Name, 0,
		"No explicit workspace path found. Remote/headless agents need a documented workspace path to operate correctly.",
		`Add workspace path in TOOLS.md or AGENTS.md Runtime section. Example: "repo=/Users/username/project"`)}
}

var (
	envUsageRes = []*regexp.Regexp{
		regexp.MustCompile(`\$\{?[A-Z][A-Z0-9_]{2,}\}?`),
		regexp.MustCompile(`process\.env\.[A-Z_]+`),
		regexp.MustCompile(`(?i)os\.environ`),
	}
	envDocRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)env(?:ironment)?\s+var(?:iable)?s?`),
		regexp.MustCompile(`(?i)required.*(?:env|environment)`),
		regexp.MustCompile(`(?i)\.env\s+(?:file|setup|config)`),
		regexp.MustCompile(`export\s+[A-Z_]+=`),
		regexp.MustCompile(`(?i)\bENV:\b`),
	}
)

// EnvVarsDocumented flags environment variables that are used without
// being documented.
type EnvVarsDocumented struct{}

// ID implements rule.Rule.
func (r *EnvVarsDocumented) ID() string { return "remote-ready/env-vars-documented" }

// Category implements rule.Rule.
func (r *EnvVarsDocumented) Category() lint.Category { return lint.RemoteReady }

// Severity implements rule.Rule.
func (r *EnvVarsDocumented) Severity() lint.Severity { return lint.Warning }

// Description implements rule.Rule.
func (r *EnvVarsDocumented) Description() string {
	return "Required environment variables should be documented"
}

// Check implements rule.Rule.
func (r *EnvVarsDocumented) Check(docs []*lint.Document) []lint.Diagnostic {
	if lint.MainDocument(docs) == nil && lint.FindDocument(docs, "TOOLS.md") == nil {
		return nil
	}
	all := lint.JoinContent(docs, notAuxiliary)
	if !anyMatch(envUsageRes, all) || anyMatch(envDocRes, all) {
		return nil
	}
	return []lint.Diagnostic{rule.Diag(r, target(docs), 0,
		"Environment variables are used but not documented. Remote agents may fail if required env vars are missing.",
		"Add an 'Environment Variables' section listing all required env vars with descriptions and setup instructions.")}
}

var modelConfigRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)default[_-]?model\s*[:=]`),
	regexp.MustCompile(`(?i)model\s*[:=]\s*["']?(?:anthropic|openai|google|xai|gpt|claude|gemini|grok)`),
	regexp.MustCompile(`(?i)\bmodel\s*=\s*[a-z]+/[a-z-]+`),
	regexp.MustCompile(`(?i)claude-(?:opus|sonnet|haiku)`),
	regexp.MustCompile(`(?i)gpt-4`),
	regexp.MustCompile(`(?i)Runtime.*model=`),
}

// ModelSettingsSpecified asks for a pinned model for reproducible runs.
type ModelSettingsSpecified struct{}

// ID implements rule.Rule.
func (r *ModelSettingsSpecified) ID() string { return "remote-ready/model-settings-specified" }

// Category implements rule.Rule.
func (r *ModelSettingsSpecified) Category() lint.Category { return lint.RemoteReady }

// Severity implements rule.Rule.
func (r *ModelSettingsSpecified) Severity() lint.Severity { return lint.Info }

// Description implements rule.Rule.
func (r *ModelSettingsSpecified) Description() string {
	return "Model settings should be explicitly configured for reproducible remote execution"
}

// Check implements rule.Rule.
func (r *ModelSettingsSpecified) Check(docs []*lint.Document) []lint.Diagnostic {
	if lint.MainDocument(docs) == nil && lint.FindDocument(docs, "TOOLS.md") == nil {
		return nil
	}
	if anyMatch(modelConfigRes, lint.JoinContent(docs, notAuxiliary)) {
		return nil
	}
	return []lint.Diagnostic{rule.Diag(r, target(docs), 0,
		"No model settings found. Specifying the model ensures consistent behavior across remote runs.",
		"Document the default model in TOOLS.md. Example: 'default_model: anthropic/claude-opus-4-5'")}
}
