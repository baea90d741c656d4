package config

import (
	"github.com/gobwas/glob"
)

// Merge merges a loaded config on top of defaults. The loaded config's rules
// override the defaults; any rule not mentioned in loaded keeps its default
// value. Ignore and Overrides come from the loaded config only; scalar
// settings from loaded win when set.
func Merge(defaults, loaded *Config) *Config {
	rules := make(map[string]RuleCfg, len(defaults.Rules))
	for k, v := range defaults.Rules {
		rules[k] = v
	}

	merged := &Config{
		Rules:    rules,
		Parallel: defaults.Parallel,
		MinScore: defaults.MinScore,
		Upload:   defaults.Upload,
	}
	if loaded == nil {
		return merged
	}

	for k, v := range loaded.Rules {
		rules[k] = v
	}
	merged.Ignore = loaded.Ignore
	merged.Overrides = loaded.Overrides
	if loaded.Parallel != 0 {
		merged.Parallel = loaded.Parallel
	}
	if loaded.MinScore != 0 {
		merged.MinScore = loaded.MinScore
	}
	if loaded.Upload.Endpoint != "" {
		merged.Upload.Endpoint = loaded.Upload.Endpoint
	}
	if loaded.Upload.Timeout != 0 {
		merged.Upload.Timeout = loaded.Upload.Timeout
	}
	if loaded.Upload.MaxRetries != nil {
		retries := *loaded.Upload.MaxRetries
		merged.Upload.MaxRetries = &retries
	}
	return merged
}

// Effective returns the rule configuration that applies to diagnostics
// reported on file. It starts with the top-level rules and then applies
// each override whose file patterns match, in order. Later overrides
// take precedence.
func Effective(cfg *Config, file string) map[string]RuleCfg {
	result := make(map[string]RuleCfg, len(cfg.Rules))
	for k, v := range cfg.Rules {
		result[k] = v
	}

	for _, o := range cfg.Overrides {
		if MatchesAny(o.Files, file) {
			for k, v := range o.Rules {
				result[k] = v
			}
		}
	}

	return result
}

// MatchesAny returns true if name matches any of the given glob patterns.
// Invalid patterns are skipped.
func MatchesAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			continue
		}
		if g.Match(name) {
			return true
		}
	}
	return false
}
