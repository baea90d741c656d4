package config

import (
	"fmt"
	"time"

	"github.com/jeduden/agentlint/internal/lint"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Rules     map[string]RuleCfg `yaml:"rules"`
	Ignore    []string           `yaml:"ignore,omitempty"`
	Overrides []Override         `yaml:"overrides,omitempty"`
	// Parallel is the number of rules evaluated concurrently; values
	// below 2 evaluate sequentially.
	Parallel int       `yaml:"parallel,omitempty"`
	MinScore int       `yaml:"min-score,omitempty"`
	Upload   UploadCfg `yaml:"upload"`
}

// Override disables or re-grades rules for diagnostics reported on files
// matching glob patterns.
type Override struct {
	Files []string           `yaml:"files"`
	Rules map[string]RuleCfg `yaml:"rules"`
}

// UploadCfg configures the report upload client.
type UploadCfg struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
	// MaxRetries is nil when unset so that an explicit 0 survives Merge.
	MaxRetries *int `yaml:"max-retries,omitempty"`
}

// Retries returns the configured retry count, 0 when unset or negative.
func (u UploadCfg) Retries() int {
	if u.MaxRetries == nil {
		return 0
	}
	return max(*u.MaxRetries, 0)
}

// RuleCfg is a YAML union: can be bool (enable/disable) or a mapping
// with a severity override.
type RuleCfg struct {
	Enabled  bool
	Severity lint.Severity
}

// UnmarshalYAML implements custom YAML unmarshalling for RuleCfg.
// It handles three forms:
//   - false -> Enabled=false
//   - true  -> Enabled=true
//   - {severity: info} -> Enabled=true, Severity=info
func (r *RuleCfg) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var b bool
		if err := value.Decode(&b); err == nil {
			r.Enabled = b
			r.Severity = ""
			return nil
		}
	}

	if value.Kind == yaml.MappingNode {
		var m struct {
			Enabled  *bool  `yaml:"enabled"`
			Severity string `yaml:"severity"`
		}
		if err := value.Decode(&m); err != nil {
			return fmt.Errorf("invalid rule config: %w", err)
		}
		sev := lint.Severity(m.Severity)
		switch sev {
		case "", lint.Critical, lint.Warning, lint.Info:
		default:
			return fmt.Errorf("invalid severity %q (want critical, warning or info)", m.Severity)
		}
		r.Enabled = m.Enabled == nil || *m.Enabled
		r.Severity = sev
		return nil
	}

	return fmt.Errorf("rule config must be a bool or a mapping, got %v", value.Kind)
}

// MarshalYAML implements yaml.Marshaler for RuleCfg.
func (r RuleCfg) MarshalYAML() (any, error) {
	if !r.Enabled || r.Severity == "" {
		return r.Enabled, nil
	}
	return map[string]string{"severity": string(r.Severity)}, nil
}

// Enabled reports whether the rule with the given ID runs. Rules missing
// from the config are enabled.
func (c *Config) Enabled(id string) bool {
	if c == nil {
		return true
	}
	rc, ok := c.Rules[id]
	return !ok || rc.Enabled
}
