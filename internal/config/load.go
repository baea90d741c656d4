package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jeduden/agentlint/internal/rule"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file.
const FileName = ".agentlint.yml"

// DefaultEndpoint receives uploaded reports.
const DefaultEndpoint = "https://agentlinter.com/api/reports"

// Load reads and parses a config file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if r := cfg.Upload.MaxRetries; r != nil && *r < 0 {
		return fmt.Errorf("upload.max-retries must not be negative, got %d", *r)
	}
	if cfg.Upload.Timeout < 0 {
		return fmt.Errorf("upload.timeout must not be negative, got %v", cfg.Upload.Timeout)
	}
	return nil
}

// Discover walks up the directory tree from startDir looking for a
// .agentlint.yml config file. It stops searching when it encounters a
// .git directory (the repository root) or reaches the filesystem root.
// Returns the path to the config file, or "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Defaults returns a Config with all registered rules enabled and the
// default upload settings.
func Defaults() *Config {
	all := rule.All()
	rules := make(map[string]RuleCfg, len(all))
	for _, r := range all {
		rules[r.ID()] = RuleCfg{Enabled: true}
	}
	retries := 2
	return &Config{
		Rules: rules,
		Upload: UploadCfg{
			Endpoint:   DefaultEndpoint,
			Timeout:    15 * time.Second,
			MaxRetries: &retries,
		},
	}
}
