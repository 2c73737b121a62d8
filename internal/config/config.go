// Package config loads and validates the linter configuration: per-rule
// severities, cross-component analysis options, import resolution settings,
// and file collection patterns.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/zemdomu/zemdomu/domain"
	"github.com/zemdomu/zemdomu/internal/constants"
)

// DefaultCrossComponentDepth bounds cross-component traversal when the
// configuration does not set one.
const DefaultCrossComponentDepth = 10

// Config represents the main configuration structure
type Config struct {
	// Rules maps rule ids to severities: "error", "warning", or "off".
	// Unknown rule names and invalid severities are ignored, never fatal.
	Rules map[string]string `json:"rules" mapstructure:"rules" yaml:"rules"`

	// CrossComponent holds cross-component analysis configuration
	CrossComponent CrossComponentConfig `json:"crossComponent" mapstructure:"cross_component" yaml:"cross_component"`

	// Resolution holds import path resolution configuration
	Resolution ResolutionConfig `json:"resolution" mapstructure:"resolution" yaml:"resolution"`

	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Analysis holds file collection configuration
	Analysis AnalysisConfig `json:"analysis,omitempty" mapstructure:"analysis" yaml:"analysis"`
}

// CrossComponentConfig holds configuration for cross-component analysis
type CrossComponentConfig struct {
	// Enabled controls whether cross-component analysis is performed
	Enabled bool `json:"enabled" mapstructure:"enabled" yaml:"enabled"`

	// MaxDepth bounds graph traversal on pathological component trees
	MaxDepth int `json:"maxDepth" mapstructure:"max_depth" yaml:"max_depth"`
}

// ResolutionConfig holds configuration for import path resolution
type ResolutionConfig struct {
	// RootDir anchors alias expansion and the workspace-wide search.
	// Empty means the current working directory.
	RootDir string `json:"rootDir" mapstructure:"root_dir" yaml:"root_dir"`

	// Aliases maps import prefixes to directories under the root,
	// tsconfig "paths" style (e.g. "@/" -> "src/")
	Aliases map[string]string `json:"aliases" mapstructure:"aliases" yaml:"aliases"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// ShowSummary controls whether aggregate statistics are printed
	ShowSummary bool `json:"showSummary" mapstructure:"show_summary" yaml:"show_summary"`
}

// AnalysisConfig holds configuration for file collection
type AnalysisConfig struct {
	// IncludePatterns specifies file patterns to include
	IncludePatterns []string `json:"include_patterns" mapstructure:"include_patterns" yaml:"include_patterns"`

	// ExcludePatterns specifies file patterns to exclude
	ExcludePatterns []string `json:"exclude_patterns" mapstructure:"exclude_patterns" yaml:"exclude_patterns"`

	// Recursive controls whether directories are walked recursively
	Recursive bool `json:"recursive" mapstructure:"recursive" yaml:"recursive"`

	// RespectGitignore skips files matched by .gitignore
	RespectGitignore bool `json:"respect_gitignore" mapstructure:"respect_gitignore" yaml:"respect_gitignore"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	rules := make(map[string]string)
	for _, info := range domain.AllRules() {
		rules[string(info.ID)] = string(info.DefaultSeverity)
	}

	return &Config{
		Rules: rules,
		CrossComponent: CrossComponentConfig{
			Enabled:  true,
			MaxDepth: DefaultCrossComponentDepth,
		},
		Resolution: ResolutionConfig{
			Aliases: map[string]string{},
		},
		Output: OutputConfig{
			Format:      "text",
			ShowSummary: true,
		},
		Analysis: AnalysisConfig{
			IncludePatterns: []string{
				"**/*.html", "**/*.htm",
				"**/*.jsx", "**/*.tsx", "**/*.js", "**/*.ts",
			},
			ExcludePatterns: []string{
				"node_modules",
				"dist",
				"build",
				"out",
				".next",
				".cache",
				"coverage",
				".git",
				"*.min.js",
				"*.bundle.js",
			},
			Recursive:        true,
			RespectGitignore: true,
		},
	}
}

// Severities converts the configured rule map to the domain representation,
// starting from the defaults. Unknown rule names and invalid severity
// strings are skipped so a stale configuration degrades to defaults.
func (c *Config) Severities() map[domain.RuleID]domain.Severity {
	severities := domain.DefaultSeverities()
	for name, value := range c.Rules {
		id := domain.RuleID(name)
		if !domain.IsValidRule(id) {
			continue
		}
		switch domain.Severity(value) {
		case domain.SeverityError, domain.SeverityWarning, domain.SeverityOff:
			severities[id] = domain.Severity(value)
		}
	}
	return severities
}

// LoadConfig loads configuration from file or returns default config
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget loads configuration with target path context:
// when no explicit path is given, config files are discovered starting
// from the target and walking upward.
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	return loadConfigFromFile(configPath)
}

// loadConfigFromFile reads and parses a configuration file
func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// A new viper instance per load avoids race conditions.
	v := viper.New()
	config := DefaultConfig()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Rules = canonicalRules(config.Rules)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// canonicalRules restores canonical rule id casing. Viper lowercases map
// keys, so a file's "requireAltText" entry arrives as "requirealttext"
// alongside the seeded default; the file's entry must win.
func canonicalRules(rules map[string]string) map[string]string {
	byLower := make(map[string]string)
	for _, info := range domain.AllRules() {
		byLower[strings.ToLower(string(info.ID))] = string(info.ID)
	}

	out := make(map[string]string, len(rules))
	// Seeded canonical-case entries first, then the lowercased file
	// entries on top of them. Unknown names are kept for Severities to
	// skip, matching the silent degradation contract.
	for name, value := range rules {
		if byLower[strings.ToLower(name)] == name {
			out[name] = value
		}
	}
	for name, value := range rules {
		id, ok := byLower[strings.ToLower(name)]
		switch {
		case !ok:
			out[name] = value
		case name != id:
			out[id] = value
		}
	}
	return out
}

// searchConfigInDirectory searches for configuration files in a specific directory
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for default configuration files in common
// locations. targetPath is the path being linted.
func findDefaultConfig(targetPath string) string {
	candidates := []string{
		"zemdomu.yaml",
		"zemdomu.yml",
		".zemdomu.yml",
		"zemdomu.json",
		".zemdomurc.json",
		"zemdomu.config.json",
	}

	// Search from the target directory upward.
	if targetPath != "" {
		absPath, err := filepath.Abs(targetPath)
		if err == nil {
			info, err := os.Stat(absPath)
			if err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}

			volume := filepath.VolumeName(absPath)
			for dir := absPath; ; dir = filepath.Dir(dir) {
				if config := searchConfigInDirectory(dir, candidates); config != "" {
					return config
				}

				parent := filepath.Dir(dir)
				if parent == dir ||
					dir == volume ||
					(volume != "" && dir == volume+string(filepath.Separator)) {
					break
				}
			}
		}
	}

	// Fallback to current directory
	if config := searchConfigInDirectory(".", candidates); config != "" {
		return config
	}

	// Check XDG config directory (Linux/Mac standard)
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, "zemdomu"), candidates); config != "" {
			return config
		}
	}

	// Check ~/.config/zemdomu/ (XDG default)
	if home, err := os.UserHomeDir(); err == nil {
		configDir := filepath.Join(home, ".config", "zemdomu")
		if config := searchConfigInDirectory(configDir, candidates); config != "" {
			return config
		}

		if config := searchConfigInDirectory(home, candidates); config != "" {
			return config
		}
	}

	// Check the config environment variable as fallback
	if envConfig := os.Getenv(constants.ConfigEnvVar); envConfig != "" {
		if _, err := os.Stat(envConfig); err == nil {
			return envConfig
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	validFormats := map[string]bool{
		"text": true,
		"json": true,
		"yaml": true,
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output.format '%s', must be one of: text, json, yaml", c.Output.Format)
	}

	if c.CrossComponent.MaxDepth < 0 {
		return fmt.Errorf("cross_component.max_depth must be >= 0, got %d", c.CrossComponent.MaxDepth)
	}

	if len(c.Analysis.IncludePatterns) == 0 {
		return fmt.Errorf("analysis.include_patterns cannot be empty")
	}

	return nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("rules", config.Rules)
	v.Set("cross_component", config.CrossComponent)
	v.Set("resolution", config.Resolution)
	v.Set("output", config.Output)
	v.Set("analysis", config.Analysis)

	return v.WriteConfig()
}
