package service

import (
	"os"
	"path/filepath"

	"github.com/zemdomu/zemdomu/domain"
	"github.com/zemdomu/zemdomu/internal/config"
)

// ConfigurationLoaderImpl implements the ConfigurationLoader interface
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*domain.LintRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}

	return c.convertToLintRequest(cfg), nil
}

// LoadDefaultConfig loads the default configuration, first checking for a
// discoverable config file.
func (c *ConfigurationLoaderImpl) LoadDefaultConfig() *domain.LintRequest {
	cfg, err := config.LoadConfigWithTarget("", "")
	if err == nil {
		return c.convertToLintRequest(cfg)
	}

	// Fall back to hardcoded default configuration
	return c.convertToLintRequest(config.DefaultConfig())
}

// FindDefaultConfigFile searches for a default configuration file in the
// working directory and its ancestors.
func (c *ConfigurationLoaderImpl) FindDefaultConfigFile() string {
	configFiles := []string{
		"zemdomu.config.json",
		".zemdomurc.json",
		"zemdomu.yaml",
		"zemdomu.yml",
		".zemdomu.yml",
		"zemdomu.json",
	}

	for _, file := range configFiles {
		if _, err := os.Stat(file); err == nil {
			return file
		}
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, file := range configFiles {
			configPath := filepath.Join(currentDir, file)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

// MergeConfig merges CLI flags with configuration file
func (c *ConfigurationLoaderImpl) MergeConfig(base *domain.LintRequest, override *domain.LintRequest) *domain.LintRequest {
	merged := *base

	// Paths always come from command arguments
	if len(override.Paths) > 0 {
		merged.Paths = override.Paths
	}

	if override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}
	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}
	if override.ShowSummary {
		merged.ShowSummary = override.ShowSummary
	}

	if override.Severities != nil {
		if merged.Severities == nil {
			merged.Severities = override.Severities
		} else {
			for id, severity := range override.Severities {
				merged.Severities[id] = severity
			}
		}
	}

	if override.CrossComponentAnalysis {
		merged.CrossComponentAnalysis = true
	}
	if override.CrossComponentDepth > 0 {
		merged.CrossComponentDepth = override.CrossComponentDepth
	}
	if override.RootDir != "" {
		merged.RootDir = override.RootDir
	}
	if len(override.Aliases) > 0 {
		merged.Aliases = override.Aliases
	}
	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}

	if len(override.IncludePatterns) > 0 {
		merged.IncludePatterns = override.IncludePatterns
	}
	if len(override.ExcludePatterns) > 0 {
		merged.ExcludePatterns = override.ExcludePatterns
	}
	if override.Recursive {
		merged.Recursive = override.Recursive
	}
	if override.RespectGitignore {
		merged.RespectGitignore = override.RespectGitignore
	}
	if override.ShowProgress {
		merged.ShowProgress = override.ShowProgress
	}

	return &merged
}

// convertToLintRequest maps the file configuration onto a lint request.
func (c *ConfigurationLoaderImpl) convertToLintRequest(cfg *config.Config) *domain.LintRequest {
	return &domain.LintRequest{
		OutputFormat:           domain.OutputFormat(cfg.Output.Format),
		ShowSummary:            cfg.Output.ShowSummary,
		Severities:             cfg.Severities(),
		CrossComponentAnalysis: cfg.CrossComponent.Enabled,
		CrossComponentDepth:    cfg.CrossComponent.MaxDepth,
		RootDir:                cfg.Resolution.RootDir,
		Aliases:                cfg.Resolution.Aliases,
		Recursive:              cfg.Analysis.Recursive,
		IncludePatterns:        cfg.Analysis.IncludePatterns,
		ExcludePatterns:        cfg.Analysis.ExcludePatterns,
		RespectGitignore:       cfg.Analysis.RespectGitignore,
	}
}
