package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zemdomu/zemdomu/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if len(cfg.Rules) != len(domain.AllRules()) {
		t.Errorf("default rules cover %d of %d rules", len(cfg.Rules), len(domain.AllRules()))
	}
	if !cfg.CrossComponent.Enabled || cfg.CrossComponent.MaxDepth != DefaultCrossComponentDepth {
		t.Errorf("unexpected cross-component defaults: %+v", cfg.CrossComponent)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("default format = %q", cfg.Output.Format)
	}
}

func TestSeverities_IgnoresUnknownAndInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules["singleH1"] = "error"
	cfg.Rules["requireAltText"] = "off"
	cfg.Rules["noSuchRule"] = "error"
	cfg.Rules["requireLinkText"] = "loud"

	severities := cfg.Severities()
	if severities[domain.RuleSingleH1] != domain.SeverityError {
		t.Error("valid override ignored")
	}
	if severities[domain.RuleRequireAltText] != domain.SeverityOff {
		t.Error("off override ignored")
	}
	if _, ok := severities[domain.RuleID("noSuchRule")]; ok {
		t.Error("unknown rule name must not leak into severities")
	}
	if severities[domain.RuleRequireLinkText] != domain.SeverityWarning {
		t.Error("invalid severity value must fall back to the default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
		{"negative depth", func(c *Config) { c.CrossComponent.MaxDepth = -1 }, "max_depth"},
		{"no includes", func(c *Config) { c.Analysis.IncludePatterns = nil }, "include_patterns"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %v should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zemdomu.yaml")
	content := `
rules:
  singleH1: error
  requireAltText: "off"
cross_component:
  enabled: false
  max_depth: 3
output:
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Rules["singleH1"] != "error" {
		t.Errorf("rules not loaded: %v", cfg.Rules["singleH1"])
	}
	if cfg.CrossComponent.Enabled || cfg.CrossComponent.MaxDepth != 3 {
		t.Errorf("cross-component not loaded: %+v", cfg.CrossComponent)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("format = %q", cfg.Output.Format)
	}

	severities := cfg.Severities()
	if severities[domain.RuleSingleH1] != domain.SeverityError ||
		severities[domain.RuleRequireAltText] != domain.SeverityOff {
		t.Errorf("severities not derived from file: %v", severities)
	}
}

func TestLoadConfig_RuleKeysSurviveLowercasing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zemdomu.yaml")
	content := `
rules:
  requireAltText: "off"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	// Viper lowercases map keys; the file's entry must override the
	// seeded default under the canonical id, with no duplicate left.
	if cfg.Rules["requireAltText"] != "off" {
		t.Errorf("file override lost: %v", cfg.Rules["requireAltText"])
	}
	if _, ok := cfg.Rules["requirealttext"]; ok {
		t.Error("lowercased duplicate key must not survive loading")
	}
	if cfg.Severities()[domain.RuleRequireAltText] != domain.SeverityOff {
		t.Error("off override must reach the severity map")
	}
}

func TestLoadConfig_MissingFileFails(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicit missing config path must fail")
	}
}

func TestLoadConfigWithTarget_DiscoversUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "pages")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	configPath := filepath.Join(root, ".zemdomurc.json")
	if err := os.WriteFile(configPath, []byte(`{"rules": {"singleH1": "error"}}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfigWithTarget("", filepath.Join(nested, "Home.tsx"))
	if err != nil {
		t.Fatalf("LoadConfigWithTarget: %v", err)
	}
	if cfg.Rules["singleH1"] != "error" {
		t.Error("config in ancestor directory not discovered")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zemdomu.yaml")

	original := DefaultConfig()
	original.Rules["singleH1"] = "error"
	original.CrossComponent.MaxDepth = 5
	if err := SaveConfig(original, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig after save: %v", err)
	}
	if loaded.Rules["singleH1"] != "error" || loaded.CrossComponent.MaxDepth != 5 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestTemplates(t *testing.T) {
	for _, projectType := range []ProjectType{ProjectTypeHTML, ProjectTypeReact, ProjectTypeMixed} {
		for _, strictness := range []Strictness{StrictnessRelaxed, StrictnessStandard, StrictnessStrict} {
			tpl := GetFullConfigTemplate(projectType, strictness)
			if !strings.Contains(tpl, `"rules"`) || !strings.Contains(tpl, `"crossComponent"`) {
				t.Errorf("%s/%s template missing sections", projectType, strictness)
			}
		}
	}

	strict := GetFullConfigTemplate(ProjectTypeReact, StrictnessStrict)
	if !strings.Contains(strict, `"requireAltText": "error"`) {
		t.Error("strict preset must promote requireAltText to error")
	}
	relaxed := GetFullConfigTemplate(ProjectTypeHTML, StrictnessRelaxed)
	if !strings.Contains(relaxed, `"requireSectionHeading": "off"`) {
		t.Error("relaxed preset must turn requireSectionHeading off")
	}

	if !strings.Contains(GetMinimalConfigTemplate(), `"rules"`) {
		t.Error("minimal template missing rules section")
	}
}
