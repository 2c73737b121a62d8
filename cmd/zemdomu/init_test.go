package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zemdomu/zemdomu/internal/config"
)

func TestInitCommand_BasicConfigCreation(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "zemdomu.config.json")

	cmd := initCmd()
	cmd.SetArgs([]string{"--config", configPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init command failed: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	contentStr := string(content)
	expectedSections := []string{
		"rules",
		"crossComponent",
		"resolution",
		"output",
		"analysis",
		"singleH1",
		"enforceHeadingOrder",
	}

	for _, section := range expectedSections {
		if !strings.Contains(contentStr, section) {
			t.Errorf("Config file missing expected section: %s", section)
		}
	}
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "zemdomu.config.json")

	existingContent := []byte(`{"existing": true}`)
	if err := os.WriteFile(configPath, existingContent, 0644); err != nil {
		t.Fatalf("Failed to create existing file: %v", err)
	}

	// Without force the existing file must survive.
	cmd := initCmd()
	cmd.SetArgs([]string{"--config", configPath})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected error when file exists without --force")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Expected 'already exists' error, got: %v", err)
	}

	cmd = initCmd()
	cmd.SetArgs([]string{"--config", configPath, "--force"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}
	if !strings.Contains(string(content), "rules") {
		t.Error("Config file was not overwritten with new content")
	}
}

func TestInitCommand_MinimalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "zemdomu.config.json")

	cmd := initCmd()
	cmd.SetArgs([]string{"--config", configPath, "--minimal"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init --minimal failed: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	contentStr := string(content)
	if !strings.Contains(contentStr, "rules") {
		t.Error("Minimal config missing rules section")
	}
	if !strings.Contains(contentStr, "minimal") {
		t.Error("Minimal config should indicate it's minimal")
	}
}

func TestInitCommand_InvalidDirectory(t *testing.T) {
	cmd := initCmd()
	cmd.SetArgs([]string{"--config", "/nonexistent/directory/zemdomu.config.json"})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected error when directory doesn't exist")
	}
	if !strings.Contains(err.Error(), "directory does not exist") {
		t.Errorf("Expected 'directory does not exist' error, got: %v", err)
	}
}

func TestInitCommand_FullConfigSize(t *testing.T) {
	tmpDir := t.TempDir()

	fullPath := filepath.Join(tmpDir, "full.json")
	cmd := initCmd()
	cmd.SetArgs([]string{"--config", fullPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	fullContent, _ := os.ReadFile(fullPath)

	minimalPath := filepath.Join(tmpDir, "minimal.json")
	cmd = initCmd()
	cmd.SetArgs([]string{"--config", minimalPath, "--minimal"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init --minimal failed: %v", err)
	}
	minimalContent, _ := os.ReadFile(minimalPath)

	if len(fullContent) <= len(minimalContent) {
		t.Error("Full config should be larger than minimal config")
	}
}

func TestGetFullConfigTemplate(t *testing.T) {
	tests := []struct {
		projectType config.ProjectType
		strictness  config.Strictness
		want        []string
	}{
		{
			projectType: config.ProjectTypeMixed,
			strictness:  config.StrictnessStandard,
			want:        []string{`"singleH1": "warning"`, `"requireAltText": "warning"`, `"enabled": true`},
		},
		{
			projectType: config.ProjectTypeReact,
			strictness:  config.StrictnessStrict,
			want:        []string{`"singleH1": "error"`, `"requireAltText": "error"`, `"**/.next/**"`},
		},
		{
			projectType: config.ProjectTypeHTML,
			strictness:  config.StrictnessRelaxed,
			want:        []string{`"requireSectionHeading": "off"`, `"requireNavLinks": "off"`, `"enabled": false`},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.projectType)+"_"+string(tt.strictness), func(t *testing.T) {
			template := config.GetFullConfigTemplate(tt.projectType, tt.strictness)
			for _, want := range tt.want {
				if !strings.Contains(template, want) {
					t.Errorf("Template missing expected content: %s", want)
				}
			}
		})
	}
}

func TestGetMinimalConfigTemplate(t *testing.T) {
	template := config.GetMinimalConfigTemplate()

	requiredSections := []string{
		"rules",
		"crossComponent",
		"analysis",
		"include",
		"exclude",
	}
	for _, section := range requiredSections {
		if !strings.Contains(template, section) {
			t.Errorf("Minimal template missing required section: %s", section)
		}
	}

	fullTemplate := config.GetFullConfigTemplate(config.ProjectTypeMixed, config.StrictnessStandard)
	if len(template) >= len(fullTemplate) {
		t.Error("Minimal template should be smaller than full template")
	}
}

func TestProjectPresets(t *testing.T) {
	presets := config.GetProjectPresets()

	projectTypes := []config.ProjectType{
		config.ProjectTypeHTML,
		config.ProjectTypeReact,
		config.ProjectTypeMixed,
	}

	for _, pt := range projectTypes {
		preset, ok := presets[pt]
		if !ok {
			t.Errorf("Missing preset for project type: %s", pt)
			continue
		}

		if len(preset.IncludePatterns) == 0 {
			t.Errorf("Project type %s has no include patterns", pt)
		}

		hasNodeModules := false
		for _, pattern := range preset.ExcludePatterns {
			if strings.Contains(pattern, "node_modules") {
				hasNodeModules = true
				break
			}
		}
		if !hasNodeModules {
			t.Errorf("Project type %s should exclude node_modules", pt)
		}
	}

	// Static HTML has no component graph to analyze.
	if presets[config.ProjectTypeHTML].CrossComponent {
		t.Error("HTML preset should not enable cross-component analysis")
	}
	if !presets[config.ProjectTypeReact].CrossComponent {
		t.Error("React preset should enable cross-component analysis")
	}
}

func TestStrictnessPresets(t *testing.T) {
	presets := config.GetStrictnessPresets()

	for _, s := range []config.Strictness{config.StrictnessRelaxed, config.StrictnessStandard, config.StrictnessStrict} {
		if _, ok := presets[s]; !ok {
			t.Errorf("Missing preset for strictness: %s", s)
		}
	}

	for rule, severity := range presets[config.StrictnessRelaxed] {
		if severity != "off" {
			t.Errorf("Relaxed preset should only turn rules off, got %s=%s", rule, severity)
		}
	}
	for rule, severity := range presets[config.StrictnessStrict] {
		if severity != "error" {
			t.Errorf("Strict preset should only promote rules to error, got %s=%s", rule, severity)
		}
	}
	if len(presets[config.StrictnessStandard]) != 0 {
		t.Error("Standard preset should keep every default severity")
	}
}

func TestConfigTemplateHasComments(t *testing.T) {
	template := config.GetFullConfigTemplate(config.ProjectTypeMixed, config.StrictnessStandard)

	if !strings.Contains(template, "//") {
		t.Error("Full template should contain JSONC comments")
	}

	expectedComments := []string{
		"RULES",
		"CROSS-COMPONENT ANALYSIS",
		"IMPORT RESOLUTION",
		"OUTPUT SETTINGS",
		"ANALYSIS SCOPE",
		"github.com/zemdomu/zemdomu",
	}
	for _, comment := range expectedComments {
		if !strings.Contains(template, comment) {
			t.Errorf("Template missing expected comment/section: %s", comment)
		}
	}
}

func TestInitCmd_FlagsExist(t *testing.T) {
	cmd := initCmd()

	expectedFlags := []string{"config", "force", "minimal", "interactive"}
	for _, flagName := range expectedFlags {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("Missing expected flag: --%s", flagName)
		}
	}

	shortFlags := map[string]string{
		"c": "config",
		"f": "force",
		"i": "interactive",
	}
	for short, long := range shortFlags {
		flag := cmd.Flags().ShorthandLookup(short)
		if flag == nil {
			t.Errorf("Missing short flag -%s for --%s", short, long)
		}
	}
}

func TestInitCmd_DefaultConfigPath(t *testing.T) {
	cmd := initCmd()

	configFlag := cmd.Flags().Lookup("config")
	if configFlag == nil {
		t.Fatal("config flag not found")
	}
	if configFlag.DefValue != "zemdomu.config.json" {
		t.Errorf("Expected default config path to be 'zemdomu.config.json', got '%s'", configFlag.DefValue)
	}
}
