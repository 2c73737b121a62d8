package config

// ProjectType represents the kind of markup project being linted
type ProjectType string

const (
	ProjectTypeHTML  ProjectType = "html"
	ProjectTypeReact ProjectType = "react"
	ProjectTypeMixed ProjectType = "mixed"
)

// Strictness represents the lint strictness level
type Strictness string

const (
	StrictnessRelaxed  Strictness = "relaxed"
	StrictnessStandard Strictness = "standard"
	StrictnessStrict   Strictness = "strict"
)

// ProjectPreset holds file collection presets for different project types
type ProjectPreset struct {
	IncludePatterns []string
	ExcludePatterns []string
	CrossComponent  bool
}

// GetProjectPresets returns presets for different project types
func GetProjectPresets() map[ProjectType]ProjectPreset {
	return map[ProjectType]ProjectPreset{
		ProjectTypeHTML: {
			IncludePatterns: []string{
				"**/*.html",
				"**/*.htm",
			},
			ExcludePatterns: []string{
				"**/node_modules/**",
				"**/dist/**",
				"**/build/**",
			},
			CrossComponent: false,
		},
		ProjectTypeReact: {
			IncludePatterns: []string{
				"**/*.jsx",
				"**/*.tsx",
				"**/*.js",
				"**/*.ts",
			},
			ExcludePatterns: []string{
				"**/node_modules/**",
				"**/dist/**",
				"**/build/**",
				"**/.next/**",
				"**/coverage/**",
				"**/*.min.js",
				"**/*.bundle.js",
			},
			CrossComponent: true,
		},
		ProjectTypeMixed: {
			IncludePatterns: []string{
				"**/*.html",
				"**/*.htm",
				"**/*.jsx",
				"**/*.tsx",
				"**/*.js",
				"**/*.ts",
			},
			ExcludePatterns: []string{
				"**/node_modules/**",
				"**/dist/**",
				"**/build/**",
				"**/coverage/**",
				"**/*.min.js",
				"**/*.bundle.js",
			},
			CrossComponent: true,
		},
	}
}

// GetStrictnessPresets returns rule severities for each strictness level.
// Relaxed turns the noisier structural rules off, standard warns on
// everything, strict promotes the unambiguous checks to errors.
func GetStrictnessPresets() map[Strictness]map[string]string {
	return map[Strictness]map[string]string{
		StrictnessRelaxed: {
			"requireSectionHeading":  "off",
			"preventEmptyInlineTags": "off",
			"requireNavLinks":        "off",
			"requireTableCaption":    "off",
		},
		StrictnessStandard: {},
		StrictnessStrict: {
			"requireAltText":       "error",
			"requireIframeTitle":   "error",
			"requireHtmlLang":      "error",
			"requireImageInputAlt": "error",
			"uniqueIds":            "error",
			"singleH1":             "error",
		},
	}
}

// GetFullConfigTemplate returns the documented config template as JSONC
func GetFullConfigTemplate(projectType ProjectType, strictness Strictness) string {
	preset := GetProjectPresets()[projectType]
	overrides := GetStrictnessPresets()[strictness]

	includePatterns := formatJSONArray(preset.IncludePatterns)
	excludePatterns := formatJSONArray(preset.ExcludePatterns)
	crossComponent := "false"
	if preset.CrossComponent {
		crossComponent = "true"
	}

	return `{
  // zemdomu Configuration
  // Documentation: https://github.com/zemdomu/zemdomu

  // ============================================================================
  // RULES
  // ============================================================================
  // Each rule is "error", "warning", or "off". Rules set to "off" never run.
  "rules": {
    "requireSectionHeading": ` + quotedSeverity(overrides, "requireSectionHeading") + `,
    "enforceHeadingOrder": ` + quotedSeverity(overrides, "enforceHeadingOrder") + `,
    "singleH1": ` + quotedSeverity(overrides, "singleH1") + `,
    "requireAltText": ` + quotedSeverity(overrides, "requireAltText") + `,
    "requireLabelForFormControls": ` + quotedSeverity(overrides, "requireLabelForFormControls") + `,
    "enforceListNesting": ` + quotedSeverity(overrides, "enforceListNesting") + `,
    "requireLinkText": ` + quotedSeverity(overrides, "requireLinkText") + `,
    "requireTableCaption": ` + quotedSeverity(overrides, "requireTableCaption") + `,
    "preventEmptyInlineTags": ` + quotedSeverity(overrides, "preventEmptyInlineTags") + `,
    "requireHrefOnAnchors": ` + quotedSeverity(overrides, "requireHrefOnAnchors") + `,
    "requireButtonText": ` + quotedSeverity(overrides, "requireButtonText") + `,
    "requireIframeTitle": ` + quotedSeverity(overrides, "requireIframeTitle") + `,
    "requireHtmlLang": ` + quotedSeverity(overrides, "requireHtmlLang") + `,
    "requireImageInputAlt": ` + quotedSeverity(overrides, "requireImageInputAlt") + `,
    "requireNavLinks": ` + quotedSeverity(overrides, "requireNavLinks") + `,
    "uniqueIds": ` + quotedSeverity(overrides, "uniqueIds") + `
  },

  // ============================================================================
  // CROSS-COMPONENT ANALYSIS
  // ============================================================================
  // Re-checks heading order and the single-<h1> rule as if components were
  // inlined at their usage sites
  "crossComponent": {
    "enabled": ` + crossComponent + `,

    // Maximum component nesting depth to traverse
    "maxDepth": 10
  },

  // ============================================================================
  // IMPORT RESOLUTION
  // ============================================================================
  "resolution": {
    // Root directory for alias expansion and workspace search ("" = cwd)
    "rootDir": "",

    // Path aliases, tsconfig "paths" style
    "aliases": {
      // "@/": "src/"
    }
  },

  // ============================================================================
  // OUTPUT SETTINGS
  // ============================================================================
  "output": {
    // Output format: "text", "json", "yaml"
    "format": "text",

    // Print aggregate statistics after results
    "showSummary": true
  },

  // ============================================================================
  // ANALYSIS SCOPE
  // ============================================================================
  // Controls which files are linted
  "analysis": {
    // File patterns to include (glob patterns)
    "include": ` + includePatterns + `,

    // File patterns to exclude (glob patterns)
    "exclude": ` + excludePatterns + `,

    // Skip files matched by .gitignore
    "respectGitignore": true
  }
}
`
}

// GetMinimalConfigTemplate returns a minimal config template
func GetMinimalConfigTemplate() string {
	return `{
  // zemdomu Configuration (minimal)
  // See full options: https://github.com/zemdomu/zemdomu

  "rules": {
    "requireAltText": "warning",
    "singleH1": "warning",
    "enforceHeadingOrder": "warning"
  },

  "crossComponent": {
    "enabled": true
  },

  "analysis": {
    "include": ["**/*.html", "**/*.jsx", "**/*.tsx"],
    "exclude": ["**/node_modules/**", "**/dist/**"]
  }
}
`
}

// quotedSeverity returns the quoted severity for a rule, applying any
// strictness override on top of the default.
func quotedSeverity(overrides map[string]string, rule string) string {
	if s, ok := overrides[rule]; ok {
		return `"` + s + `"`
	}
	return `"warning"`
}

// formatJSONArray formats a string slice as a JSON array with proper indentation
func formatJSONArray(items []string) string {
	if len(items) == 0 {
		return "[]"
	}

	result := "[\n"
	for i, item := range items {
		result += `      "` + item + `"`
		if i < len(items)-1 {
			result += ","
		}
		result += "\n"
	}
	result += "    ]"
	return result
}
