package domain

import (
	"context"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// FileKind selects the parser backend for a file.
type FileKind string

const (
	// FileKindHTML selects the HTML tokenizer backend.
	FileKindHTML FileKind = "html"

	// FileKindJSX selects the tree-sitter JSX/TSX backend.
	FileKindJSX FileKind = "jsx"

	// FileKindUnknown marks files no backend can lint.
	FileKindUnknown FileKind = "unknown"
)

// KindForPath classifies a file path by extension.
func KindForPath(path string) FileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FileKindHTML
	case ".jsx", ".tsx", ".js", ".ts", ".mjs", ".cjs", ".mts", ".cts":
		return FileKindJSX
	default:
		return FileKindUnknown
	}
}

// RelatedLocation points at a position in another file that a result refers to.
type RelatedLocation struct {
	FilePath string `json:"file_path"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Message  string `json:"message,omitempty"`
}

// LintResult is one diagnostic. Line and Column are 0-based.
type LintResult struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
	Rule    RuleID `json:"rule"`

	// FilePath is set when the result is attributed to a file other than
	// the one being scanned (cross-component remapping).
	FilePath string `json:"file_path,omitempty"`

	// Severity of the result, defaulting per configuration.
	Severity Severity `json:"severity,omitempty"`

	// Related locations in other files, for cross-component results.
	Related []RelatedLocation `json:"related,omitempty"`
}

// SortResults orders results by line, column, then rule id, in place.
// Content is stable across repeated lints of the same input.
func SortResults(results []LintResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.Rule < b.Rule
	})
}

// LintRequest represents a request for linting one or more paths.
type LintRequest struct {
	// Input files or directories to lint
	Paths []string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	ShowSummary  bool

	// Rule severities; rules set to SeverityOff do not run
	Severities map[RuleID]Severity

	// Cross-component analysis
	CrossComponentAnalysis bool
	CrossComponentDepth    int

	// RootDir anchors import path resolution and alias expansion
	RootDir string

	// Aliases maps import path prefixes to directories under RootDir
	// (tsconfig "paths" style, e.g. "@/" -> "src/")
	Aliases map[string]string

	// Configuration
	ConfigPath string

	// File collection options
	Recursive        bool
	IncludePatterns  []string
	ExcludePatterns  []string
	RespectGitignore bool

	// Progress reporting for large batches
	ShowProgress bool
}

// LintSummary provides aggregate statistics for a lint run.
type LintSummary struct {
	TotalFiles            int `json:"total_files"`
	FilesWithIssues       int `json:"files_with_issues"`
	TotalIssues           int `json:"total_issues"`
	ErrorCount            int `json:"error_count"`
	WarningCount          int `json:"warning_count"`
	ParseFailures         int `json:"parse_failures"`
	CrossComponentIssues  int `json:"cross_component_issues"`
	ComponentsInRegistry  int `json:"components_in_registry"`
	EntryPointsDiscovered int `json:"entry_points_discovered"`
}

// LintResponse represents the complete result of a lint run.
type LintResponse struct {
	// Files maps each file path to the results attributed to it.
	Files map[string][]LintResult `json:"files"`

	Summary LintSummary `json:"summary"`

	// Warnings and issues encountered while running (not diagnostics)
	Warnings []string `json:"warnings,omitempty"`
	Errors   []string `json:"errors,omitempty"`

	// Metadata
	GeneratedAt string `json:"generated_at"`
	Version     string `json:"version"`
}

// LintService defines the core linting entry points consumed by hosts.
type LintService interface {
	// LintFile lints one file and returns results keyed by file path; the
	// map may include cross-component results attributed to other files.
	LintFile(ctx context.Context, path string, content []byte) (map[string][]LintResult, error)

	// LintFiles lints a batch of files, then runs cross-component analysis
	// once over the resulting registry state.
	LintFiles(ctx context.Context, paths []string) (map[string][]LintResult, error)
}

// OutputFormatter defines the interface for formatting lint responses.
type OutputFormatter interface {
	Format(response *LintResponse, format OutputFormat) (string, error)
	Write(response *LintResponse, format OutputFormat, writer io.Writer) error
}

// ConfigurationLoader defines the interface for loading configuration.
type ConfigurationLoader interface {
	LoadConfig(path string) (*LintRequest, error)
	LoadDefaultConfig() *LintRequest
	MergeConfig(base *LintRequest, override *LintRequest) *LintRequest
}
