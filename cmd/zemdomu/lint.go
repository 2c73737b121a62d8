package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zemdomu/zemdomu/app"
	"github.com/zemdomu/zemdomu/domain"
	"github.com/zemdomu/zemdomu/service"
)

var (
	lintOutputFormat    string
	lintOutputPath      string
	lintConfigPath      string
	lintSeverities      []string
	lintNoCross         bool
	lintCrossDepth      int
	lintRootDir         string
	lintNoSummary       bool
	lintNoProgress      bool
	lintNonRecursive    bool
	lintExcludePatterns []string
	lintNoGitignore     bool
	lintConcurrency     int
)

func lintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [path...]",
		Short: "Lint HTML and JSX/TSX files for semantic issues",
		Long: `Lint HTML and JSX/TSX files for semantic markup and accessibility issues.

Examples:
  # Lint a directory tree
  zemdomu lint src/

  # Lint specific files
  zemdomu lint index.html src/App.tsx

  # Override rule severities
  zemdomu lint --severity singleH1=error --severity requireNavLinks=off src/

  # JSON output for tooling
  zemdomu lint --format json src/

  # Single-file analysis only
  zemdomu lint --no-cross-component src/`,
		RunE: runLint,
	}

	cmd.Flags().StringVarP(&lintOutputFormat, "format", "f", "",
		"Output format: text, json, yaml")
	cmd.Flags().StringVarP(&lintOutputPath, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().StringVarP(&lintConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().StringArrayVarP(&lintSeverities, "severity", "s", nil,
		"Override rule severity as rule=error|warning|off (repeatable)")
	cmd.Flags().BoolVar(&lintNoCross, "no-cross-component", false,
		"Disable cross-component analysis")
	cmd.Flags().IntVar(&lintCrossDepth, "max-depth", 0,
		"Maximum component graph traversal depth (0 = default)")
	cmd.Flags().StringVar(&lintRootDir, "root-dir", "",
		"Root directory for import alias resolution")
	cmd.Flags().BoolVar(&lintNoSummary, "no-summary", false,
		"Suppress the summary footer in text output")
	cmd.Flags().BoolVar(&lintNoProgress, "no-progress", false,
		"Disable the progress bar")
	cmd.Flags().BoolVar(&lintNonRecursive, "no-recursive", false,
		"Do not descend into subdirectories")
	cmd.Flags().StringArrayVarP(&lintExcludePatterns, "exclude", "e", nil,
		"Exclude files or directories matching pattern (repeatable)")
	cmd.Flags().BoolVar(&lintNoGitignore, "no-gitignore", false,
		"Do not honor .gitignore files during collection")
	cmd.Flags().IntVarP(&lintConcurrency, "concurrency", "j", 0,
		"Maximum number of files linted in parallel (0 = number of CPUs)")

	return cmd
}

func runLint(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no paths specified")
	}

	loader := service.NewConfigurationLoader()

	base := loader.LoadDefaultConfig()
	if lintConfigPath != "" {
		loaded, err := loader.LoadConfig(lintConfigPath)
		if err != nil {
			return err
		}
		base = loaded
	}

	override, err := lintRequestFromFlags(cmd, args)
	if err != nil {
		return err
	}
	request := loader.MergeConfig(base, override)

	// Flags that turn defaults off cannot be expressed through the merge.
	if lintNoCross {
		request.CrossComponentAnalysis = false
	}
	if lintNonRecursive {
		request.Recursive = false
	}
	if lintNoGitignore {
		request.RespectGitignore = false
	}
	request.ShowSummary = !lintNoSummary

	writer := os.Stdout
	if lintOutputPath != "" {
		f, err := os.Create(lintOutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}
	request.OutputWriter = writer

	showProgress := !lintNoProgress && request.OutputFormat == domain.OutputFormatText
	pm := service.NewProgressManager(showProgress)
	defer pm.Close()

	linter := service.NewProjectLinter(service.ProjectLinterOptions{
		Severities:             request.Severities,
		CrossComponentAnalysis: request.CrossComponentAnalysis,
		CrossComponentDepth:    request.CrossComponentDepth,
		RootDir:                request.RootDir,
		Aliases:                request.Aliases,
		Progress:               pm,
		MaxConcurrency:         lintConcurrency,
	})

	formatter := service.NewOutputFormatter()
	formatter.ShowSummary = request.ShowSummary

	response, err := app.NewLintUseCase(linter, formatter).Execute(context.Background(), request)
	if err != nil {
		return err
	}

	if request.OutputFormat == domain.OutputFormatText || request.OutputFormat == "" {
		for _, w := range response.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
	}

	return nil
}

// lintRequestFromFlags builds the CLI override request merged over the
// configuration file.
func lintRequestFromFlags(cmd *cobra.Command, args []string) (*domain.LintRequest, error) {
	severities, err := parseSeverityOverrides(lintSeverities)
	if err != nil {
		return nil, err
	}

	request := &domain.LintRequest{
		Paths:               args,
		Severities:          severities,
		CrossComponentDepth: lintCrossDepth,
		RootDir:             lintRootDir,
		ConfigPath:          lintConfigPath,
		ExcludePatterns:     lintExcludePatterns,
	}

	if cmd.Flags().Changed("format") {
		switch lintOutputFormat {
		case "text", "json", "yaml":
			request.OutputFormat = domain.OutputFormat(lintOutputFormat)
		default:
			return nil, fmt.Errorf("unsupported output format: %s", lintOutputFormat)
		}
	}

	return request, nil
}

// parseSeverityOverrides parses repeated rule=severity flags. Unlike config
// files, explicit flags fail loudly on unknown rules or levels.
func parseSeverityOverrides(pairs []string) (map[domain.RuleID]domain.Severity, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	severities := make(map[domain.RuleID]domain.Severity, len(pairs))
	for _, pair := range pairs {
		name, level, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid severity override %q (want rule=error|warning|off)", pair)
		}

		id := domain.RuleID(name)
		if !domain.IsValidRule(id) {
			return nil, fmt.Errorf("unknown rule: %s", name)
		}

		switch domain.Severity(level) {
		case domain.SeverityError, domain.SeverityWarning, domain.SeverityOff:
			severities[id] = domain.Severity(level)
		default:
			return nil, fmt.Errorf("unknown severity %q for rule %s", level, name)
		}
	}

	return severities, nil
}
