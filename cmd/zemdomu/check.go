package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/zemdomu/zemdomu/app"
	"github.com/zemdomu/zemdomu/domain"
	"github.com/zemdomu/zemdomu/internal/constants"
	"github.com/zemdomu/zemdomu/internal/version"
	"github.com/zemdomu/zemdomu/service"
)

// CheckExitError is a custom error type for check command exit codes
type CheckExitError struct {
	Code    int
	Message string
}

func (e *CheckExitError) Error() string {
	return e.Message
}

var (
	checkFailOnWarnings bool
	checkJSON           bool
	checkVerbose        bool
	checkConfigPath     string
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Fast semantic check for CI/CD pipelines",
		Long: `Lint paths and fail the build when violations are found.

Exit codes:
  0 - No violations
  1 - Violations found
  2 - Operational error (file not found, bad configuration, etc.)

Examples:
  # Gate on error-severity results
  zemdomu check src/

  # Treat warnings as failures too
  zemdomu check --fail-on-warnings src/

  # JSON output for machine parsing
  zemdomu check --json src/`,
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVar(&checkFailOnWarnings, "fail-on-warnings", false,
		"Fail when warning-severity results exist")
	cmd.Flags().BoolVar(&checkJSON, "json", false,
		"Output results as JSON")
	cmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false,
		"Show detailed output")
	cmd.Flags().StringVarP(&checkConfigPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &CheckExitError{Code: constants.ExitError, Message: "no paths specified"}
	}

	startTime := time.Now()

	loader := service.NewConfigurationLoader()
	request := loader.LoadDefaultConfig()
	if checkConfigPath != "" {
		loaded, err := loader.LoadConfig(checkConfigPath)
		if err != nil {
			return &CheckExitError{Code: constants.ExitError, Message: fmt.Sprintf("failed to load configuration: %v", err)}
		}
		request = loaded
	}
	request.Paths = args

	linter := service.NewProjectLinter(service.ProjectLinterOptions{
		Severities:             request.Severities,
		CrossComponentAnalysis: request.CrossComponentAnalysis,
		CrossComponentDepth:    request.CrossComponentDepth,
		RootDir:                request.RootDir,
		Aliases:                request.Aliases,
	})

	response, err := app.NewLintUseCase(linter, service.NewOutputFormatter()).Execute(context.Background(), request)
	if err != nil {
		return &CheckExitError{Code: constants.ExitError, Message: err.Error()}
	}

	result := buildCheckResult(response, startTime)
	return outputCheckResult(result)
}

// buildCheckResult converts a lint response into a gate result. Violations
// are error-severity results, plus warnings when --fail-on-warnings is set.
func buildCheckResult(response *domain.LintResponse, startTime time.Time) *domain.CheckResult {
	result := &domain.CheckResult{
		Passed:     true,
		Violations: []domain.LintResult{},
		Summary: domain.CheckSummary{
			FilesAnalyzed:        response.Summary.TotalFiles,
			ErrorViolations:      response.Summary.ErrorCount,
			WarningViolations:    response.Summary.WarningCount,
			ParseFailures:        response.Summary.ParseFailures,
			CrossComponentRan:    response.Summary.ComponentsInRegistry > 0,
			CrossComponentIssues: response.Summary.CrossComponentIssues,
		},
	}

	paths := make([]string, 0, len(response.Files))
	for path := range response.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		for _, r := range response.Files[path] {
			if r.Severity != domain.SeverityError && !checkFailOnWarnings {
				continue
			}
			if r.FilePath == "" {
				r.FilePath = path
			}
			result.Violations = append(result.Violations, r)
		}
	}

	result.Summary.TotalViolations = len(result.Violations)
	result.Passed = len(result.Violations) == 0
	result.ExitCode = constants.ExitOK
	if !result.Passed {
		result.ExitCode = constants.ExitViolations
	}
	result.Duration = time.Since(startTime).Milliseconds()
	result.GeneratedAt = time.Now().Format(time.RFC3339)
	result.Version = version.Version

	return result
}

func outputCheckResult(result *domain.CheckResult) error {
	if checkJSON {
		return outputCheckJSON(result)
	}
	return outputCheckText(result)
}

func outputCheckText(result *domain.CheckResult) error {
	if result.Passed {
		fmt.Println("PASS: No semantic violations found")
		if checkVerbose {
			fmt.Printf("  Files analyzed: %d\n", result.Summary.FilesAnalyzed)
			fmt.Printf("  Duration: %dms\n", result.Duration)
			if result.Summary.CrossComponentRan {
				fmt.Printf("  Cross-component: checked\n")
			}
		}
		return nil
	}

	fmt.Println("FAIL: Semantic check failed")
	fmt.Printf("  Violations: %d\n", result.Summary.TotalViolations)

	for _, v := range result.Violations {
		severity := "ERROR"
		if v.Severity == domain.SeverityWarning {
			severity = "WARN"
		}
		fmt.Printf("  [%s] %s:%d:%d %s [%s]\n", severity, v.FilePath, v.Line, v.Column, v.Message, v.Rule)
	}

	if checkVerbose {
		fmt.Printf("\nSummary:\n")
		fmt.Printf("  Files: %d\n", result.Summary.FilesAnalyzed)
		fmt.Printf("  Errors: %d\n", result.Summary.ErrorViolations)
		fmt.Printf("  Warnings: %d\n", result.Summary.WarningViolations)
		if result.Summary.ParseFailures > 0 {
			fmt.Printf("  Parse failures: %d\n", result.Summary.ParseFailures)
		}
		if result.Summary.CrossComponentRan {
			fmt.Printf("  Cross-component issues: %d\n", result.Summary.CrossComponentIssues)
		}
		fmt.Printf("  Duration: %dms\n", result.Duration)
	}

	return &CheckExitError{Code: constants.ExitViolations, Message: ""}
}

func outputCheckJSON(result *domain.CheckResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return &CheckExitError{Code: constants.ExitError, Message: fmt.Sprintf("failed to encode JSON: %v", err)}
	}

	if !result.Passed {
		return &CheckExitError{Code: constants.ExitViolations, Message: ""}
	}
	return nil
}
