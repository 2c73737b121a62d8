package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zemdomu/zemdomu/domain"
	"github.com/zemdomu/zemdomu/internal/version"
	"github.com/zemdomu/zemdomu/service"
)

// componentStats is implemented by lint services that keep a component
// registry; other services simply report zero components.
type componentStats interface {
	ComponentCount() int
	EntryPointCount() int
}

// LintUseCase orchestrates a full lint run: file collection, linting,
// summary aggregation, and output.
type LintUseCase struct {
	service    domain.LintService
	formatter  domain.OutputFormatter
	fileHelper *FileHelper
}

// NewLintUseCase creates a new lint use case
func NewLintUseCase(svc domain.LintService, formatter domain.OutputFormatter) *LintUseCase {
	return &LintUseCase{
		service:    svc,
		formatter:  formatter,
		fileHelper: NewFileHelper(),
	}
}

// Execute collects files for the request, lints them, and writes the
// formatted response to the request writer when one is set. Unreadable
// files become response warnings rather than a failed run.
func (uc *LintUseCase) Execute(ctx context.Context, request *domain.LintRequest) (*domain.LintResponse, error) {
	uc.fileHelper.RespectGitignore = request.RespectGitignore

	files, err := ResolveFilePaths(
		uc.fileHelper,
		request.Paths,
		request.Recursive,
		request.IncludePatterns,
		request.ExcludePatterns,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to collect lintable files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no HTML or JSX/TSX files found in the specified paths")
	}

	results, lintErr := uc.service.LintFiles(ctx, files)

	response := &domain.LintResponse{
		Files:       results,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
	}

	if lintErr != nil {
		var aggregated *service.AggregatedError
		if !errors.As(lintErr, &aggregated) {
			return nil, lintErr
		}
		for _, taskErr := range aggregated.Errors {
			response.Warnings = append(response.Warnings, taskErr.Error())
		}
	}

	response.Summary = uc.summarize(files, results)
	if request.CrossComponentAnalysis {
		if stats, ok := uc.service.(componentStats); ok {
			response.Summary.ComponentsInRegistry = stats.ComponentCount()
			response.Summary.EntryPointsDiscovered = stats.EntryPointCount()
		}
	}

	if request.OutputWriter != nil {
		format := request.OutputFormat
		if format == "" {
			format = domain.OutputFormatText
		}
		if err := uc.formatter.Write(response, format, request.OutputWriter); err != nil {
			return response, fmt.Errorf("failed to write output: %w", err)
		}
	}

	return response, nil
}

// summarize aggregates per-file results into run statistics.
func (uc *LintUseCase) summarize(files []string, results map[string][]domain.LintResult) domain.LintSummary {
	summary := domain.LintSummary{TotalFiles: len(files)}

	for _, fileResults := range results {
		if len(fileResults) > 0 {
			summary.FilesWithIssues++
		}
		for _, r := range fileResults {
			summary.TotalIssues++
			switch r.Severity {
			case domain.SeverityError:
				summary.ErrorCount++
			case domain.SeverityWarning:
				summary.WarningCount++
			}
			if r.Rule == domain.RuleParseError {
				summary.ParseFailures++
			}
			if r.FilePath != "" {
				summary.CrossComponentIssues++
			}
		}
	}

	return summary
}
