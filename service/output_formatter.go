package service

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zemdomu/zemdomu/domain"
)

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct {
	// ShowSummary appends aggregate statistics to text output
	ShowSummary bool
}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{ShowSummary: true}
}

// Format renders the response in the requested format
func (f *OutputFormatterImpl) Format(response *domain.LintResponse, format domain.OutputFormat) (string, error) {
	var sb strings.Builder
	if err := f.Write(response, format, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write writes the lint response in the specified format
func (f *OutputFormatterImpl) Write(response *domain.LintResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return f.writeJSON(response, writer)
	case domain.OutputFormatYAML:
		return f.writeYAML(response, writer)
	case domain.OutputFormatText:
		return f.writeText(response, writer)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func (f *OutputFormatterImpl) writeJSON(response *domain.LintResponse, writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

func (f *OutputFormatterImpl) writeYAML(response *domain.LintResponse, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	defer encoder.Close()
	return encoder.Encode(response)
}

// writeText renders one line per result, grouped by file in sorted order:
//
//	src/Page.tsx:4:6 warning Multiple <h1> elements in one document [singleH1]
func (f *OutputFormatterImpl) writeText(response *domain.LintResponse, writer io.Writer) error {
	paths := make([]string, 0, len(response.Files))
	for path := range response.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		for _, r := range response.Files[path] {
			severity := r.Severity
			if severity == "" {
				severity = domain.SeverityWarning
			}
			if _, err := fmt.Fprintf(writer, "%s:%d:%d %s %s [%s]\n",
				path, r.Line, r.Column, severity, r.Message, r.Rule); err != nil {
				return err
			}
			for _, rel := range r.Related {
				if _, err := fmt.Fprintf(writer, "    see %s:%d:%d %s\n",
					rel.FilePath, rel.Line, rel.Column, rel.Message); err != nil {
					return err
				}
			}
		}
	}

	if f.ShowSummary {
		return f.writeTextSummary(response, writer)
	}
	return nil
}

func (f *OutputFormatterImpl) writeTextSummary(response *domain.LintResponse, writer io.Writer) error {
	s := response.Summary
	if _, err := fmt.Fprintf(writer, "\n%d issue(s) in %d of %d file(s): %d error(s), %d warning(s)\n",
		s.TotalIssues, s.FilesWithIssues, s.TotalFiles, s.ErrorCount, s.WarningCount); err != nil {
		return err
	}
	if s.ParseFailures > 0 {
		if _, err := fmt.Fprintf(writer, "%d file(s) failed to parse\n", s.ParseFailures); err != nil {
			return err
		}
	}
	if s.CrossComponentIssues > 0 {
		if _, err := fmt.Fprintf(writer, "%d cross-component issue(s) across %d component(s), %d entry point(s)\n",
			s.CrossComponentIssues, s.ComponentsInRegistry, s.EntryPointsDiscovered); err != nil {
			return err
		}
	}
	return nil
}
