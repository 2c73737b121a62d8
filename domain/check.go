package domain

// CheckResult represents the result of a CI quality gate run
type CheckResult struct {
	Passed      bool         `json:"passed"`
	ExitCode    int          `json:"exit_code"`
	Violations  []LintResult `json:"violations"`
	Summary     CheckSummary `json:"summary"`
	Duration    int64        `json:"duration_ms"`
	GeneratedAt string       `json:"generated_at"`
	Version     string       `json:"version"`
}

// CheckSummary provides aggregate statistics for a gate run
type CheckSummary struct {
	FilesAnalyzed        int  `json:"files_analyzed"`
	TotalViolations      int  `json:"total_violations"`
	ErrorViolations      int  `json:"error_violations"`
	WarningViolations    int  `json:"warning_violations"`
	ParseFailures        int  `json:"parse_failures"`
	CrossComponentRan    bool `json:"cross_component_ran"`
	CrossComponentIssues int  `json:"cross_component_issues"`
}
