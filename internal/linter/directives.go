package linter

import (
	"math"
	"strings"

	"github.com/zemdomu/zemdomu/domain"
)

// Inline directives are a textual protocol recognized in both backends:
// HTML comments and JSX comment expressions carry the same tokens. Rules
// stay directive-agnostic; suppression happens here, after the engine runs.
const (
	directiveDisableNext = "zemdomu-disable-next"
	directiveDisable     = "zemdomu-disable"
	directiveEnable      = "zemdomu-enable"
)

// sourceComment is one comment with its 0-based start line.
type sourceComment struct {
	text string
	line int
}

// lineRange is an inclusive range of 0-based lines with suppressed results.
type lineRange struct {
	start, end int
}

// disabledRanges converts directive comments into suppressed line ranges.
// disable-next covers only the following line; disable opens a range that
// the next enable closes, or end-of-file if none does.
func disabledRanges(comments []sourceComment) []lineRange {
	var ranges []lineRange
	openStart := -1
	for _, c := range comments {
		switch {
		case strings.Contains(c.text, directiveDisableNext):
			ranges = append(ranges, lineRange{start: c.line + 1, end: c.line + 1})
		case strings.Contains(c.text, directiveEnable):
			if openStart >= 0 {
				ranges = append(ranges, lineRange{start: openStart, end: c.line})
				openStart = -1
			}
		case strings.Contains(c.text, directiveDisable):
			if openStart < 0 {
				openStart = c.line
			}
		}
	}
	if openStart >= 0 {
		ranges = append(ranges, lineRange{start: openStart, end: math.MaxInt})
	}
	return ranges
}

// filterDisabled drops results whose start line falls in a disabled range.
func filterDisabled(results []domain.LintResult, ranges []lineRange) []domain.LintResult {
	if len(ranges) == 0 {
		return results
	}
	kept := results[:0]
	for _, r := range results {
		if !lineDisabled(r.Line, ranges) {
			kept = append(kept, r)
		}
	}
	return kept
}

func lineDisabled(line int, ranges []lineRange) bool {
	for _, rg := range ranges {
		if line >= rg.start && line <= rg.end {
			return true
		}
	}
	return false
}
