package domain

// RuleID identifies a lint rule. The set of valid ids is closed; results
// always carry one of these identifiers.
type RuleID string

const (
	RuleRequireSectionHeading       RuleID = "requireSectionHeading"
	RuleEnforceHeadingOrder         RuleID = "enforceHeadingOrder"
	RuleSingleH1                    RuleID = "singleH1"
	RuleRequireAltText              RuleID = "requireAltText"
	RuleRequireLabelForFormControls RuleID = "requireLabelForFormControls"
	RuleEnforceListNesting          RuleID = "enforceListNesting"
	RuleRequireLinkText             RuleID = "requireLinkText"
	RuleRequireTableCaption         RuleID = "requireTableCaption"
	RulePreventEmptyInlineTags      RuleID = "preventEmptyInlineTags"
	RuleRequireHrefOnAnchors        RuleID = "requireHrefOnAnchors"
	RuleRequireButtonText           RuleID = "requireButtonText"
	RuleRequireIframeTitle          RuleID = "requireIframeTitle"
	RuleRequireHTMLLang             RuleID = "requireHtmlLang"
	RuleRequireImageInputAlt        RuleID = "requireImageInputAlt"
	RuleRequireNavLinks             RuleID = "requireNavLinks"
	RuleUniqueIDs                   RuleID = "uniqueIds"

	// RuleParseError is a synthetic id used when a file cannot be parsed.
	// It is not configurable and never runs as a rule.
	RuleParseError RuleID = "parseError"
)

// Severity controls whether a rule runs and how its results are classified.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"

	// SeverityOff disables a rule entirely; the rule must not execute,
	// not merely have its results filtered.
	SeverityOff Severity = "off"
)

// RuleInfo describes one rule for documentation and the `rules` command.
type RuleInfo struct {
	ID              RuleID   `json:"id"`
	DefaultSeverity Severity `json:"default_severity"`
	Description     string   `json:"description"`
}

// AllRules returns every configurable rule in a stable order.
func AllRules() []RuleInfo {
	return []RuleInfo{
		{RuleRequireSectionHeading, SeverityWarning, "<section> elements must contain a heading"},
		{RuleEnforceHeadingOrder, SeverityWarning, "heading levels must not skip (e.g. <h2> then <h4>)"},
		{RuleSingleH1, SeverityWarning, "a document must contain at most one <h1>"},
		{RuleRequireAltText, SeverityWarning, "<img> elements must have non-empty alt text"},
		{RuleRequireLabelForFormControls, SeverityWarning, "form controls must be labeled via <label for> or aria-label"},
		{RuleEnforceListNesting, SeverityWarning, "<li> must be a direct child of <ul> or <ol>"},
		{RuleRequireLinkText, SeverityWarning, "<a> elements must have text content"},
		{RuleRequireTableCaption, SeverityWarning, "<table> elements must contain a <caption>"},
		{RulePreventEmptyInlineTags, SeverityWarning, "inline emphasis tags must not be empty"},
		{RuleRequireHrefOnAnchors, SeverityWarning, "<a> elements must have a non-empty href"},
		{RuleRequireButtonText, SeverityWarning, "<button> elements must have an accessible name"},
		{RuleRequireIframeTitle, SeverityWarning, "<iframe> elements must have a title"},
		{RuleRequireHTMLLang, SeverityWarning, "<html> must declare a lang attribute"},
		{RuleRequireImageInputAlt, SeverityWarning, "<input type=\"image\"> must have alt text"},
		{RuleRequireNavLinks, SeverityWarning, "<nav> landmarks must contain at least one link"},
		{RuleUniqueIDs, SeverityWarning, "id attribute values must be unique within a document"},
	}
}

// IsValidRule reports whether id names a configurable rule.
func IsValidRule(id RuleID) bool {
	for _, info := range AllRules() {
		if info.ID == id {
			return true
		}
	}
	return false
}

// DefaultSeverities returns the default severity for every configurable rule.
func DefaultSeverities() map[RuleID]Severity {
	m := make(map[RuleID]Severity)
	for _, info := range AllRules() {
		m[info.ID] = info.DefaultSeverity
	}
	return m
}
