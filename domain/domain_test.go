package domain

import (
	"errors"
	"testing"
)

func TestKindForPath(t *testing.T) {
	tests := []struct {
		path string
		want FileKind
	}{
		{"index.html", FileKindHTML},
		{"legacy.HTM", FileKindHTML},
		{"src/App.tsx", FileKindJSX},
		{"src/widget.jsx", FileKindJSX},
		{"src/util.ts", FileKindJSX},
		{"src/util.js", FileKindJSX},
		{"README.md", FileKindUnknown},
		{"styles.css", FileKindUnknown},
		{"noext", FileKindUnknown},
	}

	for _, tt := range tests {
		if got := KindForPath(tt.path); got != tt.want {
			t.Errorf("KindForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestSortResults(t *testing.T) {
	results := []LintResult{
		{Line: 5, Column: 2, Rule: RuleSingleH1},
		{Line: 1, Column: 8, Rule: RuleRequireAltText},
		{Line: 5, Column: 0, Rule: RuleUniqueIDs},
		{Line: 1, Column: 8, Rule: RuleEnforceHeadingOrder},
	}

	SortResults(results)

	if results[0].Rule != RuleEnforceHeadingOrder {
		t.Errorf("expected enforceHeadingOrder first, got %s", results[0].Rule)
	}
	if results[1].Rule != RuleRequireAltText {
		t.Errorf("expected requireAltText second, got %s", results[1].Rule)
	}
	if results[2].Rule != RuleUniqueIDs {
		t.Errorf("expected uniqueIds third, got %s", results[2].Rule)
	}
	if results[3].Rule != RuleSingleH1 {
		t.Errorf("expected singleH1 last, got %s", results[3].Rule)
	}
}

func TestAllRules_ClosedSet(t *testing.T) {
	infos := AllRules()
	if len(infos) != 16 {
		t.Fatalf("expected 16 configurable rules, got %d", len(infos))
	}

	seen := make(map[RuleID]bool)
	for _, info := range infos {
		if seen[info.ID] {
			t.Errorf("duplicate rule id %s", info.ID)
		}
		seen[info.ID] = true
		if info.Description == "" {
			t.Errorf("rule %s has no description", info.ID)
		}
	}

	if !IsValidRule(RuleRequireAltText) {
		t.Error("requireAltText should be a valid rule")
	}
	if IsValidRule(RuleParseError) {
		t.Error("parseError is synthetic and should not be configurable")
	}
	if IsValidRule("noSuchRule") {
		t.Error("unknown rule id should not validate")
	}
}

func TestDefaultSeverities(t *testing.T) {
	sev := DefaultSeverities()
	if len(sev) != 16 {
		t.Fatalf("expected 16 entries, got %d", len(sev))
	}
	for id, s := range sev {
		if s != SeverityWarning && s != SeverityError {
			t.Errorf("rule %s has unexpected default severity %q", id, s)
		}
	}
}

func TestComponentDefinition_Helpers(t *testing.T) {
	def := &ComponentDefinition{
		Name:     "Page",
		FilePath: "/src/Page.tsx",
		Headings: []HeadingInfo{
			{Level: 1, Line: 3, FilePath: "/src/Page.tsx"},
			{Level: 2, Line: 8, FilePath: "/src/Page.tsx"},
			{Level: 1, Line: 20, FilePath: "/src/Page.tsx"},
		},
		UsesComponents: []*ComponentReference{
			{Name: "Button", Path: "/src/Button.tsx"},
			{Name: "Card", Path: ""},
		},
	}

	if got := len(def.LocalH1s()); got != 2 {
		t.Errorf("expected 2 local h1s, got %d", got)
	}

	if ref := def.ReferenceByPath("/src/Button.tsx"); ref == nil || ref.Name != "Button" {
		t.Errorf("expected Button reference, got %v", ref)
	}
	if ref := def.ReferenceByPath(""); ref != nil {
		t.Error("empty path must not match an unresolved reference")
	}

	def.AddIssue(LintResult{Rule: RuleSingleH1, Line: 20})
	if len(def.Issues[RuleSingleH1]) != 1 {
		t.Error("AddIssue should record the result under its rule id")
	}
}

func TestDomainError(t *testing.T) {
	underlying := errors.New("boom")
	err := NewConfigError("failed to load configuration", underlying)

	if !errors.Is(err, underlying) {
		t.Error("DomainError should unwrap to the underlying error")
	}
	if err.Category != ErrorCategoryConfig {
		t.Errorf("unexpected category %s", err.Category)
	}
}
