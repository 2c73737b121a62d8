package linter

import (
	"reflect"
	"testing"

	"github.com/zemdomu/zemdomu/domain"
)

func lintHTMLString(t *testing.T, src string) []domain.LintResult {
	t.Helper()
	return Lint([]byte(src), domain.FileKindHTML, nil)
}

func lintJSXString(t *testing.T, src string) []domain.LintResult {
	t.Helper()
	return Lint([]byte(src), domain.FileKindJSX, nil)
}

func byRule(results []domain.LintResult, id domain.RuleID) []domain.LintResult {
	var out []domain.LintResult
	for _, r := range results {
		if r.Rule == id {
			out = append(out, r)
		}
	}
	return out
}

func TestSingleH1_HTML(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"one h1", `<h1>Title</h1>`, 0},
		{"two h1", `<h1>a</h1><h1>b</h1>`, 1},
		{"three h1", `<h1>a</h1><h1>b</h1><h1>c</h1>`, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := byRule(lintHTMLString(t, tt.src), domain.RuleSingleH1)
			if len(got) != tt.want {
				t.Errorf("got %d results, want %d", len(got), tt.want)
			}
		})
	}
}

func TestHeadingOrder_HTML(t *testing.T) {
	clean := `<h1>a</h1><h2>b</h2><h2>c</h2><h3>d</h3>`
	if got := byRule(lintHTMLString(t, clean), domain.RuleEnforceHeadingOrder); len(got) != 0 {
		t.Errorf("non-skipping order must not fire, got %v", got)
	}

	skip := "<h2>a</h2>\n<h4>b</h4>"
	got := byRule(lintHTMLString(t, skip), domain.RuleEnforceHeadingOrder)
	if len(got) != 1 {
		t.Fatalf("h2 then h4 must fire exactly once, got %d", len(got))
	}
	if got[0].Message != "Heading level skipped: <h4> follows <h2>" {
		t.Errorf("message must reference both levels, got %q", got[0].Message)
	}
	if got[0].Line != 1 {
		t.Errorf("attributed to the h4 on line 1, got line %d", got[0].Line)
	}
}

func TestAltText_HTML(t *testing.T) {
	if got := byRule(lintHTMLString(t, `<img alt="x">`), domain.RuleRequireAltText); len(got) != 0 {
		t.Errorf("img with alt must not fire, got %v", got)
	}
	for _, src := range []string{`<img>`, `<img alt="">`} {
		if got := byRule(lintHTMLString(t, src), domain.RuleRequireAltText); len(got) != 1 {
			t.Errorf("%s must fire once, got %d", src, len(got))
		}
	}
}

func TestListNesting_HTML(t *testing.T) {
	ok := []string{
		`<ul><li>a</li></ul>`,
		`<ol><li>a</li></ol>`,
	}
	for _, src := range ok {
		if got := byRule(lintHTMLString(t, src), domain.RuleEnforceListNesting); len(got) != 0 {
			t.Errorf("%s must not fire, got %v", src, got)
		}
	}

	bad := []string{
		`<li>a</li>`,
		`<div><li>a</li></div>`,
		`<ul><div><li>a</li></div></ul>`,
	}
	for _, src := range bad {
		if got := byRule(lintHTMLString(t, src), domain.RuleEnforceListNesting); len(got) != 1 {
			t.Errorf("%s must fire once, got %d", src, len(got))
		}
	}
}

func TestTableCaption_HTML(t *testing.T) {
	got := byRule(lintHTMLString(t, `<table><tr></tr></table>`), domain.RuleRequireTableCaption)
	if len(got) != 1 {
		t.Fatalf("captionless table must fire exactly once, got %d", len(got))
	}
	if got[0].Line != 0 || got[0].Column != 0 {
		t.Errorf("attributed to the table open position, got (%d,%d)", got[0].Line, got[0].Column)
	}

	withCaption := `<table><caption>Data</caption><tr></tr></table>`
	if got := byRule(lintHTMLString(t, withCaption), domain.RuleRequireTableCaption); len(got) != 0 {
		t.Errorf("captioned table must not fire, got %v", got)
	}
}

func TestUniqueIDs_HTML(t *testing.T) {
	src := "<div id=\"x\"></div>\n<span id=\"x\"></span>"
	got := byRule(lintHTMLString(t, src), domain.RuleUniqueIDs)
	if len(got) != 1 {
		t.Fatalf("duplicate id must fire exactly once, got %d", len(got))
	}
	if got[0].Line != 1 {
		t.Errorf("attributed to the second occurrence, got line %d", got[0].Line)
	}
}

func TestOffRule_ZeroResults(t *testing.T) {
	severities := domain.DefaultSeverities()
	severities[domain.RuleSingleH1] = domain.SeverityOff

	got := Lint([]byte(`<h1>a</h1><h1>b</h1>`), domain.FileKindHTML, severities)
	if len(byRule(got, domain.RuleSingleH1)) != 0 {
		t.Error("off rule must produce zero results")
	}
}

func TestIdempotence(t *testing.T) {
	src := []byte(`<section><img></section><h1>a</h1><h1>b</h1>`)
	first := Lint(src, domain.FileKindHTML, nil)
	second := Lint(src, domain.FileKindHTML, nil)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("linting twice diverged:\n%v\n%v", first, second)
	}
	if len(first) == 0 {
		t.Fatal("fixture should produce results")
	}
}

func TestUnknownKind(t *testing.T) {
	if got := Lint([]byte("anything"), domain.FileKindUnknown, nil); got != nil {
		t.Errorf("unknown kind must lint to nothing, got %v", got)
	}
}

func TestJSX_BasicRules(t *testing.T) {
	src := `
export function Page() {
  return (
    <main>
      <h1>One</h1>
      <h1>Two</h1>
      <img src="a.png" />
    </main>
  );
}
`
	results := lintJSXString(t, src)
	if got := byRule(results, domain.RuleSingleH1); len(got) != 1 {
		t.Errorf("expected one singleH1 result, got %d", len(got))
	}
	if got := byRule(results, domain.RuleRequireAltText); len(got) != 1 {
		t.Errorf("expected one altText result, got %d", len(got))
	}
}

func TestJSX_DynamicValuesConservative(t *testing.T) {
	src := `
const x = (
  <div>
    <img alt={description} src="a.png" />
    <a href="/x">{props.label}</a>
    <button>{icon}</button>
  </div>
);
`
	results := lintJSXString(t, src)
	for _, id := range []domain.RuleID{
		domain.RuleRequireAltText,
		domain.RuleRequireLinkText,
		domain.RuleRequireButtonText,
	} {
		if got := byRule(results, id); len(got) != 0 {
			t.Errorf("%s must not fire on dynamic content, got %v", id, got)
		}
	}
}

func TestJSX_SpreadSkipsAttributeChecks(t *testing.T) {
	src := `const x = <img {...imgProps} />;`
	if got := byRule(lintJSXString(t, src), domain.RuleRequireAltText); len(got) != 0 {
		t.Errorf("spread props make absence unverifiable, got %v", got)
	}
}

func TestJSX_ComponentChildIsContent(t *testing.T) {
	src := `const x = <a href="/x"><Icon name="home" /></a>;`
	if got := byRule(lintJSXString(t, src), domain.RuleRequireLinkText); len(got) != 0 {
		t.Errorf("component child counts as link content, got %v", got)
	}
}

func TestDirectives_HTML(t *testing.T) {
	src := "<!-- zemdomu-disable-next -->\n<img>\n<img>"
	got := byRule(lintHTMLString(t, src), domain.RuleRequireAltText)
	if len(got) != 1 {
		t.Fatalf("disable-next covers only the following line, got %d results", len(got))
	}
	if got[0].Line != 2 {
		t.Errorf("surviving result should be the line-2 img, got line %d", got[0].Line)
	}
}

func TestDirectives_RangeAndEnable(t *testing.T) {
	src := "<img>\n<!-- zemdomu-disable -->\n<img>\n<img>\n<!-- zemdomu-enable -->\n<img>"
	got := byRule(lintHTMLString(t, src), domain.RuleRequireAltText)
	if len(got) != 2 {
		t.Fatalf("expected the imgs outside the disabled range, got %d", len(got))
	}
	if got[0].Line != 0 || got[1].Line != 5 {
		t.Errorf("unexpected lines %d, %d", got[0].Line, got[1].Line)
	}
}

func TestDirectives_DisableToEOF(t *testing.T) {
	src := "<!-- zemdomu-disable -->\n<img>\n<h1>a</h1>\n<h1>b</h1>"
	if got := lintHTMLString(t, src); len(got) != 0 {
		t.Errorf("unterminated disable suppresses to end of file, got %v", got)
	}
}

func TestDirectives_JSX(t *testing.T) {
	src := `
const x = (
  <div>
    {/* zemdomu-disable-next */}
    <img src="a.png" />
    <img src="b.png" />
  </div>
);
`
	got := byRule(lintJSXString(t, src), domain.RuleRequireAltText)
	if len(got) != 1 {
		t.Errorf("JSX comment directives must suppress like HTML ones, got %d results", len(got))
	}
}

func TestDirectives_LineCommentJSX(t *testing.T) {
	src := `
// zemdomu-disable
const x = <img src="a.png" />;
`
	if got := byRule(lintJSXString(t, src), domain.RuleRequireAltText); len(got) != 0 {
		t.Errorf("line comment directives count too, got %v", got)
	}
}
