// Package linter drives the rule engine over one file. It selects the
// parser backend by file kind, adapts the parsed structure to the engine's
// event contract, applies inline disable directives, and recovers parse
// failures as a single synthetic result so one bad file never aborts a batch.
package linter

import (
	"github.com/zemdomu/zemdomu/domain"
	"github.com/zemdomu/zemdomu/internal/markup"
	"github.com/zemdomu/zemdomu/internal/parser"
	"github.com/zemdomu/zemdomu/internal/rules"
)

// Lint lints one file's content. It never returns an error: malformed
// input yields one parseError result at (0,0) and files of unknown kind
// yield nothing.
func Lint(content []byte, kind domain.FileKind, severities map[domain.RuleID]domain.Severity) []domain.LintResult {
	if severities == nil {
		severities = domain.DefaultSeverities()
	}

	var results []domain.LintResult
	var comments []sourceComment
	switch kind {
	case domain.FileKindHTML:
		results, comments = lintHTML(content, severities)
	case domain.FileKindJSX:
		results, comments = lintJSX(content, severities)
	default:
		return nil
	}

	return filterDisabled(results, disabledRanges(comments))
}

func parseFailure(message string) []domain.LintResult {
	return []domain.LintResult{{
		Line:     0,
		Column:   0,
		Message:  message,
		Rule:     domain.RuleParseError,
		Severity: domain.SeverityError,
	}}
}

func lintHTML(content []byte, severities map[domain.RuleID]domain.Severity) ([]domain.LintResult, []sourceComment) {
	doc, err := markup.Parse(content)
	if err != nil {
		return parseFailure("failed to parse HTML: " + err.Error()), nil
	}

	engine := rules.NewEngine(severities)
	var comments []sourceComment
	var walk func(n *markup.Node)
	walk = func(n *markup.Node) {
		switch n.Type {
		case markup.ElementNode:
			el := htmlElement(doc, n)
			engine.Open(el)
			for _, c := range n.Children {
				walk(c)
			}
			engine.Close(el)
		case markup.TextNode:
			line, col := doc.Position(n.Offset)
			engine.Text(&rules.Text{Value: n.Data, Line: line, Col: col})
		case markup.CommentNode:
			line, _ := doc.Position(n.Offset)
			comments = append(comments, sourceComment{text: n.Data, line: line})
		}
	}
	for _, c := range doc.Root.Children {
		walk(c)
	}
	return engine.Finish(), comments
}

func htmlElement(doc *markup.Document, n *markup.Node) *rules.Element {
	line, col := doc.Position(n.Offset)
	el := &rules.Element{
		Tag:         n.Tag,
		Line:        line,
		Col:         col,
		SelfClosing: n.SelfClosing,
	}
	for _, a := range n.Attrs {
		el.Attrs = append(el.Attrs, rules.Attr{
			Name:  a.Name,
			Value: rules.AttrValue{Literal: a.Value},
		})
	}
	return el
}

func lintJSX(content []byte, severities map[domain.RuleID]domain.Severity) ([]domain.LintResult, []sourceComment) {
	p := parser.New()
	defer p.Close()

	f, err := p.ParseFile("<input>", content)
	if err != nil {
		return parseFailure("failed to parse component file: " + err.Error()), nil
	}
	defer f.Close()

	engine := rules.NewEngine(severities)
	parser.WalkJSX(f, &jsxAdapter{engine: engine})

	var comments []sourceComment
	for _, c := range f.Comments() {
		comments = append(comments, sourceComment{text: c.Text, line: c.Line})
	}
	return engine.Finish(), comments
}

// jsxAdapter translates parser events into rule engine events. Elements
// are cached per open so the matching close reuses the same value.
type jsxAdapter struct {
	engine *rules.Engine
	stack  []*rules.Element
}

func (a *jsxAdapter) OpenElement(el *parser.JSXElement) {
	converted := jsxElement(el)
	a.stack = append(a.stack, converted)
	a.engine.Open(converted)
}

func (a *jsxAdapter) Text(t *parser.JSXText) {
	a.engine.Text(&rules.Text{
		Value:   t.Value,
		Dynamic: t.Dynamic,
		Line:    t.Line,
		Col:     t.Col,
	})
}

func (a *jsxAdapter) CloseElement(el *parser.JSXElement) {
	if len(a.stack) == 0 {
		return
	}
	top := a.stack[len(a.stack)-1]
	a.stack = a.stack[:len(a.stack)-1]
	a.engine.Close(top)
}

func jsxElement(el *parser.JSXElement) *rules.Element {
	converted := &rules.Element{
		Tag:         el.Name,
		Component:   el.Component,
		HasSpread:   el.HasSpread,
		Line:        el.Line,
		Col:         el.Col,
		SelfClosing: el.SelfClosing,
	}
	for _, a := range el.Attrs {
		converted.Attrs = append(converted.Attrs, rules.Attr{
			Name: a.Name,
			Value: rules.AttrValue{
				Dynamic: a.Value.Kind == parser.AttrDynamic,
				Literal: a.Value.Literal,
			},
		})
	}
	return converted
}
