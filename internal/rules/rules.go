// Package rules implements the lint rule engine. Rules observe element
// open/text/close events emitted by a parser backend and report positioned
// diagnostics; each rule keeps its own traversal state, reset per file.
package rules

import (
	"fmt"
	"strings"

	"github.com/zemdomu/zemdomu/domain"
)

// AttrValue is an attribute value as seen by rules: either a statically
// known literal or a dynamic expression whose content cannot be verified.
type AttrValue struct {
	Dynamic bool
	Literal string
}

// IsBlank reports whether the value is a literal that is empty or
// whitespace-only. Dynamic values are never considered blank.
func (v AttrValue) IsBlank() bool {
	return !v.Dynamic && strings.TrimSpace(v.Literal) == ""
}

// Attr is one attribute on an element event.
type Attr struct {
	Name  string
	Value AttrValue
}

// Element is one open or close event. Tag is lower-case for host elements;
// component references keep their capitalized name and set Component.
type Element struct {
	Tag       string
	Component bool
	Attrs     []Attr

	// HasSpread marks JSX elements carrying a {...props} spread.
	// Attribute absence cannot be verified on such elements.
	HasSpread bool

	Line, Col   int
	SelfClosing bool
}

// Attr returns the named attribute and whether it is present. Callers
// distinguish a missing attribute from one present with an empty value.
func (e *Element) Attr(name string) (AttrValue, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return AttrValue{}, false
}

// hasAccessibleLabel reports whether the element carries a usable
// aria-label. Dynamic values are accepted conservatively.
func (e *Element) hasAccessibleLabel() bool {
	v, ok := e.Attr("aria-label")
	return ok && !v.IsBlank()
}

// Text is a text event: literal markup text or a dynamic JSX expression
// child. Dynamic text conservatively counts as content.
type Text struct {
	Value   string
	Dynamic bool
	Line    int
	Col     int
}

// HasContent reports whether the event contributes visible content.
func (t *Text) HasContent() bool {
	return t.Dynamic || strings.TrimSpace(t.Value) != ""
}

// Rule is one independently toggleable check. Open and Close are paired
// in strict tree order; Finish runs once after the traversal for rules
// that need a whole-file view.
type Rule interface {
	ID() domain.RuleID
	Open(ctx *Context, el *Element)
	Text(ctx *Context, t *Text)
	Close(ctx *Context, el *Element)
	Finish(ctx *Context)
}

// baseRule provides no-op handlers so rules implement only what they need.
type baseRule struct{}

func (baseRule) Open(*Context, *Element)  {}
func (baseRule) Text(*Context, *Text)     {}
func (baseRule) Close(*Context, *Element) {}
func (baseRule) Finish(*Context)          {}

// Context collects results during one file traversal.
type Context struct {
	severities map[domain.RuleID]domain.Severity
	results    []domain.LintResult
}

// Report records one diagnostic at a 0-based position.
func (c *Context) Report(id domain.RuleID, line, col int, format string, args ...any) {
	c.results = append(c.results, domain.LintResult{
		Line:     line,
		Column:   col,
		Message:  fmt.Sprintf(format, args...),
		Rule:     id,
		Severity: c.severities[id],
	})
}

// Engine drives every enabled rule over one file's event stream. Rules
// configured off are never instantiated, so they cannot run or fail.
type Engine struct {
	rules []Rule
	ctx   *Context
}

// NewEngine instantiates the enabled rules for one file traversal.
func NewEngine(severities map[domain.RuleID]domain.Severity) *Engine {
	e := &Engine{ctx: &Context{severities: severities}}
	for _, id := range ruleOrder {
		if severities[id] == domain.SeverityOff {
			continue
		}
		e.rules = append(e.rules, factories[id]())
	}
	return e
}

// Open dispatches an element open event to every rule.
func (e *Engine) Open(el *Element) {
	for _, r := range e.rules {
		r.Open(e.ctx, el)
	}
}

// Text dispatches a text event to every rule.
func (e *Engine) Text(t *Text) {
	for _, r := range e.rules {
		r.Text(e.ctx, t)
	}
}

// Close dispatches an element close event to every rule.
func (e *Engine) Close(el *Element) {
	for _, r := range e.rules {
		r.Close(e.ctx, el)
	}
}

// Finish runs every rule's end-of-file hook and returns the collected
// results in stable position order.
func (e *Engine) Finish() []domain.LintResult {
	for _, r := range e.rules {
		r.Finish(e.ctx)
	}
	domain.SortResults(e.ctx.results)
	return e.ctx.results
}
