package rules

import (
	"github.com/zemdomu/zemdomu/domain"
)

// Text-accumulation rules share one mechanic: push a scope on open, mark
// every open scope when content appears, report unfilled scopes on close.
// Dynamic expression children and component children count as content so
// {props.children} style composition never false-positives.

// linkTextRule reports anchors that close without text content.
type linkTextRule struct {
	baseRule
	anchors []openScope
}

func (r *linkTextRule) ID() domain.RuleID { return domain.RuleRequireLinkText }

func (r *linkTextRule) Open(ctx *Context, el *Element) {
	if el.Tag == "a" {
		r.anchors = append(r.anchors, openScope{line: el.Line, col: el.Col})
		return
	}
	if el.Component {
		markAll(r.anchors)
	}
}

func (r *linkTextRule) Text(ctx *Context, t *Text) {
	if t.HasContent() {
		markAll(r.anchors)
	}
}

func (r *linkTextRule) Close(ctx *Context, el *Element) {
	if el.Tag != "a" || len(r.anchors) == 0 {
		return
	}
	top := r.anchors[len(r.anchors)-1]
	r.anchors = r.anchors[:len(r.anchors)-1]
	if !top.found {
		ctx.Report(r.ID(), top.line, top.col, "<a> has no link text")
	}
}

// inlineTags are the emphasis tags that must not be empty.
var inlineTags = map[string]bool{
	"strong": true, "em": true, "b": true, "i": true, "u": true,
	"small": true, "mark": true, "del": true, "ins": true,
}

type inlineScope struct {
	tag       string
	line, col int
	found     bool
}

// emptyInlineRule reports inline emphasis tags that close empty.
type emptyInlineRule struct {
	baseRule
	open []inlineScope
}

func (r *emptyInlineRule) ID() domain.RuleID { return domain.RulePreventEmptyInlineTags }

func (r *emptyInlineRule) Open(ctx *Context, el *Element) {
	if inlineTags[el.Tag] {
		r.open = append(r.open, inlineScope{tag: el.Tag, line: el.Line, col: el.Col})
		return
	}
	if el.Component {
		for i := range r.open {
			r.open[i].found = true
		}
	}
}

func (r *emptyInlineRule) Text(ctx *Context, t *Text) {
	if t.HasContent() {
		for i := range r.open {
			r.open[i].found = true
		}
	}
}

func (r *emptyInlineRule) Close(ctx *Context, el *Element) {
	if !inlineTags[el.Tag] || len(r.open) == 0 {
		return
	}
	top := r.open[len(r.open)-1]
	r.open = r.open[:len(r.open)-1]
	if !top.found {
		ctx.Report(r.ID(), top.line, top.col, "<%s> is empty", top.tag)
	}
}

type buttonScope struct {
	line, col int
	found     bool
	labeled   bool
}

// buttonTextRule reports buttons with neither text content nor a usable
// aria-label.
type buttonTextRule struct {
	baseRule
	buttons []buttonScope
}

func (r *buttonTextRule) ID() domain.RuleID { return domain.RuleRequireButtonText }

func (r *buttonTextRule) Open(ctx *Context, el *Element) {
	if el.Tag == "button" {
		r.buttons = append(r.buttons, buttonScope{
			line:    el.Line,
			col:     el.Col,
			labeled: el.hasAccessibleLabel() || el.HasSpread,
		})
		return
	}
	if el.Component {
		for i := range r.buttons {
			r.buttons[i].found = true
		}
	}
}

func (r *buttonTextRule) Text(ctx *Context, t *Text) {
	if t.HasContent() {
		for i := range r.buttons {
			r.buttons[i].found = true
		}
	}
}

func (r *buttonTextRule) Close(ctx *Context, el *Element) {
	if el.Tag != "button" || len(r.buttons) == 0 {
		return
	}
	top := r.buttons[len(r.buttons)-1]
	r.buttons = r.buttons[:len(r.buttons)-1]
	if !top.found && !top.labeled {
		ctx.Report(r.ID(), top.line, top.col, "<button> has no accessible text")
	}
}

func markAll(scopes []openScope) {
	for i := range scopes {
		scopes[i].found = true
	}
}
