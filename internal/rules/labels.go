package rules

import (
	"strings"

	"github.com/zemdomu/zemdomu/domain"
)

// labelRule requires form controls to be labeled via aria-label or an
// associated <label for=...>. Matching is order-independent: controls are
// collected during traversal and checked against the full set of label
// targets once the file is done, so labels declared after their control
// still count.
type labelRule struct {
	baseRule
	targets map[string]bool
	pending []pendingControl
}

type pendingControl struct {
	tag       string
	id        string
	line, col int
}

var formControls = map[string]bool{
	"input": true, "select": true, "textarea": true,
}

func (r *labelRule) ID() domain.RuleID { return domain.RuleRequireLabelForFormControls }

func (r *labelRule) Open(ctx *Context, el *Element) {
	if el.Tag == "label" {
		if v, ok := el.Attr("for"); ok && !v.Dynamic && strings.TrimSpace(v.Literal) != "" {
			if r.targets == nil {
				r.targets = make(map[string]bool)
			}
			r.targets[v.Literal] = true
		}
		return
	}

	if !formControls[el.Tag] || el.HasSpread {
		return
	}
	if el.hasAccessibleLabel() {
		return
	}

	id, ok := el.Attr("id")
	if ok && id.Dynamic {
		// A computed id may match a label; cannot verify statically.
		return
	}
	ctl := pendingControl{tag: el.Tag, line: el.Line, col: el.Col}
	if ok {
		ctl.id = strings.TrimSpace(id.Literal)
	}
	r.pending = append(r.pending, ctl)
}

func (r *labelRule) Finish(ctx *Context) {
	for _, ctl := range r.pending {
		if ctl.id != "" && r.targets[ctl.id] {
			continue
		}
		ctx.Report(r.ID(), ctl.line, ctl.col, "<%s> has no associated label", ctl.tag)
	}
}
