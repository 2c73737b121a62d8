package rules

import (
	"github.com/zemdomu/zemdomu/domain"
)

// openScope tracks one open container awaiting required content.
type openScope struct {
	line, col int
	found     bool
}

// sectionHeadingRule reports sections that close without any descendant
// heading. Nested sections each need their own heading, so a heading marks
// every section open at the time it appears.
type sectionHeadingRule struct {
	baseRule
	sections []openScope
}

func (r *sectionHeadingRule) ID() domain.RuleID { return domain.RuleRequireSectionHeading }

func (r *sectionHeadingRule) Open(ctx *Context, el *Element) {
	if el.Tag == "section" {
		r.sections = append(r.sections, openScope{line: el.Line, col: el.Col})
		return
	}
	if HeadingLevel(el.Tag) > 0 {
		for i := range r.sections {
			r.sections[i].found = true
		}
	}
}

func (r *sectionHeadingRule) Close(ctx *Context, el *Element) {
	if el.Tag != "section" || len(r.sections) == 0 {
		return
	}
	top := r.sections[len(r.sections)-1]
	r.sections = r.sections[:len(r.sections)-1]
	if !top.found {
		ctx.Report(r.ID(), top.line, top.col, "<section> is missing a heading")
	}
}

// headingOrderRule reports heading levels that skip past the previously
// opened heading's level plus one.
type headingOrderRule struct {
	baseRule
	lastLevel int
}

func (r *headingOrderRule) ID() domain.RuleID { return domain.RuleEnforceHeadingOrder }

func (r *headingOrderRule) Open(ctx *Context, el *Element) {
	level := HeadingLevel(el.Tag)
	if level == 0 {
		return
	}
	if r.lastLevel > 0 && level > r.lastLevel+1 {
		ctx.Report(r.ID(), el.Line, el.Col,
			"Heading level skipped: <h%d> follows <h%d>", level, r.lastLevel)
	}
	r.lastLevel = level
}

// singleH1Rule reports every <h1> after the first in one file.
type singleH1Rule struct {
	baseRule
	count int
}

func (r *singleH1Rule) ID() domain.RuleID { return domain.RuleSingleH1 }

func (r *singleH1Rule) Open(ctx *Context, el *Element) {
	if el.Tag != "h1" {
		return
	}
	r.count++
	if r.count > 1 {
		ctx.Report(r.ID(), el.Line, el.Col, "Multiple <h1> elements in one document")
	}
}

// listNestingRule reports <li> elements whose immediate parent is not a
// list container. It keeps its own tag stack since rules do not share
// traversal state. A component parent may render a list wrapper, so it
// suppresses the check.
type listNestingRule struct {
	baseRule
	stack []string
	comps []bool
}

func (r *listNestingRule) ID() domain.RuleID { return domain.RuleEnforceListNesting }

func (r *listNestingRule) Open(ctx *Context, el *Element) {
	if el.Tag == "li" {
		if n := len(r.stack); n == 0 || (!r.comps[n-1] && r.stack[n-1] != "ul" && r.stack[n-1] != "ol") {
			ctx.Report(r.ID(), el.Line, el.Col, "<li> must be inside <ul> or <ol>")
		}
	}
	r.stack = append(r.stack, el.Tag)
	r.comps = append(r.comps, el.Component)
}

func (r *listNestingRule) Close(ctx *Context, el *Element) {
	if len(r.stack) > 0 {
		r.stack = r.stack[:len(r.stack)-1]
		r.comps = r.comps[:len(r.comps)-1]
	}
}

// tableCaptionRule reports tables that close without a <caption> child.
// A caption satisfies only the innermost open table.
type tableCaptionRule struct {
	baseRule
	tables []openScope
}

func (r *tableCaptionRule) ID() domain.RuleID { return domain.RuleRequireTableCaption }

func (r *tableCaptionRule) Open(ctx *Context, el *Element) {
	switch el.Tag {
	case "table":
		r.tables = append(r.tables, openScope{line: el.Line, col: el.Col})
	case "caption":
		if len(r.tables) > 0 {
			r.tables[len(r.tables)-1].found = true
		}
	}
}

func (r *tableCaptionRule) Close(ctx *Context, el *Element) {
	if el.Tag != "table" || len(r.tables) == 0 {
		return
	}
	top := r.tables[len(r.tables)-1]
	r.tables = r.tables[:len(r.tables)-1]
	if !top.found {
		ctx.Report(r.ID(), top.line, top.col, "<table> is missing a <caption>")
	}
}

// navLinksRule reports <nav> landmarks that close without any descendant
// anchor. A component descendant may render links, so it counts as one.
type navLinksRule struct {
	baseRule
	navs []openScope
}

func (r *navLinksRule) ID() domain.RuleID { return domain.RuleRequireNavLinks }

func (r *navLinksRule) Open(ctx *Context, el *Element) {
	if el.Tag == "nav" {
		r.navs = append(r.navs, openScope{line: el.Line, col: el.Col})
		return
	}
	if el.Tag == "a" || el.Component {
		for i := range r.navs {
			r.navs[i].found = true
		}
	}
}

func (r *navLinksRule) Close(ctx *Context, el *Element) {
	if el.Tag != "nav" || len(r.navs) == 0 {
		return
	}
	top := r.navs[len(r.navs)-1]
	r.navs = r.navs[:len(r.navs)-1]
	if !top.found {
		ctx.Report(r.ID(), top.line, top.col, "<nav> contains no links")
	}
}
