package rules

import (
	"strings"

	"github.com/zemdomu/zemdomu/domain"
)

// requireAttr reports when a host element lacks a usable value for an
// attribute. Dynamic values pass; spread props make absence unverifiable,
// so the check is skipped.
func requireAttr(ctx *Context, id domain.RuleID, el *Element, attr, message string) {
	if el.HasSpread {
		return
	}
	v, ok := el.Attr(attr)
	if !ok || v.IsBlank() {
		ctx.Report(id, el.Line, el.Col, "%s", message)
	}
}

// altTextRule requires non-empty alt text on every <img>.
type altTextRule struct{ baseRule }

func (r *altTextRule) ID() domain.RuleID { return domain.RuleRequireAltText }

func (r *altTextRule) Open(ctx *Context, el *Element) {
	if el.Tag == "img" {
		requireAttr(ctx, r.ID(), el, "alt", "<img> is missing alt text")
	}
}

// anchorHrefRule requires a non-empty href on every <a>.
type anchorHrefRule struct{ baseRule }

func (r *anchorHrefRule) ID() domain.RuleID { return domain.RuleRequireHrefOnAnchors }

func (r *anchorHrefRule) Open(ctx *Context, el *Element) {
	if el.Tag == "a" {
		requireAttr(ctx, r.ID(), el, "href", "<a> is missing an href attribute")
	}
}

// iframeTitleRule requires a title on every <iframe>.
type iframeTitleRule struct{ baseRule }

func (r *iframeTitleRule) ID() domain.RuleID { return domain.RuleRequireIframeTitle }

func (r *iframeTitleRule) Open(ctx *Context, el *Element) {
	if el.Tag == "iframe" {
		requireAttr(ctx, r.ID(), el, "title", "<iframe> is missing a title attribute")
	}
}

// htmlLangRule requires a lang attribute on the first <html> element.
type htmlLangRule struct {
	baseRule
	seen bool
}

func (r *htmlLangRule) ID() domain.RuleID { return domain.RuleRequireHTMLLang }

func (r *htmlLangRule) Open(ctx *Context, el *Element) {
	if el.Tag != "html" || r.seen {
		return
	}
	r.seen = true
	requireAttr(ctx, r.ID(), el, "lang", "<html> is missing a lang attribute")
}

// imageInputAltRule requires alt text on <input type="image">.
type imageInputAltRule struct{ baseRule }

func (r *imageInputAltRule) ID() domain.RuleID { return domain.RuleRequireImageInputAlt }

func (r *imageInputAltRule) Open(ctx *Context, el *Element) {
	if el.Tag != "input" {
		return
	}
	typ, ok := el.Attr("type")
	if !ok || typ.Dynamic || !strings.EqualFold(strings.TrimSpace(typ.Literal), "image") {
		return
	}
	requireAttr(ctx, r.ID(), el, "alt", `<input type="image"> is missing alt text`)
}

// uniqueIDsRule reports the second and later occurrences of a literal id
// value. Dynamic ids and component props are not comparable and are skipped.
type uniqueIDsRule struct {
	baseRule
	seen map[string]bool
}

func (r *uniqueIDsRule) ID() domain.RuleID { return domain.RuleUniqueIDs }

func (r *uniqueIDsRule) Open(ctx *Context, el *Element) {
	if el.Component {
		return
	}
	v, ok := el.Attr("id")
	if !ok || v.Dynamic || strings.TrimSpace(v.Literal) == "" {
		return
	}
	if r.seen == nil {
		r.seen = make(map[string]bool)
	}
	if r.seen[v.Literal] {
		ctx.Report(r.ID(), el.Line, el.Col, "Duplicate id %q", v.Literal)
		return
	}
	r.seen[v.Literal] = true
}
