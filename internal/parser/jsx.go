package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// AttrValueKind discriminates attribute value variants.
type AttrValueKind int

const (
	// AttrLiteral is a statically known string value. A bare attribute
	// is a literal with an empty string.
	AttrLiteral AttrValueKind = iota

	// AttrDynamic marks a JS expression value whose content cannot be
	// statically verified. Rules must not assume it empty or non-empty.
	AttrDynamic
)

// AttrValue is a tagged variant: Literal(string) or Dynamic.
type AttrValue struct {
	Kind    AttrValueKind
	Literal string
}

// LiteralValue constructs a literal attribute value
func LiteralValue(s string) AttrValue {
	return AttrValue{Kind: AttrLiteral, Literal: s}
}

// DynamicValue constructs a dynamic attribute value marker
func DynamicValue() AttrValue {
	return AttrValue{Kind: AttrDynamic}
}

// IsBlank reports whether the value is a literal that is empty or
// whitespace-only. Dynamic values are never blank.
func (v AttrValue) IsBlank() bool {
	if v.Kind == AttrDynamic {
		return false
	}
	for _, r := range v.Literal {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

// JSXAttr is one attribute on a JSX element.
type JSXAttr struct {
	Name  string
	Value AttrValue
}

// JSXElement is one element occurrence in a component file.
type JSXElement struct {
	// Name is the tag as written: lower-case host tags, capitalized
	// component references.
	Name string

	// Component is true for capitalized tags and member expressions.
	Component bool

	Attrs []JSXAttr

	// HasSpread marks elements carrying a {...props} spread; attribute
	// absence cannot be verified on such elements.
	HasSpread bool

	Line, Col   int
	SelfClosing bool
}

// Attr returns the named attribute's value and whether it is present.
func (e *JSXElement) Attr(name string) (AttrValue, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return AttrValue{}, false
}

// JSXText is literal text or an expression child inside JSX children.
type JSXText struct {
	Value   string
	Dynamic bool
	Line    int
	Col     int
}

// JSXVisitor receives JSX structure events in document order. Open and
// Close are always paired, immediately so for self-closing elements.
type JSXVisitor interface {
	OpenElement(el *JSXElement)
	Text(t *JSXText)
	CloseElement(el *JSXElement)
}

// WalkJSX traverses the file and emits JSX events to the visitor. JSX
// nested inside expressions ({cond && <div/>}) is reached as well.
func WalkJSX(f *File, v JSXVisitor) {
	walkJSXNode(f, f.Root(), v, false)
}

func walkJSXNode(f *File, n *sitter.Node, v JSXVisitor, inChildren bool) {
	switch n.Type() {
	case "jsx_element":
		opening := n.NamedChild(0)
		if opening == nil || opening.Type() != "jsx_opening_element" {
			walkChildren(f, n, v, false)
			return
		}
		el := buildElement(f, opening, false)
		v.OpenElement(el)
		for i := 1; i < int(n.NamedChildCount()); i++ {
			c := n.NamedChild(i)
			if c.Type() == "jsx_closing_element" {
				continue
			}
			walkJSXNode(f, c, v, true)
		}
		v.CloseElement(el)

	case "jsx_self_closing_element":
		el := buildElement(f, n, true)
		v.OpenElement(el)
		v.CloseElement(el)

	case "jsx_fragment":
		// Fragments contribute no element of their own.
		walkChildren(f, n, v, true)

	case "jsx_text":
		v.Text(&JSXText{
			Value: f.Text(n),
			Line:  int(n.StartPoint().Row),
			Col:   int(n.StartPoint().Column),
		})

	case "jsx_expression":
		if inChildren && hasNonCommentChild(n) {
			// {expr} as a child conservatively counts as content.
			v.Text(&JSXText{
				Dynamic: true,
				Line:    int(n.StartPoint().Row),
				Col:     int(n.StartPoint().Column),
			})
		}
		walkChildren(f, n, v, false)

	default:
		walkChildren(f, n, v, false)
	}
}

func walkChildren(f *File, n *sitter.Node, v JSXVisitor, inChildren bool) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		walkJSXNode(f, n.NamedChild(i), v, inChildren)
	}
}

func hasNonCommentChild(n *sitter.Node) bool {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if n.NamedChild(i).Type() != "comment" {
			return true
		}
	}
	return false
}

// buildElement assembles a JSXElement from an opening (or self-closing)
// element node. The grammar folds whitespace preceding an element into its
// extent, so the position is anchored on the tag name instead, backed up
// one column for the "<".
func buildElement(f *File, opening *sitter.Node, selfClosing bool) *JSXElement {
	el := &JSXElement{
		Line:        int(opening.StartPoint().Row),
		Col:         int(opening.StartPoint().Column),
		SelfClosing: selfClosing,
	}

	if name := opening.ChildByFieldName("name"); name != nil {
		el.Name = f.Text(name)
		p := name.StartPoint()
		el.Line = int(p.Row)
		el.Col = int(p.Column)
		if el.Col > 0 {
			el.Col--
		}
	}
	el.Component = isCapitalized(el.Name)

	for i := 0; i < int(opening.NamedChildCount()); i++ {
		c := opening.NamedChild(i)
		switch c.Type() {
		case "jsx_attribute":
			el.Attrs = append(el.Attrs, buildAttr(f, c))
		case "jsx_expression":
			// {...props} spread: attribute absence is unverifiable.
			el.HasSpread = true
		}
	}
	return el
}

func buildAttr(f *File, n *sitter.Node) JSXAttr {
	attr := JSXAttr{Value: LiteralValue("")}
	if name := n.NamedChild(0); name != nil {
		attr.Name = f.Text(name)
	}
	if n.NamedChildCount() < 2 {
		// Bare attribute: present but empty, matching the HTML backend.
		return attr
	}

	value := n.NamedChild(1)
	switch value.Type() {
	case "string":
		attr.Value = LiteralValue(stripQuotes(f.Text(value)))
	case "jsx_expression":
		// An expression container holding exactly a string literal is
		// still statically known; anything else is dynamic.
		if value.NamedChildCount() == 1 && value.NamedChild(0).Type() == "string" {
			attr.Value = LiteralValue(stripQuotes(f.Text(value.NamedChild(0))))
		} else {
			attr.Value = DynamicValue()
		}
	default:
		attr.Value = DynamicValue()
	}
	return attr
}
