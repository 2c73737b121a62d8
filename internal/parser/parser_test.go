package parser

import (
	"testing"
)

func parseSource(t *testing.T, source string) *File {
	t.Helper()
	p := New()
	defer p.Close()

	f, err := p.ParseString(source)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	t.Cleanup(f.Close)
	return f
}

// eventRecorder collects JSX events for assertions.
type eventRecorder struct {
	opens  []*JSXElement
	texts  []*JSXText
	closes []*JSXElement
}

func (r *eventRecorder) OpenElement(el *JSXElement)  { r.opens = append(r.opens, el) }
func (r *eventRecorder) Text(t *JSXText)             { r.texts = append(r.texts, t) }
func (r *eventRecorder) CloseElement(el *JSXElement) { r.closes = append(r.closes, el) }

func TestCollectImports(t *testing.T) {
	f := parseSource(t, `
import Button from './Button';
import { Card, Panel as SidePanel } from '../widgets';
import * as UI from '@/ui';
import './styles.css';
`)

	imports := f.CollectImports()
	if len(imports) != 4 {
		t.Fatalf("expected 4 imports, got %d", len(imports))
	}

	if imports[0].Source != "./Button" || len(imports[0].Bindings) != 1 ||
		imports[0].Bindings[0].Name != "Button" {
		t.Errorf("default import wrong: %+v", imports[0])
	}

	if len(imports[1].Bindings) != 2 {
		t.Fatalf("expected 2 named bindings, got %+v", imports[1].Bindings)
	}
	if imports[1].Bindings[0].Name != "Card" || imports[1].Bindings[1].Name != "SidePanel" {
		t.Errorf("named import locals wrong: %+v", imports[1].Bindings)
	}

	if imports[2].Bindings[0].Name != "UI" {
		t.Errorf("namespace import wrong: %+v", imports[2])
	}

	if len(imports[3].Bindings) != 0 {
		t.Errorf("side-effect import should have no bindings: %+v", imports[3])
	}
}

func TestWalkJSX_ElementsAndComponents(t *testing.T) {
	f := parseSource(t, `
export function Page() {
  return (
    <main>
      <h1>Title</h1>
      <Button label="ok" />
    </main>
  );
}
`)

	rec := &eventRecorder{}
	WalkJSX(f, rec)

	if len(rec.opens) != 3 {
		t.Fatalf("expected 3 opens, got %d", len(rec.opens))
	}
	if rec.opens[0].Name != "main" || rec.opens[0].Component {
		t.Errorf("main should be a host element: %+v", rec.opens[0])
	}
	if rec.opens[1].Name != "h1" {
		t.Errorf("expected h1, got %q", rec.opens[1].Name)
	}
	btn := rec.opens[2]
	if btn.Name != "Button" || !btn.Component || !btn.SelfClosing {
		t.Errorf("Button should be a self-closing component: %+v", btn)
	}
	if v, ok := btn.Attr("label"); !ok || v.Kind != AttrLiteral || v.Literal != "ok" {
		t.Errorf("label attr wrong: %+v", v)
	}

	if len(rec.closes) != 3 {
		t.Errorf("opens and closes must pair: %d closes", len(rec.closes))
	}
}

func TestWalkJSX_PositionsAnchorOnTag(t *testing.T) {
	f := parseSource(t, `
export function Page() {
  return (
    <main>
      <h1>Title</h1>
      <Button />
    </main>
  );
}
`)

	rec := &eventRecorder{}
	WalkJSX(f, rec)

	if len(rec.opens) != 3 {
		t.Fatalf("expected 3 opens, got %d", len(rec.opens))
	}
	// Elements on their own line must be positioned at their "<", not at
	// the preceding newline.
	want := []struct {
		name      string
		line, col int
	}{
		{"main", 3, 4},
		{"h1", 4, 6},
		{"Button", 5, 6},
	}
	for i, w := range want {
		got := rec.opens[i]
		if got.Name != w.name || got.Line != w.line || got.Col != w.col {
			t.Errorf("open %d = %s (%d,%d), want %s (%d,%d)",
				i, got.Name, got.Line, got.Col, w.name, w.line, w.col)
		}
	}
}

func TestWalkJSX_AttributeVariants(t *testing.T) {
	f := parseSource(t, `
const x = <img alt={getAlt()} src="a.png" title={"quoted"} hidden {...rest} />;
`)

	rec := &eventRecorder{}
	WalkJSX(f, rec)

	if len(rec.opens) != 1 {
		t.Fatalf("expected 1 element, got %d", len(rec.opens))
	}
	img := rec.opens[0]

	if v, _ := img.Attr("alt"); v.Kind != AttrDynamic {
		t.Error("expression attribute should be dynamic")
	}
	if v, _ := img.Attr("src"); v.Kind != AttrLiteral || v.Literal != "a.png" {
		t.Errorf("string attribute should be literal: %+v", v)
	}
	if v, _ := img.Attr("title"); v.Kind != AttrLiteral || v.Literal != "quoted" {
		t.Errorf("string-in-braces should be literal: %+v", v)
	}
	if v, _ := img.Attr("hidden"); v.Kind != AttrLiteral || v.Literal != "" {
		t.Error("bare attribute should be present-but-empty")
	}
	if !img.HasSpread {
		t.Error("spread attribute should mark HasSpread")
	}
}

func TestWalkJSX_TextAndExpressions(t *testing.T) {
	f := parseSource(t, `
const x = (
  <a href="/home">
    {/* just a comment */}
    {props.label}
    plain
  </a>
);
`)

	rec := &eventRecorder{}
	WalkJSX(f, rec)

	var dynamic, literal int
	for _, txt := range rec.texts {
		if txt.Dynamic {
			dynamic++
		} else if len(txt.Value) > 0 {
			literal++
		}
	}
	if dynamic != 1 {
		t.Errorf("expected exactly 1 dynamic text (the comment must not count), got %d", dynamic)
	}
	if literal == 0 {
		t.Error("expected literal jsx_text event")
	}
}

func TestWalkJSX_NestedInExpression(t *testing.T) {
	f := parseSource(t, `
const x = <div>{cond && <span>inner</span>}</div>;
`)

	rec := &eventRecorder{}
	WalkJSX(f, rec)

	var sawSpan bool
	for _, el := range rec.opens {
		if el.Name == "span" {
			sawSpan = true
		}
	}
	if !sawSpan {
		t.Error("elements nested in expressions should be visited")
	}
}

func TestComments(t *testing.T) {
	f := parseSource(t, `
// zemdomu-disable-next
const x = <div>{/* zemdomu-disable */}</div>;
`)

	comments := f.Comments()
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Line != 1 {
		t.Errorf("line comment position = %d, want 1", comments[0].Line)
	}
}

func TestAttrValue_IsBlank(t *testing.T) {
	if !LiteralValue("").IsBlank() {
		t.Error("empty literal should be blank")
	}
	if !LiteralValue("  \t").IsBlank() {
		t.Error("whitespace literal should be blank")
	}
	if LiteralValue("x").IsBlank() {
		t.Error("non-empty literal should not be blank")
	}
	if DynamicValue().IsBlank() {
		t.Error("dynamic values are never blank")
	}
}
