// Package markup builds a lightweight DOM-like tree from raw HTML text.
// It tokenizes with golang.org/x/net/html and assembles elements with a
// tolerant stack: mismatched or extra closes are ignored rather than
// reported, and the synthetic root is never popped.
package markup

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// NodeType discriminates tree node variants.
type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
	CommentNode
)

// Attr is one attribute as written in the source. A bare attribute
// (`disabled`) is recorded with an empty Value, so callers can distinguish
// "present but empty" from "absent" via Element lookup.
type Attr struct {
	Name  string
	Value string
}

// Node is one node of the parsed tree. Nodes are immutable after Parse
// returns and are owned by the single parse invocation that produced them.
type Node struct {
	Type NodeType

	// Tag is the case-normalized element name; empty for text/comments.
	Tag string

	// Attrs preserves source order.
	Attrs []Attr

	// Data holds text or comment content.
	Data string

	Children    []*Node
	Offset      int
	SelfClosing bool
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Document is the result of one parse: a synthetic root plus a line index
// for converting byte offsets to 0-based (line, column) positions.
type Document struct {
	Root  *Node
	lines *lineIndex
}

// Position converts a byte offset into a 0-based (line, column) pair.
func (d *Document) Position(offset int) (line, col int) {
	return d.lines.position(offset)
}

// Void elements never take children; treating them as self-closing keeps
// following siblings from being swallowed as their descendants.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Parse tokenizes src and builds the document tree. It is tolerant of
// unclosed and mismatched tags; tag-nesting legality is not validated here.
func Parse(src []byte) (*Document, error) {
	z := html.NewTokenizer(bytes.NewReader(src))
	root := &Node{Type: ElementNode, Tag: "#document"}
	stack := []*Node{root}
	offset := 0

	appendChild := func(n *Node) {
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, n)
	}

	for {
		tt := z.Next()
		start := offset
		offset += len(z.Raw())

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return &Document{Root: root, lines: newLineIndex(src)}, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			el := &Node{
				Type:        ElementNode,
				Tag:         tok.Data,
				Offset:      start,
				SelfClosing: tt == html.SelfClosingTagToken,
			}
			for _, a := range tok.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: a.Key, Value: a.Val})
			}
			if voidElements[el.Tag] {
				el.SelfClosing = true
			}
			appendChild(el)
			if !el.SelfClosing {
				stack = append(stack, el)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := strings.ToLower(string(name))
			// Pop through the nearest matching open element; ignore the
			// close entirely when nothing on the stack matches.
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].Tag == tag {
					stack = stack[:i]
					break
				}
			}

		case html.TextToken:
			text := string(z.Text())
			appendChild(&Node{Type: TextNode, Data: text, Offset: start})

		case html.CommentToken:
			appendChild(&Node{Type: CommentNode, Data: string(z.Text()), Offset: start})

		case html.DoctypeToken:
			// Ignored; doctypes carry nothing the rules inspect.
		}
	}
}

// lineIndex maps byte offsets to line starts.
type lineIndex struct {
	starts []int
}

func newLineIndex(src []byte) *lineIndex {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts}
}

func (li *lineIndex) position(offset int) (line, col int) {
	if offset < 0 {
		return 0, 0
	}
	lo, hi := 0, len(li.starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if li.starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, offset - li.starts[lo]
}
