// Package parser wraps tree-sitter for JSX/TSX component files and exposes
// the JSX structure the rule engine and graph builder consume: element
// open/close events, attribute values as literal-or-dynamic variants,
// import bindings, and comments.
package parser

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
)

// Parser wraps a tree-sitter parser configured for TSX. The tsx grammar
// is a superset that also handles plain JS/TS and JSX sources.
type Parser struct {
	parser *sitter.Parser
}

// New creates a parser for JSX/TSX component files
func New() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(tsx.GetLanguage())
	return &Parser{parser: p}
}

// Close frees parser resources
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
}

// File is one parsed source file. Callers must Close it when done.
type File struct {
	Filename string
	Source   []byte
	tree     *sitter.Tree
}

// ParseFile parses a JSX/TSX source file
func (p *Parser) ParseFile(filename string, source []byte) (*File, error) {
	tree, err := p.parser.ParseCtx(context.Background(), nil, source)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse file %s: %v", filename, err)
	}
	if tree.RootNode() == nil {
		tree.Close()
		return nil, fmt.Errorf("no root node in parse tree for %s", filename)
	}
	return &File{Filename: filename, Source: source, tree: tree}, nil
}

// ParseString parses source code from a string
func (p *Parser) ParseString(source string) (*File, error) {
	return p.ParseFile("<input>", []byte(source))
}

// Root returns the root syntax node
func (f *File) Root() *sitter.Node {
	return f.tree.RootNode()
}

// Text returns the source text covered by a node
func (f *File) Text(n *sitter.Node) string {
	return n.Content(f.Source)
}

// Close frees the underlying syntax tree
func (f *File) Close() {
	if f.tree != nil {
		f.tree.Close()
		f.tree = nil
	}
}

// Comment is one source comment with its 0-based start position.
type Comment struct {
	Text string
	Line int
	Col  int
}

// Comments returns every comment in the file in document order, including
// comments inside JSX expression containers ({/* ... */}).
func (f *File) Comments() []Comment {
	var comments []Comment
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n.Type() == "comment" {
			comments = append(comments, Comment{
				Text: f.Text(n),
				Line: int(n.StartPoint().Row),
				Col:  int(n.StartPoint().Column),
			})
			return
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(f.Root())
	return comments
}

// stripQuotes removes surrounding string delimiters from a raw literal.
func stripQuotes(raw string) string {
	if len(raw) >= 2 {
		first, last := raw[0], raw[len(raw)-1]
		if first == last && (first == '"' || first == '\'' || first == '`') {
			return raw[1 : len(raw)-1]
		}
	}
	return raw
}

// isCapitalized reports whether a JSX tag name refers to a component.
// Member expressions (Foo.Bar) always do.
func isCapitalized(name string) bool {
	if name == "" {
		return false
	}
	if strings.Contains(name, ".") {
		return true
	}
	c := name[0]
	return c >= 'A' && c <= 'Z'
}
