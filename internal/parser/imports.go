package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// ImportBinding is one local name introduced by an import statement.
type ImportBinding struct {
	Name string
	Line int
	Col  int
}

// Import is one static import statement.
type Import struct {
	// Source is the module specifier as written (quotes stripped).
	Source string

	Line int
	Col  int

	// Bindings are the local names the import introduces: the default
	// binding, the namespace binding, or each named specifier's local
	// alias.
	Bindings []ImportBinding
}

// CollectImports extracts every static import declaration in the file.
// Dynamic import() and require() calls are not resolved; runtime-computed
// component names are out of scope.
func (f *File) CollectImports() []Import {
	var imports []Import
	root := f.Root()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		n := root.NamedChild(i)
		if n.Type() != "import_statement" {
			continue
		}
		imp := f.buildImport(n)
		if imp.Source != "" {
			imports = append(imports, imp)
		}
	}
	return imports
}

func (f *File) buildImport(n *sitter.Node) Import {
	imp := Import{
		Line: int(n.StartPoint().Row),
		Col:  int(n.StartPoint().Column),
	}
	if source := n.ChildByFieldName("source"); source != nil {
		imp.Source = stripQuotes(f.Text(source))
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() != "import_clause" {
			continue
		}
		for j := 0; j < int(c.NamedChildCount()); j++ {
			spec := c.NamedChild(j)
			switch spec.Type() {
			case "identifier":
				// Default import: import Button from './Button'
				imp.Bindings = append(imp.Bindings, f.binding(spec))
			case "namespace_import":
				// import * as UI from './ui'
				for k := 0; k < int(spec.NamedChildCount()); k++ {
					if ident := spec.NamedChild(k); ident.Type() == "identifier" {
						imp.Bindings = append(imp.Bindings, f.binding(ident))
					}
				}
			case "named_imports":
				for k := 0; k < int(spec.NamedChildCount()); k++ {
					s := spec.NamedChild(k)
					if s.Type() != "import_specifier" {
						continue
					}
					// The local name is the alias when present.
					local := s.ChildByFieldName("alias")
					if local == nil {
						local = s.ChildByFieldName("name")
					}
					if local != nil {
						imp.Bindings = append(imp.Bindings, f.binding(local))
					}
				}
			}
		}
	}
	return imp
}

func (f *File) binding(n *sitter.Node) ImportBinding {
	return ImportBinding{
		Name: f.Text(n),
		Line: int(n.StartPoint().Row),
		Col:  int(n.StartPoint().Column),
	}
}
