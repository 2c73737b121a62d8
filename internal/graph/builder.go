package graph

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zemdomu/zemdomu/domain"
	"github.com/zemdomu/zemdomu/internal/parser"
	"github.com/zemdomu/zemdomu/internal/rules"
)

// Builder analyzes one component file at a time: import bindings, heading
// inventory, component usages, and local heading-order issues. Results are
// registered into the shared registry, replacing any prior entry for the
// same path, so repeated analysis of a file is an idempotent replace.
type Builder struct {
	registry *Registry
	resolver *Resolver
}

// NewBuilder creates a builder writing into the given registry.
func NewBuilder(registry *Registry, resolver *Resolver) *Builder {
	return &Builder{registry: registry, resolver: resolver}
}

// Analyze parses one JSX/TSX file and registers its component definition.
// A parse failure leaves the registry untouched for that path.
func (b *Builder) Analyze(filePath string, content []byte) (*domain.ComponentDefinition, error) {
	p := parser.New()
	defer p.Close()

	f, err := p.ParseFile(filePath, content)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze component %s: %w", filePath, err)
	}
	defer f.Close()

	def := &domain.ComponentDefinition{
		Name:     componentName(filePath),
		FilePath: filePath,
	}

	// Import sources keyed by capitalized local binding name.
	sources := make(map[string]string)
	for _, imp := range f.CollectImports() {
		for _, binding := range imp.Bindings {
			if isComponentName(binding.Name) {
				sources[binding.Name] = imp.Source
			}
		}
	}

	c := &usageCollector{def: def}
	parser.WalkJSX(f, c)

	for _, ref := range def.UsesComponents {
		if source, ok := sources[baseIdentifier(ref.Name)]; ok {
			ref.RawImportPath = source
			if b.resolver != nil {
				ref.Path = b.resolver.Resolve(filePath, source)
			}
		}
	}

	b.recordLocalHeadingIssues(def)
	b.registry.Put(def)
	return def, nil
}

// usageCollector walks the JSX once, recording headings found directly in
// the file and merging repeated component usages into one reference each.
type usageCollector struct {
	def  *domain.ComponentDefinition
	refs map[string]*domain.ComponentReference
}

func (c *usageCollector) OpenElement(el *parser.JSXElement) {
	if el.Component {
		c.recordUsage(el)
		return
	}
	if level := rules.HeadingLevel(el.Name); level > 0 {
		c.def.Headings = append(c.def.Headings, domain.HeadingInfo{
			Level:    level,
			Line:     el.Line,
			Column:   el.Col,
			FilePath: c.def.FilePath,
		})
	}
}

func (c *usageCollector) Text(*parser.JSXText)            {}
func (c *usageCollector) CloseElement(*parser.JSXElement) {}

func (c *usageCollector) recordUsage(el *parser.JSXElement) {
	if c.refs == nil {
		c.refs = make(map[string]*domain.ComponentReference)
	}
	pos := domain.Position{Line: el.Line, Column: el.Col}
	ref, ok := c.refs[el.Name]
	if !ok {
		ref = &domain.ComponentReference{Name: el.Name, SourceLocation: pos}
		c.refs[el.Name] = ref
		c.def.UsesComponents = append(c.def.UsesComponents, ref)
	}
	ref.UsageLocations = append(ref.UsageLocations, pos)
}

// recordLocalHeadingIssues checks this file's own headings for level skips
// and records them the same way the rule engine does, so graph analysis
// carries per-file structure even when single-file linting is skipped.
func (b *Builder) recordLocalHeadingIssues(def *domain.ComponentDefinition) {
	headings := append([]domain.HeadingInfo(nil), def.Headings...)
	sort.SliceStable(headings, func(i, j int) bool {
		if headings[i].Line != headings[j].Line {
			return headings[i].Line < headings[j].Line
		}
		return headings[i].Column < headings[j].Column
	})

	last := 0
	for _, h := range headings {
		if last > 0 && h.Level > last+1 {
			def.AddIssue(domain.LintResult{
				Line:    h.Line,
				Column:  h.Column,
				Message: fmt.Sprintf("Heading level skipped: <h%d> follows <h%d>", h.Level, last),
				Rule:    domain.RuleEnforceHeadingOrder,
			})
		}
		last = h.Level
	}
}

// componentName derives a component name from the file base name.
func componentName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// baseIdentifier reduces a member expression tag (UI.Button) to the
// binding that imports resolve against.
func baseIdentifier(name string) string {
	if i := strings.Index(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}

func isComponentName(name string) bool {
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}
