package graph

import (
	"fmt"
	"sort"

	"github.com/zemdomu/zemdomu/domain"
)

// DefaultMaxDepth bounds cross-component traversal when no depth is
// configured.
const DefaultMaxDepth = 10

// Analyzer re-derives document-level heading properties across component
// boundaries. It runs once per batch, after every file has populated the
// registry; components with unresolved or unscanned paths are opaque
// leaves, never errors.
type Analyzer struct {
	registry   *Registry
	severities map[domain.RuleID]domain.Severity
	maxDepth   int
}

// NewAnalyzer creates an analyzer over a populated registry.
func NewAnalyzer(registry *Registry, severities map[domain.RuleID]domain.Severity, maxDepth int) *Analyzer {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if severities == nil {
		severities = domain.DefaultSeverities()
	}
	return &Analyzer{registry: registry, severities: severities, maxDepth: maxDepth}
}

// EntryPoints returns the registered files never referenced by any other
// registered file's usages, in sorted order. They are treated as document
// roots.
func (a *Analyzer) EntryPoints() []string {
	referenced := make(map[string]bool)
	paths := a.registry.Paths()
	for _, p := range paths {
		def := a.registry.Get(p)
		if def == nil {
			continue
		}
		for _, ref := range def.UsesComponents {
			if ref.Path != "" && ref.Path != p {
				referenced[ref.Path] = true
			}
		}
	}

	var entries []string
	for _, p := range paths {
		if !referenced[p] {
			entries = append(entries, p)
		}
	}
	sort.Strings(entries)
	return entries
}

// Analyze runs the cross-component checks from every entry point and
// returns results with FilePath set to the file each is attributed to.
func (a *Analyzer) Analyze() []domain.LintResult {
	var results []domain.LintResult
	for _, entry := range a.EntryPoints() {
		if a.severities[domain.RuleSingleH1] != domain.SeverityOff {
			results = append(results, a.checkSingleH1(entry)...)
		}
		if a.severities[domain.RuleEnforceHeadingOrder] != domain.SeverityOff {
			results = append(results, a.checkHeadingOrder(entry)...)
		}
	}
	return results
}

// checkSingleH1 flags every component beyond the first, in reach order,
// that renders its own <h1>. The diagnostic lands on the component's first
// usage in the entry file when a direct edge exists, else on the
// component's own <h1>.
func (a *Analyzer) checkSingleH1(entry string) []domain.LintResult {
	reachable := a.reachable(entry)

	var withH1 []*domain.ComponentDefinition
	for _, def := range reachable {
		if len(def.LocalH1s()) > 0 {
			withH1 = append(withH1, def)
		}
	}
	if len(withH1) < 2 {
		return nil
	}

	entryDef := a.registry.Get(entry)
	var results []domain.LintResult
	for _, def := range withH1[1:] {
		h1 := def.LocalH1s()[0]
		result := domain.LintResult{
			Message:  fmt.Sprintf("Multiple <h1> elements: component <%s> renders an additional <h1>", def.Name),
			Rule:     domain.RuleSingleH1,
			Severity: a.severities[domain.RuleSingleH1],
			Related: []domain.RelatedLocation{{
				FilePath: h1.FilePath,
				Line:     h1.Line,
				Column:   h1.Column,
				Message:  "the extra <h1> is rendered here",
			}},
		}
		if ref := entryDef.ReferenceByPath(def.FilePath); ref != nil && len(ref.UsageLocations) > 0 {
			result.FilePath = entry
			result.Line = ref.UsageLocations[0].Line
			result.Column = ref.UsageLocations[0].Column
		} else {
			result.FilePath = def.FilePath
			result.Line = h1.Line
			result.Column = h1.Column
		}
		results = append(results, result)
	}
	return results
}

// reachable collects the components reachable from an entry point in
// depth-first preorder, entry first, each at most once.
func (a *Analyzer) reachable(entry string) []*domain.ComponentDefinition {
	var order []*domain.ComponentDefinition
	visited := make(map[string]bool)

	var visit func(path string, depth int)
	visit = func(path string, depth int) {
		if depth > a.maxDepth || visited[path] {
			return
		}
		def := a.registry.Get(path)
		if def == nil {
			return
		}
		visited[path] = true
		order = append(order, def)
		for _, ref := range def.UsesComponents {
			if ref.Path != "" {
				visit(ref.Path, depth+1)
			}
		}
	}
	visit(entry, 0)
	return order
}

// mergedHeading is one heading in an entry point's logical document:
// the heading itself plus the entry-file position it is attributed to.
type mergedHeading struct {
	level   int
	source  domain.HeadingInfo
	attr    domain.Position
	attrTo  string
	inlined bool
}

// checkHeadingOrder walks the merged heading sequence of one entry point
// and reports level skips that only appear once components compose. Skips
// between two of the entry's own adjacent headings are left to the
// single-file rule.
func (a *Analyzer) checkHeadingOrder(entry string) []domain.LintResult {
	merged := a.flatten(entry, map[string]bool{}, 0)

	var results []domain.LintResult
	last := 0
	lastInlined := false
	for _, h := range merged {
		if last > 0 && h.level > last+1 && (h.inlined || lastInlined) {
			results = append(results, domain.LintResult{
				Line:     h.attr.Line,
				Column:   h.attr.Column,
				Message:  fmt.Sprintf("Heading level skipped across components: <h%d> follows <h%d>", h.level, last),
				Rule:     domain.RuleEnforceHeadingOrder,
				Severity: a.severities[domain.RuleEnforceHeadingOrder],
				FilePath: h.attrTo,
				Related: []domain.RelatedLocation{{
					FilePath: h.source.FilePath,
					Line:     h.source.Line,
					Column:   h.source.Column,
					Message:  fmt.Sprintf("the <h%d> is rendered here", h.level),
				}},
			})
		}
		last = h.level
		lastInlined = h.inlined
	}
	return results
}

// flatten produces the document-ordered heading sequence for one file: its
// own headings interleaved with each child component's flattened sequence,
// ordered by the child's first usage position. Ties favor local headings.
// A component already being expanded on the current path contributes
// nothing, so cycles terminate.
func (a *Analyzer) flatten(path string, onPath map[string]bool, depth int) []mergedHeading {
	if depth > a.maxDepth || onPath[path] {
		return nil
	}
	def := a.registry.Get(path)
	if def == nil {
		return nil
	}
	onPath[path] = true
	defer delete(onPath, path)

	locals := make([]mergedHeading, 0, len(def.Headings))
	for _, h := range def.Headings {
		locals = append(locals, mergedHeading{
			level:  h.Level,
			source: h,
			attr:   domain.Position{Line: h.Line, Column: h.Column},
			attrTo: path,
		})
	}
	sort.SliceStable(locals, func(i, j int) bool {
		return positionLess(locals[i].attr, locals[j].attr)
	})

	type contribution struct {
		at       domain.Position
		headings []mergedHeading
	}
	var children []contribution
	for _, ref := range def.UsesComponents {
		if ref.Path == "" || len(ref.UsageLocations) == 0 {
			continue
		}
		sub := a.flatten(ref.Path, onPath, depth+1)
		if len(sub) == 0 {
			continue
		}
		usage := ref.UsageLocations[0]
		// Attribution bubbles up: everything a child contributes is
		// pinned to its usage site in this file.
		for i := range sub {
			sub[i].attr = usage
			sub[i].attrTo = path
			sub[i].inlined = true
		}
		children = append(children, contribution{at: usage, headings: sub})
	}
	sort.SliceStable(children, func(i, j int) bool {
		return positionLess(children[i].at, children[j].at)
	})

	// Stable merge of local headings against child contributions.
	var merged []mergedHeading
	li, ci := 0, 0
	for li < len(locals) || ci < len(children) {
		if ci >= len(children) {
			merged = append(merged, locals[li])
			li++
			continue
		}
		if li >= len(locals) {
			merged = append(merged, children[ci].headings...)
			ci++
			continue
		}
		if positionLess(children[ci].at, locals[li].attr) {
			merged = append(merged, children[ci].headings...)
			ci++
		} else {
			merged = append(merged, locals[li])
			li++
		}
	}
	return merged
}

func positionLess(a, b domain.Position) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}
