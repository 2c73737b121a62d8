package domain

// Position is a 0-based (line, column) pair within one file.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// HeadingInfo records one heading element found directly in a file.
type HeadingInfo struct {
	// Level is the numeric N of tag hN, 1-6.
	Level    int    `json:"level"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	FilePath string `json:"file_path"`
}

// ComponentReference records a capitalized JSX tag usage within one file.
// Repeat usages of the same name collapse into a single reference.
type ComponentReference struct {
	// Name is the tag identifier as written (e.g. "Button").
	Name string `json:"name"`

	// Path is the resolved absolute file path, or "" if unresolved.
	Path string `json:"path,omitempty"`

	// RawImportPath is the literal import source string.
	RawImportPath string `json:"raw_import_path,omitempty"`

	// SourceLocation is the first-seen usage position.
	SourceLocation Position `json:"source_location"`

	// UsageLocations holds every JSX usage position in document order.
	UsageLocations []Position `json:"usage_locations"`
}

// ComponentDefinition is one JSX/TSX file's graph-building analysis result.
// It is replaced wholesale whenever the file is re-linted, so stale
// structural data never survives a re-scan.
type ComponentDefinition struct {
	// Name is derived from the file base name.
	Name string `json:"name"`

	// FilePath is the absolute path of the component file.
	FilePath string `json:"file_path"`

	// Issues maps rule id to local results found in this file.
	Issues map[RuleID][]LintResult `json:"issues,omitempty"`

	// UsesComponents lists the component references found in this file.
	UsesComponents []*ComponentReference `json:"uses_components,omitempty"`

	// Headings are the headings found directly in this file, in document
	// order, not including headings contributed by child components.
	Headings []HeadingInfo `json:"headings,omitempty"`
}

// LocalH1s returns this file's own <h1> headings.
func (d *ComponentDefinition) LocalH1s() []HeadingInfo {
	var h1s []HeadingInfo
	for _, h := range d.Headings {
		if h.Level == 1 {
			h1s = append(h1s, h)
		}
	}
	return h1s
}

// AddIssue appends a local result under its rule id.
func (d *ComponentDefinition) AddIssue(result LintResult) {
	if d.Issues == nil {
		d.Issues = make(map[RuleID][]LintResult)
	}
	d.Issues[result.Rule] = append(d.Issues[result.Rule], result)
}

// ReferenceByPath returns the reference whose resolved path matches, or nil.
func (d *ComponentDefinition) ReferenceByPath(path string) *ComponentReference {
	if path == "" {
		return nil
	}
	for _, ref := range d.UsesComponents {
		if ref.Path == path {
			return ref
		}
	}
	return nil
}
