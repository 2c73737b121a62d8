// Package graph builds and analyzes the component import/usage graph.
// Per-file analysis populates a shared registry of component definitions;
// the cross-component analyzer then re-derives document-level heading
// properties as if components were inlined at their usage sites, without
// materializing the inlined tree.
package graph

import (
	"sort"
	"sync"

	"github.com/zemdomu/zemdomu/domain"
)

// Registry maps absolute file paths to component definitions. It is shared
// mutable state across one batch; writes replace a file's definition
// wholesale so readers never observe a half-populated entry. Callers
// needing isolation construct a fresh registry.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]*domain.ComponentDefinition
}

// NewRegistry creates an empty component registry
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*domain.ComponentDefinition)}
}

// Put replaces the definition for its file path.
func (r *Registry) Put(def *domain.ComponentDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs[def.FilePath] = def
}

// Get returns the definition for a path, or nil when the file has not
// been scanned. Dangling references resolve to nil and are treated as
// opaque leaves by the analyzer.
func (r *Registry) Get(path string) *domain.ComponentDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defs[path]
}

// Paths returns every registered file path in sorted order.
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	paths := make([]string, 0, len(r.defs))
	for p := range r.defs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Len returns the number of registered components.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

// Clear removes every definition, isolating subsequent scans.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs = make(map[string]*domain.ComponentDefinition)
}
