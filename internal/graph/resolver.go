package graph

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// componentExtensions are probed in order when an import source omits one.
var componentExtensions = []string{".tsx", ".jsx", ".ts", ".js"}

// Resolver maps import source strings to absolute file paths. Resolution
// order: relative path with extension and index probing, configured alias
// tables, then a workspace-wide base name search that only applies when
// exactly one file matches. Unresolved sources are cached negatively so a
// large workspace scan never re-probes the same missing path.
type Resolver struct {
	rootDir string
	aliases []alias

	mu         sync.Mutex
	unresolved map[string]bool
	byBase     map[string][]string
	indexed    bool
}

type alias struct {
	prefix string
	dir    string
}

// NewResolver creates a resolver rooted at rootDir. Aliases map import
// prefixes to directories under the root, tsconfig "paths" style.
func NewResolver(rootDir string, aliases map[string]string) *Resolver {
	r := &Resolver{
		rootDir:    rootDir,
		unresolved: make(map[string]bool),
	}
	for prefix, dir := range aliases {
		r.aliases = append(r.aliases, alias{prefix: prefix, dir: dir})
	}
	// Longest prefix wins when aliases overlap.
	sort.Slice(r.aliases, func(i, j int) bool {
		return len(r.aliases[i].prefix) > len(r.aliases[j].prefix)
	})
	return r
}

// Resolve maps one import source, as written in fromFile, to an absolute
// file path. It returns "" when the source cannot be resolved; the caller
// treats such references as opaque leaves.
func (r *Resolver) Resolve(fromFile, source string) string {
	if source == "" {
		return ""
	}
	fromDir := filepath.Dir(fromFile)
	key := fromDir + "\x00" + source

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unresolved[key] {
		return ""
	}

	if path := r.resolveLocked(fromDir, source); path != "" {
		return path
	}
	r.unresolved[key] = true
	return ""
}

func (r *Resolver) resolveLocked(fromDir, source string) string {
	if strings.HasPrefix(source, ".") {
		return probe(filepath.Join(fromDir, source))
	}

	for _, a := range r.aliases {
		if strings.HasPrefix(source, a.prefix) {
			rest := strings.TrimPrefix(source, a.prefix)
			if path := probe(filepath.Join(r.rootDir, a.dir, rest)); path != "" {
				return path
			}
		}
	}

	return r.searchByBaseLocked(source)
}

// probe resolves a path candidate by trying it as written, with each known
// extension appended, then as a directory with an index file.
func probe(candidate string) string {
	if hasComponentExtension(candidate) && isFile(candidate) {
		return candidate
	}
	for _, ext := range componentExtensions {
		if p := candidate + ext; isFile(p) {
			return p
		}
	}
	for _, ext := range componentExtensions {
		if p := filepath.Join(candidate, "index"+ext); isFile(p) {
			return p
		}
	}
	return ""
}

// searchByBaseLocked is the best-effort fallback: find the import's last
// segment anywhere under the root. Applies only when exactly one file
// matches; an ambiguous base name is left unresolved.
func (r *Resolver) searchByBaseLocked(source string) string {
	base := source
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	if base == "" || r.rootDir == "" {
		return ""
	}

	if !r.indexed {
		r.buildIndexLocked()
	}
	matches := r.byBase[base]
	if len(matches) == 1 {
		return matches[0]
	}
	return ""
}

// buildIndexLocked walks the workspace once, grouping component files by
// extensionless base name. node_modules and dot directories are skipped.
func (r *Resolver) buildIndexLocked() {
	r.indexed = true
	r.byBase = make(map[string][]string)
	filepath.WalkDir(r.rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if name == "node_modules" || (len(name) > 1 && name[0] == '.') {
				return filepath.SkipDir
			}
			return nil
		}
		if hasComponentExtension(path) {
			base := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
			r.byBase[base] = append(r.byBase[base], path)
		}
		return nil
	})
}

func hasComponentExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range componentExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
