package service

import (
	"context"
	"os"
	"sync"
	"sync/atomic"

	"github.com/zemdomu/zemdomu/domain"
	"github.com/zemdomu/zemdomu/internal/graph"
	"github.com/zemdomu/zemdomu/internal/linter"
)

// ProjectLinterOptions configures a ProjectLinter instance.
type ProjectLinterOptions struct {
	// Severities per rule; rules set to off never run.
	Severities map[domain.RuleID]domain.Severity

	// CrossComponentAnalysis enables the registry and graph checks.
	CrossComponentAnalysis bool

	// CrossComponentDepth bounds graph traversal (0 = default).
	CrossComponentDepth int

	// RootDir anchors import resolution; empty means the working directory.
	RootDir string

	// Aliases maps import prefixes to directories under RootDir.
	Aliases map[string]string

	// Progress reports batch progress; nil disables reporting.
	Progress domain.ProgressManager

	// MaxConcurrency caps parallel file linting (0 = number of CPUs).
	MaxConcurrency int
}

// ProjectLinter implements domain.LintService. It owns the component
// registry for cross-component analysis; callers needing isolation
// construct a fresh instance.
type ProjectLinter struct {
	severities   map[domain.RuleID]domain.Severity
	crossEnabled bool
	maxDepth     int

	registry *graph.Registry
	builder  *graph.Builder
	executor *ParallelExecutorImpl

	// generation supersedes stale in-flight scans: a batch whose
	// generation is no longer current never merges its results.
	generation atomic.Uint64
}

// NewProjectLinter creates a linter service from options.
func NewProjectLinter(opts ProjectLinterOptions) *ProjectLinter {
	severities := opts.Severities
	if severities == nil {
		severities = domain.DefaultSeverities()
	}

	rootDir := opts.RootDir
	if rootDir == "" {
		rootDir, _ = os.Getwd()
	}

	executor := NewParallelExecutorWithProgress(opts.Progress)
	executor.SetMaxConcurrency(opts.MaxConcurrency)

	registry := graph.NewRegistry()
	return &ProjectLinter{
		severities:   severities,
		crossEnabled: opts.CrossComponentAnalysis,
		maxDepth:     opts.CrossComponentDepth,
		registry:     registry,
		builder:      graph.NewBuilder(registry, graph.NewResolver(rootDir, opts.Aliases)),
		executor:     executor,
	}
}

// LintFile lints one file. Component files also update the shared registry,
// so the returned map may carry cross-component results keyed by other
// file paths.
func (l *ProjectLinter) LintFile(ctx context.Context, path string, content []byte) (map[string][]domain.LintResult, error) {
	kind := domain.KindForPath(path)

	out := map[string][]domain.LintResult{
		path: linter.Lint(content, kind, l.severities),
	}

	if l.crossEnabled && kind == domain.FileKindJSX {
		// A parse failure is already reported as a parseError result;
		// the registry keeps its previous definition for the file.
		_, _ = l.builder.Analyze(path, content)
		l.mergeCrossResults(out)
	}

	return out, nil
}

// LintFiles lints a batch of files concurrently, then runs cross-component
// analysis once over the resulting registry state. Unreadable files are
// reported in the aggregated error; the rest of the batch is unaffected.
func (l *ProjectLinter) LintFiles(ctx context.Context, paths []string) (map[string][]domain.LintResult, error) {
	generation := l.generation.Add(1)

	out := make(map[string][]domain.LintResult, len(paths))
	var mu sync.Mutex

	tasks := make([]domain.ExecutableTask, 0, len(paths))
	for _, path := range paths {
		tasks = append(tasks, &lintTask{linter: l, path: path, generation: generation, results: out, mu: &mu})
	}

	err := l.executor.Execute(ctx, tasks)

	if l.crossEnabled && l.generation.Load() == generation {
		mu.Lock()
		l.mergeCrossResults(out)
		mu.Unlock()
	}

	return out, err
}

// Registry exposes the component registry for summary statistics.
func (l *ProjectLinter) Registry() *graph.Registry {
	return l.registry
}

// ComponentCount returns the number of registered component definitions.
func (l *ProjectLinter) ComponentCount() int {
	return l.registry.Len()
}

// EntryPointCount returns the number of entry points currently discoverable.
func (l *ProjectLinter) EntryPointCount() int {
	return len(graph.NewAnalyzer(l.registry, l.severities, l.maxDepth).EntryPoints())
}

// ClearRegistry drops all component state, isolating the next scan.
func (l *ProjectLinter) ClearRegistry() {
	l.registry.Clear()
}

// mergeCrossResults runs the cross-component analyzer and merges its
// results into the map under the file each is attributed to.
func (l *ProjectLinter) mergeCrossResults(out map[string][]domain.LintResult) {
	analyzer := graph.NewAnalyzer(l.registry, l.severities, l.maxDepth)
	for _, r := range analyzer.Analyze() {
		out[r.FilePath] = append(out[r.FilePath], r)
	}
	for path := range out {
		domain.SortResults(out[path])
	}
}

// lintTask lints one file within a batch.
type lintTask struct {
	linter     *ProjectLinter
	path       string
	generation uint64
	results    map[string][]domain.LintResult
	mu         *sync.Mutex
}

func (t *lintTask) Name() string    { return t.path }
func (t *lintTask) IsEnabled() bool { return domain.KindForPath(t.path) != domain.FileKindUnknown }

func (t *lintTask) Execute(ctx context.Context) (interface{}, error) {
	content, err := os.ReadFile(t.path)
	if err != nil {
		return nil, domain.NewIOError("failed to read file", err)
	}

	kind := domain.KindForPath(t.path)
	results := linter.Lint(content, kind, t.linter.severities)

	if t.linter.crossEnabled && kind == domain.FileKindJSX {
		// Skip registry writes when a newer scan superseded this batch.
		if t.linter.generation.Load() == t.generation {
			_, _ = t.linter.builder.Analyze(t.path, content)
		}
	}

	if t.linter.generation.Load() != t.generation {
		return nil, nil
	}

	t.mu.Lock()
	t.results[t.path] = results
	t.mu.Unlock()
	return results, nil
}
