package domain

import "context"

// ExecutableTask is a unit of work the parallel executor can run.
type ExecutableTask interface {
	// Name identifies the task in error reports.
	Name() string

	// IsEnabled reports whether the task should run at all.
	IsEnabled() bool

	// Execute runs the task. The result is task-specific.
	Execute(ctx context.Context) (interface{}, error)
}

// ParallelExecutor runs tasks with bounded concurrency.
type ParallelExecutor interface {
	Execute(ctx context.Context, tasks []ExecutableTask) error
}

// TaskProgress tracks progress of a single long-running task.
type TaskProgress interface {
	Increment(n int)
	Complete()
}

// ProgressManager creates progress trackers for long-running operations.
type ProgressManager interface {
	StartTask(description string, total int) TaskProgress

	// Close finishes any open trackers.
	Close()
}
