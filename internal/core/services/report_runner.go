package services

import (
	"context"
	"sync/atomic"
)

// ReportRunner serializes "latest wins" report generation. Each Run call
// claims a new generation; when a newer call has started by the time an
// older one finishes, the older result is discarded so stale reports never
// reach the caller.
type ReportRunner[T any] struct {
	generation atomic.Uint64
}

// NewReportRunner creates a runner for one report surface.
func NewReportRunner[T any]() *ReportRunner[T] {
	return &ReportRunner[T]{}
}

// Run executes fn under a fresh generation. ok is false when a newer Run
// superseded this one and the result must be thrown away.
func (r *ReportRunner[T]) Run(ctx context.Context, fn func(ctx context.Context) (T, error)) (result T, ok bool, err error) {
	gen := r.generation.Add(1)
	result, err = fn(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}
	if r.generation.Load() != gen {
		// A newer generation started while this one was computing.
		var zero T
		return zero, false, nil
	}
	return result, true, nil
}
