package replay

import (
	"github.com/sarchlab/csim/cache"
	"github.com/sarchlab/csim/monitoring"
	"github.com/sarchlab/csim/trace"
)

// A ProgressTracer advances a monitoring progress bar as accesses complete.
type ProgressTracer struct {
	bar *monitoring.ProgressBar
}

// NewProgressTracer creates a tracer that reports into the given bar.
func NewProgressTracer(bar *monitoring.ProgressBar) *ProgressTracer {
	return &ProgressTracer{bar: bar}
}

// ObserveAccess marks one access as finished.
func (t *ProgressTracer) ObserveAccess(
	seq uint64,
	rec trace.Record,
	result cache.AccessResult,
) {
	t.bar.IncrementFinished(1)
}
