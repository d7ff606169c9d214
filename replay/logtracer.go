package replay

import (
	"log"

	"github.com/sarchlab/csim/cache"
	"github.com/sarchlab/csim/trace"
)

// A LogTracer writes one line per access, mirroring the trace input with the
// outcome appended.
type LogTracer struct {
	logger *log.Logger
}

// NewLogTracer creates a new LogTracer.
func NewLogTracer(logger *log.Logger) *LogTracer {
	return &LogTracer{logger: logger}
}

// ObserveAccess logs the access in the form "L 4f6b868,8 miss eviction".
func (t *LogTracer) ObserveAccess(
	seq uint64,
	rec trace.Record,
	result cache.AccessResult,
) {
	outcome := "miss"
	if result.Hit {
		outcome = "hit"
	}
	if result.Evicted {
		outcome += " eviction"
	}

	t.logger.Printf("%s %x,%d %s\n",
		rec.Kind, rec.Address, rec.Size, outcome)
}
