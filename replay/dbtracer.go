package replay

import (
	"github.com/sarchlab/csim/cache"
	"github.com/sarchlab/csim/datarecording"
	"github.com/sarchlab/csim/trace"
)

// accessEntry represents one cache access in the database.
type accessEntry struct {
	Seq       uint64
	Kind      string
	Address   uint64
	SetID     int
	Tag       uint64
	Hit       bool
	Evicted   bool
	VictimTag uint64
}

// summaryEntry represents the final counters of a run in the database.
type summaryEntry struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// A DBTracer records every access and the final counters of a replay into a
// data recording database.
type DBTracer struct {
	recorder datarecording.DataRecorder
}

// NewDBTracer creates a DBTracer and the tables it writes into.
func NewDBTracer(recorder datarecording.DataRecorder) *DBTracer {
	t := &DBTracer{recorder: recorder}

	t.recorder.CreateTable("cache_accesses", accessEntry{})
	t.recorder.CreateTable("simulation_summary", summaryEntry{})

	return t
}

// ObserveAccess inserts one access row.
func (t *DBTracer) ObserveAccess(
	seq uint64,
	rec trace.Record,
	result cache.AccessResult,
) {
	t.recorder.InsertData("cache_accesses", accessEntry{
		Seq:       seq,
		Kind:      rec.Kind.String(),
		Address:   rec.Address,
		SetID:     result.SetID,
		Tag:       result.Tag,
		Hit:       result.Hit,
		Evicted:   result.Evicted,
		VictimTag: result.VictimTag,
	})
}

// RecordSummary writes the final counters. Call it once, after the replay
// completes.
func (t *DBTracer) RecordSummary(stats cache.Statistics) {
	t.recorder.InsertData("simulation_summary", summaryEntry{
		Hits:      stats.Hits,
		Misses:    stats.Misses,
		Evictions: stats.Evictions,
	})
	t.recorder.Flush()
}
