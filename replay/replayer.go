// Package replay drives a cache component with the records of a memory
// access trace.
package replay

import (
	"errors"
	"io"

	"github.com/sarchlab/csim/cache"
	"github.com/sarchlab/csim/trace"
)

// A RecordSource yields trace records in order. Next returns io.EOF once the
// source is exhausted.
type RecordSource interface {
	Next() (trace.Record, error)
}

// A Tracer observes every access the replayer issues, after the cache state
// has been updated.
type Tracer interface {
	ObserveAccess(seq uint64, rec trace.Record, result cache.AccessResult)
}

// A Replayer feeds a trace into a cache, one record at a time. A load or a
// store issues one access. A modify issues two sequential accesses to the
// same address, the second observing the state left by the first.
// Instruction fetches issue none.
type Replayer struct {
	comp    *cache.Comp
	source  RecordSource
	tracers []Tracer

	numAccesses uint64
}

// NewReplayer creates a replayer that replays the records of source into
// comp.
func NewReplayer(comp *cache.Comp, source RecordSource) *Replayer {
	return &Replayer{
		comp:   comp,
		source: source,
	}
}

// AcceptTracer registers a tracer to be notified on every access.
func (r *Replayer) AcceptTracer(t Tracer) {
	r.tracers = append(r.tracers, t)
}

// NumAccesses returns the number of accesses issued so far.
func (r *Replayer) NumAccesses() uint64 {
	return r.numAccesses
}

// Run replays the whole trace and returns the final counters. A source error
// aborts the replay; the counters accumulated up to that point are returned
// with the error.
func (r *Replayer) Run() (cache.Statistics, error) {
	for {
		rec, err := r.source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return r.comp.Stats(), err
		}

		switch rec.Kind {
		case trace.Load, trace.Store:
			r.access(rec)
		case trace.Modify:
			r.access(rec)
			r.access(rec)
		default:
			// Instruction fetches do not touch the data cache.
		}
	}

	return r.comp.Stats(), nil
}

func (r *Replayer) access(rec trace.Record) {
	result := r.comp.Access(rec.Address)

	r.numAccesses++
	for _, t := range r.tracers {
		t.ObserveAccess(r.numAccesses, rec, result)
	}
}
