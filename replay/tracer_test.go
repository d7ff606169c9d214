package replay_test

import (
	"bytes"
	"context"
	"log"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/csim/cache"
	"github.com/sarchlab/csim/datarecording"
	"github.com/sarchlab/csim/replay"
	"github.com/sarchlab/csim/trace"
)

var _ = Describe("LogTracer", func() {
	It("should mirror the trace line with the outcome appended", func() {
		buf := &bytes.Buffer{}
		tracer := replay.NewLogTracer(log.New(buf, "", 0))

		tracer.ObserveAccess(1,
			trace.Record{Kind: trace.Load, Address: 0x10, Size: 4},
			cache.AccessResult{})
		tracer.ObserveAccess(2,
			trace.Record{Kind: trace.Store, Address: 0x10, Size: 4},
			cache.AccessResult{Hit: true})
		tracer.ObserveAccess(3,
			trace.Record{Kind: trace.Modify, Address: 0x20, Size: 8},
			cache.AccessResult{Evicted: true, VictimTag: 1})

		Expect(buf.String()).To(ContainSubstring("L 10,4 miss\n"))
		Expect(buf.String()).To(ContainSubstring("S 10,4 hit\n"))
		Expect(buf.String()).To(ContainSubstring("M 20,8 miss eviction\n"))
	})
})

var _ = Describe("DBTracer", func() {
	It("should record accesses and the summary", func() {
		dbPath := filepath.Join(GinkgoT().TempDir(), "replay_test")

		recorder := datarecording.NewRecorder(dbPath)
		tracer := replay.NewDBTracer(recorder)

		comp := cache.MakeBuilder().
			WithOffsetBits(1).
			WithSetIndexBits(1).
			WithWayAssociativity(1).
			Build("L1")

		r := replay.NewReplayer(comp, &sliceSource{records: []trace.Record{
			{Kind: trace.Load, Address: 0, Size: 1},
			{Kind: trace.Load, Address: 8, Size: 1},
			{Kind: trace.Load, Address: 0, Size: 1},
		}})
		r.AcceptTracer(tracer)

		stats, err := r.Run()
		Expect(err).NotTo(HaveOccurred())

		tracer.RecordSummary(stats)
		recorder.Close()

		reader := datarecording.NewReader(dbPath + ".sqlite3")
		defer reader.Close()

		reader.MapTable("cache_accesses", struct {
			Seq       uint64
			Kind      string
			Address   uint64
			SetID     int
			Tag       uint64
			Hit       bool
			Evicted   bool
			VictimTag uint64
		}{})
		reader.MapTable("simulation_summary", struct {
			Hits      uint64
			Misses    uint64
			Evictions uint64
		}{})

		_, accessCount, err := reader.Query(context.Background(),
			"cache_accesses", datarecording.QueryParams{})
		Expect(err).NotTo(HaveOccurred())
		Expect(accessCount).To(Equal(3))

		_, summaryCount, err := reader.Query(context.Background(),
			"simulation_summary", datarecording.QueryParams{})
		Expect(err).NotTo(HaveOccurred())
		Expect(summaryCount).To(Equal(1))
	})
})
