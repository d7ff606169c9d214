package monitoring

import (
	"encoding/json"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/csim/cache"
)

var _ = Describe("Monitor", func() {
	var m *Monitor

	BeforeEach(func() {
		m = NewMonitor()
	})

	It("should track progress bars", func() {
		bar := m.CreateProgressBar("replay", 100)

		bar.IncrementFinished(30)
		bar.IncrementFinished(20)

		Expect(bar.Finished).To(Equal(uint64(50)))
		Expect(m.progressBars).To(HaveLen(1))

		m.CompleteProgressBar(bar)

		Expect(m.progressBars).To(BeEmpty())
	})

	It("should serve the counters of the registered cache", func() {
		c := cache.MakeBuilder().
			WithOffsetBits(1).
			WithSetIndexBits(1).
			WithWayAssociativity(1).
			Build("L1")
		c.Access(0)
		c.Access(0)
		m.RegisterCache(c)

		recorder := httptest.NewRecorder()
		m.listStats(recorder, httptest.NewRequest("GET", "/api/stats", nil))

		rsp := statsRsp{}
		Expect(json.Unmarshal(recorder.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp).To(Equal(statsRsp{Hits: 1, Misses: 1}))
	})

	It("should reject a port number below 1000", func() {
		m.WithPortNumber(80)

		Expect(m.portNumber).To(Equal(0))
	})
})
