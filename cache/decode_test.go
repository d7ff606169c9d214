package cache

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decode", func() {
	It("should split an address into set index and tag", func() {
		g := Geometry{OffsetBits: 4, SetIndexBits: 8, WayAssociativity: 2}

		setID, tag := Decode(0x12345678, g)

		Expect(setID).To(Equal(0x67))
		Expect(tag).To(Equal(uint64(0x12345)))
	})

	It("should map every address to set 0 when there are no set bits", func() {
		g := Geometry{OffsetBits: 6, SetIndexBits: 0, WayAssociativity: 8}

		setID, tag := Decode(0xdeadbeef, g)

		Expect(setID).To(Equal(0))
		Expect(tag).To(Equal(uint64(0xdeadbeef >> 6)))
	})

	It("should decode high addresses without losing tag bits", func() {
		g := Geometry{OffsetBits: 1, SetIndexBits: 1, WayAssociativity: 1}

		setID, tag := Decode(0xffffffffffffffff, g)

		Expect(setID).To(Equal(1))
		Expect(tag).To(Equal(uint64(0x3fffffffffffffff)))
	})

	It("should recombine into the original address", func() {
		geometries := []Geometry{
			{OffsetBits: 0, SetIndexBits: 0, WayAssociativity: 1},
			{OffsetBits: 1, SetIndexBits: 1, WayAssociativity: 1},
			{OffsetBits: 4, SetIndexBits: 8, WayAssociativity: 4},
			{OffsetBits: 6, SetIndexBits: 12, WayAssociativity: 16},
			{OffsetBits: 30, SetIndexBits: 30, WayAssociativity: 2},
		}
		addrs := []uint64{
			0, 1, 0x10, 0xff, 0x12345678, 0xfedcba9876543210,
			0xffffffffffffffff,
		}

		for _, g := range geometries {
			offsetMask := (uint64(1) << g.OffsetBits) - 1

			for _, addr := range addrs {
				setID, tag := Decode(addr, g)

				recombined := tag<<(g.OffsetBits+g.SetIndexBits) |
					uint64(setID)<<g.OffsetBits |
					addr&offsetMask

				Expect(recombined).To(Equal(addr))
			}
		}
	})
})

var _ = Describe("Geometry", func() {
	It("should accept a valid geometry", func() {
		g := Geometry{OffsetBits: 4, SetIndexBits: 8, WayAssociativity: 2}

		Expect(g.Validate()).To(Succeed())
		Expect(g.NumSets()).To(Equal(256))
		Expect(g.BlockSize()).To(Equal(16))
	})

	It("should reject a geometry with an empty tag field", func() {
		g := Geometry{OffsetBits: 32, SetIndexBits: 32, WayAssociativity: 2}

		Expect(g.Validate()).NotTo(Succeed())
	})

	It("should reject a set with no ways", func() {
		g := Geometry{OffsetBits: 4, SetIndexBits: 4, WayAssociativity: 0}

		Expect(g.Validate()).NotTo(Succeed())
	})

	It("should reject negative bit counts", func() {
		Expect(Geometry{OffsetBits: -1, SetIndexBits: 4, WayAssociativity: 1}.
			Validate()).NotTo(Succeed())
		Expect(Geometry{OffsetBits: 4, SetIndexBits: -1, WayAssociativity: 1}.
			Validate()).NotTo(Succeed())
	})
})
