package cache

// Decode splits a 64-bit address into the set index and the tag according to
// the cache geometry. It is total over the address space. With zero set index
// bits every address maps to set 0.
func Decode(addr uint64, g Geometry) (setID int, tag uint64) {
	setMask := (uint64(1) << g.SetIndexBits) - 1

	setID = int((addr >> g.OffsetBits) & setMask)
	tag = addr >> (g.OffsetBits + g.SetIndexBits)

	return setID, tag
}
