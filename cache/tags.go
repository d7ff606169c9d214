package cache

// A Block is the information associated with one cache line.
type Block struct {
	Valid bool
	Tag   uint64

	// LastUse is the clock value recorded when the block was last accessed.
	// Clock values are unique across the whole cache, so comparing LastUse
	// fields totally orders the blocks of a set by recency.
	LastUse uint64
}

// A Set is a group of blocks where a certain piece of memory can be stored.
// The position of a block within a set carries no meaning.
type Set struct {
	Blocks []Block
}

// Lookup returns the way that holds a valid copy of the given tag, or -1 if
// the tag is not present in the set.
func (s *Set) Lookup(tag uint64) int {
	for i := range s.Blocks {
		if s.Blocks[i].Valid && s.Blocks[i].Tag == tag {
			return i
		}
	}

	return -1
}
