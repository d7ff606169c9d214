package cache

// A VictimFinder decides which way of a set should receive the incoming block
// on a miss.
type VictimFinder interface {
	FindVictim(set *Set) (wayID int)
}

// LRUVictimFinder selects the least recently used block to evict.
type LRUVictimFinder struct{}

// NewLRUVictimFinder returns a newly constructed LRU victim finder.
func NewLRUVictimFinder() *LRUVictimFinder {
	return &LRUVictimFinder{}
}

// FindVictim returns the lowest-indexed invalid way of the set. If every way
// is valid, it returns the way with the smallest last-use stamp. Stamps are
// unique, so the minimum is always unambiguous.
func (f *LRUVictimFinder) FindVictim(set *Set) int {
	for i := range set.Blocks {
		if !set.Blocks[i].Valid {
			return i
		}
	}

	victim := 0
	for i := 1; i < len(set.Blocks); i++ {
		if set.Blocks[i].LastUse < set.Blocks[victim].LastUse {
			victim = i
		}
	}

	return victim
}
