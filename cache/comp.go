package cache

// Statistics accumulates the outcome counters of a simulation run.
type Statistics struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// An AccessResult describes the effect of a single access on the cache.
type AccessResult struct {
	Hit     bool
	Evicted bool
	SetID   int
	Tag     uint64

	// VictimTag is the tag that was evicted. It is only meaningful when
	// Evicted is true.
	VictimTag uint64
}

// A Comp simulates one set-associative cache with LRU replacement. It owns
// the tag state of every line and the counters of the run. A Comp is not safe
// for concurrent use; the access stream is strictly sequential.
type Comp struct {
	name         string
	geometry     Geometry
	victimFinder VictimFinder

	sets  []Set
	clock uint64
	stats Statistics
}

// Name returns the name of the cache component.
func (c *Comp) Name() string {
	return c.name
}

// Geometry returns the geometry the cache was built with.
func (c *Comp) Geometry() Geometry {
	return c.geometry
}

// Stats returns a snapshot of the counters accumulated so far.
func (c *Comp) Stats() Statistics {
	return c.stats
}

// Set returns the set with the given index. It is exposed for state
// inspection and must not be mutated by the caller.
func (c *Comp) Set(setID int) *Set {
	return &c.sets[setID]
}

// Access simulates one data access at the given address. It never fails:
// every address decodes to an in-range set, a hit refreshes the recency of
// the matching line, and a miss always finds a line to fill, evicting the
// least recently used one when the set is full.
func (c *Comp) Access(addr uint64) AccessResult {
	setID, tag := Decode(addr, c.geometry)
	set := &c.sets[setID]

	if way := set.Lookup(tag); way >= 0 {
		c.stats.Hits++
		set.Blocks[way].LastUse = c.clock
		c.clock++

		return AccessResult{Hit: true, SetID: setID, Tag: tag}
	}

	c.stats.Misses++

	way := c.victimFinder.FindVictim(set)
	block := &set.Blocks[way]

	result := AccessResult{SetID: setID, Tag: tag}
	if block.Valid {
		c.stats.Evictions++
		result.Evicted = true
		result.VictimTag = block.Tag
	}

	block.Valid = true
	block.Tag = tag
	block.LastUse = c.clock
	c.clock++

	return result
}

// Reset invalidates every block and restarts the clock and the counters, as
// if the cache had just been built.
func (c *Comp) Reset() {
	for i := range c.sets {
		for j := range c.sets[i].Blocks {
			c.sets[i].Blocks[j] = Block{}
		}
	}

	c.clock = 1
	c.stats = Statistics{}
}
