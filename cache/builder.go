package cache

import "fmt"

// A Builder can build cache components.
type Builder struct {
	geometry     Geometry
	victimFinder VictimFinder
}

// MakeBuilder creates a builder with default parameter setting: 64-byte
// blocks, 16 sets, 4-way associativity, LRU replacement.
func MakeBuilder() Builder {
	return Builder{
		geometry: Geometry{
			OffsetBits:       6,
			SetIndexBits:     4,
			WayAssociativity: 4,
		},
	}
}

// WithOffsetBits sets the number of block-offset bits.
func (b Builder) WithOffsetBits(n int) Builder {
	b.geometry.OffsetBits = n
	return b
}

// WithSetIndexBits sets the number of set-index bits.
func (b Builder) WithSetIndexBits(n int) Builder {
	b.geometry.SetIndexBits = n
	return b
}

// WithWayAssociativity sets the number of lines per set.
func (b Builder) WithWayAssociativity(n int) Builder {
	b.geometry.WayAssociativity = n
	return b
}

// WithVictimFinder sets the replacement policy the cache uses.
func (b Builder) WithVictimFinder(vf VictimFinder) Builder {
	b.victimFinder = vf
	return b
}

// Build creates a cache component with all lines invalid and the recency
// clock at its starting value. It panics if the geometry is invalid.
func (b Builder) Build(name string) *Comp {
	if err := b.geometry.Validate(); err != nil {
		panic(fmt.Errorf("cache %s: %w", name, err))
	}

	vf := b.victimFinder
	if vf == nil {
		vf = NewLRUVictimFinder()
	}

	c := &Comp{
		name:         name,
		geometry:     b.geometry,
		victimFinder: vf,
		clock:        1,
	}

	c.sets = make([]Set, b.geometry.NumSets())
	for i := range c.sets {
		c.sets[i].Blocks = make([]Block, b.geometry.WayAssociativity)
	}

	return c
}
