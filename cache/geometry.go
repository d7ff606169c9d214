// Package cache models a set-associative cache with LRU replacement.
package cache

import "fmt"

// Geometry describes the shape of a set-associative cache.
type Geometry struct {
	// OffsetBits is the number of block-offset bits. The block size is
	// 2^OffsetBits bytes.
	OffsetBits int

	// SetIndexBits is the number of set-index bits. The cache has
	// 2^SetIndexBits sets.
	SetIndexBits int

	// WayAssociativity is the number of lines in each set.
	WayAssociativity int
}

// NumSets returns the number of sets in the cache.
func (g Geometry) NumSets() int {
	return 1 << g.SetIndexBits
}

// BlockSize returns the number of bytes in a cache line.
func (g Geometry) BlockSize() int {
	return 1 << g.OffsetBits
}

// Validate checks that the geometry leaves a non-empty tag field and has at
// least one way per set. Decoding assumes a validated geometry.
func (g Geometry) Validate() error {
	if g.OffsetBits < 0 {
		return fmt.Errorf("offset bits must be non-negative, got %d",
			g.OffsetBits)
	}

	if g.SetIndexBits < 0 {
		return fmt.Errorf("set index bits must be non-negative, got %d",
			g.SetIndexBits)
	}

	if g.OffsetBits+g.SetIndexBits >= 64 {
		return fmt.Errorf(
			"offset bits (%d) and set index bits (%d) leave no tag bits",
			g.OffsetBits, g.SetIndexBits)
	}

	if g.WayAssociativity < 1 {
		return fmt.Errorf("way associativity must be at least 1, got %d",
			g.WayAssociativity)
	}

	return nil
}
