// Package trace parses valgrind-style memory access traces.
package trace

// Kind classifies one trace record.
type Kind int

// The operation kinds that can appear in a trace.
const (
	// Instruction is an instruction fetch. It does not touch the data cache.
	Instruction Kind = iota

	// Load is a data load.
	Load

	// Store is a data store.
	Store

	// Modify is a data load immediately followed by a data store to the same
	// address.
	Modify
)

func (k Kind) String() string {
	switch k {
	case Instruction:
		return "I"
	case Load:
		return "L"
	case Store:
		return "S"
	case Modify:
		return "M"
	}

	return "?"
}

// A Record is one memory access read from a trace.
type Record struct {
	Kind    Kind
	Address uint64

	// Size is the number of bytes the access touches. The cache model does
	// not use it, but it is carried so that observers can reproduce the
	// original trace line.
	Size uint64
}
