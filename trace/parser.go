package trace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Parser reads trace records from a reader, one line at a time. Trace lines
// have the form "<op> <hexaddr>,<size>", where op is I for an instruction
// fetch (flush-left) or L, S, or M for a data access (indented by one space).
// Blank lines and lines starting with "=" are skipped.
type Parser struct {
	scanner *bufio.Scanner
	line    int
}

// NewParser creates a parser that reads records from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{scanner: bufio.NewScanner(r)}
}

// Next returns the next record in the trace. It returns io.EOF once the trace
// is exhausted and a descriptive error for a malformed line.
func (p *Parser) Next() (Record, error) {
	for p.scanner.Scan() {
		p.line++

		text := p.scanner.Text()
		if skippable(text) {
			continue
		}

		rec, err := parseLine(text)
		if err != nil {
			return Record{}, fmt.Errorf("trace line %d: %w", p.line, err)
		}

		return rec, nil
	}

	if err := p.scanner.Err(); err != nil {
		return Record{}, err
	}

	return Record{}, io.EOF
}

func skippable(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed == "" || strings.HasPrefix(trimmed, "=")
}

func parseLine(text string) (Record, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Record{}, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}

	kind, err := parseKind(fields[0])
	if err != nil {
		return Record{}, err
	}

	addrStr, sizeStr, found := strings.Cut(fields[1], ",")
	if !found {
		return Record{}, fmt.Errorf("missing size in %q", fields[1])
	}

	addr, err := strconv.ParseUint(addrStr, 16, 64)
	if err != nil {
		return Record{}, fmt.Errorf("bad address %q", addrStr)
	}

	size, err := strconv.ParseUint(sizeStr, 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("bad size %q", sizeStr)
	}

	return Record{Kind: kind, Address: addr, Size: size}, nil
}

func parseKind(s string) (Kind, error) {
	switch s {
	case "I":
		return Instruction, nil
	case "L":
		return Load, nil
	case "S":
		return Store, nil
	case "M":
		return Modify, nil
	}

	return 0, fmt.Errorf("unknown operation %q", s)
}
