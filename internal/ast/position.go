package ast

import "fmt"

// Position is a location in the input.
type Position struct {
	// Offset is the byte offset, starting at 0.
	Offset int
	// Line starts at 1.
	Line int
	// Column is the byte column, starting at 0.
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Shifted returns the position moved by a base position. It is used when a
// block is parsed out of a larger file: the block's positions are relative to
// its own start.
func (p Position) Shifted(base Position) Position {
	if p.Line == 1 {
		return Position{
			Offset: base.Offset + p.Offset,
			Line:   base.Line,
			Column: base.Column + p.Column,
		}
	}

	return Position{
		Offset: base.Offset + p.Offset,
		Line:   base.Line + p.Line - 1,
		Column: p.Column,
	}
}

// Range is a span of input, EndPos inclusive.
type Range struct {
	StartPos Position
	EndPos   Position
}

func NewRange(start, end Position) Range {
	return Range{StartPos: start, EndPos: end}
}

func (r Range) StartPosition() Position {
	return r.StartPos
}

func (r Range) EndPosition() Position {
	return r.EndPos
}

// Source returns the input text covered by the range.
func (r Range) Source(input []byte) []byte {
	start := r.StartPos.Offset
	end := r.EndPos.Offset + 1
	if start < 0 || end > len(input) || start >= end {
		return nil
	}

	return input[start:end]
}
