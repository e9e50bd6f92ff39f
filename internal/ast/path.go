package ast

import (
	"strings"
)

// TypePath names a declaration by where it is nested.
// Examples:
//   - "Nested" for the root declaration
//   - "Nested.B" for a declaration nested in a field of Nested
//   - "Nested.D.E" for a declaration nested two levels deep
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Child appends a nested type name to the path.
func (p *TypePath) Child(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Depth is the number of declarations on the path, 1 for the root.
func (p *TypePath) Depth() int {
	return len(p.parts)
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}
