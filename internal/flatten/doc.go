// Package flatten splits a declaration with nested declarations in field
// position into a sequence of flat declarations.
//
// Every nested declaration is replaced in its parent by a plain field that
// refers to it by name, and is emitted after its parent. Declarations are
// emitted depth-first: a parent is followed by its first child and all of
// that child's descendants, then by its second child, and so on.
package flatten
