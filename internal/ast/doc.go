// Package ast defines the syntax tree of a declaration block.
//
// The tree has two closed variants, dispatched with switch statements:
//   - Identity: a bare type name, or a field name paired with a type name
//   - Field: a plain `name: Type` field, or a nested declaration
//
// Types, attribute bodies, visibility qualifiers and where clauses are kept
// as verbatim token runs (Tokens). The tree never interprets them.
//
// Every node renders itself as a prettier.Doc, which is how declarations are
// serialized back to text.
package ast
