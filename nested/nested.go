// Package nested turns a declaration with inline nested declarations into
// a sequence of flat declarations.
//
// Given
//
//	#![derive(Debug)]
//	pub struct Outer {
//	    pub a: i32,
//	    pub struct Inner { pub b: u8 },
//	}
//
// Expand returns
//
//	#[derive(Debug)]
//	pub struct Outer {
//	    pub a: i32,
//	    pub inner: Inner,
//	}
//
//	#[derive(Debug)]
//	pub struct Inner {
//	    pub b: u8,
//	}
package nested

import (
	"nestflat/internal/ast"
	"nestflat/internal/emit"
	"nestflat/internal/flatten"
	"nestflat/internal/macro"
	"nestflat/internal/parser"
)

// Parse parses src as a declaration block.
func Parse(src []byte, opts ...Option) (*ast.Block, error) {
	o := newOptions(opts)
	return parse(src, o)
}

func parse(src []byte, o options) (*ast.Block, error) {
	return parser.ParseBlock(src, parser.Config{MaxDepth: o.maxDepth})
}

// Flatten flattens a parsed block into declarations without nested
// declarations, the root first.
func Flatten(block *ast.Block, opts ...Option) ([]*ast.Declaration, error) {
	o := newOptions(opts)
	return flattenBlock(block, o)
}

func flattenBlock(block *ast.Block, o options) ([]*ast.Declaration, error) {
	return flatten.Flatten(block, flatten.Config{
		MaxDepth: o.maxDepth,
		Logger:   o.logger,
	})
}

// Expand parses src as a declaration block, flattens it and renders the
// result.
//
// The returned error is a *parser.SyntaxError when src is malformed, or a
// *errors.NestingTooDeepError when declarations nest deeper than the
// maximum depth. On error no output is returned.
func Expand(src []byte, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	return expand(src, o)
}

func expand(src []byte, o options) ([]byte, error) {
	block, err := parse(src, o)
	if err != nil {
		return nil, err
	}

	decls, err := flattenBlock(block, o)
	if err != nil {
		return nil, err
	}

	return []byte(emit.Render(decls, o.emit)), nil
}

// ExpandMacros replaces every invocation of the macro in the host source
// src with the expansion of its body. Text outside of invocations is kept
// as is. It returns the new source and the number of expanded invocations.
//
// An error in an invocation body is returned as a *macro.InvocationError,
// which reports positions in src.
func ExpandMacros(src []byte, opts ...Option) ([]byte, int, error) {
	o := newOptions(opts)

	return macro.Expand(src, o.macroName, func(body []byte) ([]byte, error) {
		return expand(body, o)
	})
}
