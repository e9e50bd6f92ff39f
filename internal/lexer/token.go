package lexer

import (
	"nestflat/internal/ast"
)

type Token struct {
	Type TokenType
	ast.Range
	// SpaceBefore is set when whitespace or a comment precedes the token.
	SpaceBefore bool
	// Error is set for TokenError.
	Error error
}

func (t Token) Is(ty TokenType) bool {
	return t.Type == ty
}

func (t Token) Source(input []byte) []byte {
	return t.Range.Source(input)
}
