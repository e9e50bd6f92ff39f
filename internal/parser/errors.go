package parser

import (
	"fmt"

	"nestflat/internal/ast"
	"nestflat/internal/errors"
	"nestflat/internal/lexer"
)

// SyntaxError is returned when the input does not match the declaration
// grammar.
type SyntaxError struct {
	Pos ast.Position
	// Expected names the construct the parser was looking for.
	Expected string
	// Found describes the token found instead.
	Found string
	// Message replaces the expected/found message, e.g. for lexer errors.
	Message string
	// Suggestion is a likely intended spelling, if any.
	Suggestion string
}

var _ errors.UserError = &SyntaxError{}
var _ errors.SecondaryError = &SyntaxError{}
var _ errors.HasPosition = &SyntaxError{}

func NewSyntaxError(pos ast.Position, expected string, found string) *SyntaxError {
	return &SyntaxError{
		Pos:      pos,
		Expected: expected,
		Found:    found,
	}
}

func (*SyntaxError) IsUserError() {}

func (e *SyntaxError) StartPosition() ast.Position {
	return e.Pos
}

func (e *SyntaxError) EndPosition() ast.Position {
	return e.Pos
}

func (e *SyntaxError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Found)
}

func (e *SyntaxError) SecondaryError() string {
	if e.Suggestion == "" {
		return ""
	}

	return fmt.Sprintf("did you mean `%s`?", e.Suggestion)
}

// describeToken returns a description of a token for error messages.
func describeToken(token lexer.Token, input []byte) string {
	switch token.Type {
	case lexer.TokenIdentifier,
		lexer.TokenLifetime,
		lexer.TokenNumber:

		return fmt.Sprintf("%s `%s`", token.Type, token.Source(input))
	}

	return token.Type.String()
}
