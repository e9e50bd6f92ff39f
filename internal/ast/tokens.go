package ast

import (
	"strings"

	"github.com/turbolent/prettier"
)

// Token is one verbatim token of a run that the tree does not interpret.
type Token struct {
	Text string
	// SpaceBefore is set when the input had whitespace or a comment
	// before the token.
	SpaceBefore bool
}

// Tokens is a verbatim token run, e.g. a field type or an attribute body.
type Tokens []Token

// NewTokens builds a run from texts. Every token after the first one is
// separated by a space.
func NewTokens(texts ...string) Tokens {
	tokens := make(Tokens, len(texts))
	for i, text := range texts {
		tokens[i] = Token{Text: text, SpaceBefore: i > 0}
	}

	return tokens
}

func (ts Tokens) IsEmpty() bool {
	return len(ts) == 0
}

// String joins the tokens, putting one space wherever the input had
// whitespace. Leading whitespace of the first token is dropped.
func (ts Tokens) String() string {
	var sb strings.Builder
	for i, t := range ts {
		if i > 0 && t.SpaceBefore {
			sb.WriteByte(' ')
		}

		sb.WriteString(t.Text)
	}

	return sb.String()
}

func (ts Tokens) Doc() prettier.Doc {
	return prettier.Text(ts.String())
}

// Append returns a new run with others appended. The receiver is not
// modified.
func (ts Tokens) Append(others ...Token) Tokens {
	result := make(Tokens, 0, len(ts)+len(others))
	result = append(result, ts...)

	return append(result, others...)
}

// Identifier is a name with its position.
type Identifier struct {
	Name string
	Pos  Position
}

func (i Identifier) String() string {
	return i.Name
}
