// Package macro finds macro invocations such as `nested! { ... }` in a host
// source file and replaces them with their expansion.
//
// The host file is tokenized, so invocations inside strings and comments
// are ignored. Text outside of invocations is copied byte for byte.
package macro

import (
	"bytes"

	"nestflat/internal/ast"
	"nestflat/internal/lexer"
	"nestflat/internal/parser"
)

// Invocation is one macro invocation in a host file.
type Invocation struct {
	// Range covers the invocation from its path to its closing delimiter,
	// or to the `;` after it.
	ast.Range
	// Body is the text between the delimiters.
	Body ast.Range
	// BodyStart is the position of the first byte after the opening
	// delimiter. Positions in the body are relative to it.
	BodyStart ast.Position
	Delimiter lexer.TokenType
}

// ExpandFunc expands the body of one invocation.
type ExpandFunc func(body []byte) ([]byte, error)

// Find returns the invocations of the macro name in src, in source order.
// Nested invocations are part of the body of the outer one.
func Find(src []byte, name string) ([]Invocation, error) {
	tokens := lexer.Lex(src)

	var invocations []Invocation

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		if token.Is(lexer.TokenError) {
			return nil, &parser.SyntaxError{
				Pos:     token.StartPos,
				Message: token.Error.Error(),
			}
		}

		if !isInvocation(tokens, i, src, name) {
			continue
		}

		invocation, end, err := scanInvocation(tokens, i, src)
		if err != nil {
			return nil, err
		}

		invocations = append(invocations, invocation)
		i = end
	}

	return invocations, nil
}

// isInvocation reports whether tokens[i] starts `name ! (`, `name ! [` or
// `name ! {`.
func isInvocation(tokens []lexer.Token, i int, src []byte, name string) bool {
	if i+2 >= len(tokens) {
		return false
	}

	token := tokens[i]
	if !token.Is(lexer.TokenIdentifier) || string(token.Source(src)) != name {
		return false
	}

	if !tokens[i+1].Is(lexer.TokenBang) {
		return false
	}

	switch tokens[i+2].Type {
	case lexer.TokenParenOpen, lexer.TokenBracketOpen, lexer.TokenBraceOpen:
		return true
	}

	return false
}

// scanInvocation scans the invocation whose name is tokens[i]. It returns
// the invocation and the index of its last token.
func scanInvocation(tokens []lexer.Token, i int, src []byte) (Invocation, int, error) {
	start := pathStart(tokens, i)
	open := tokens[i+2]

	depth := 0
	for j := i + 2; j < len(tokens); j++ {
		token := tokens[j]

		switch token.Type {
		case lexer.TokenError:
			return Invocation{}, 0, &parser.SyntaxError{
				Pos:     token.StartPos,
				Message: token.Error.Error(),
			}

		case lexer.TokenEOF:
			return Invocation{}, 0, &parser.SyntaxError{
				Pos:     open.StartPos,
				Message: "unclosed macro invocation",
			}

		case lexer.TokenParenOpen, lexer.TokenBracketOpen, lexer.TokenBraceOpen:
			depth++

		case lexer.TokenParenClose, lexer.TokenBracketClose, lexer.TokenBraceClose:
			depth--
			if depth > 0 {
				continue
			}

			if !closes(open.Type, token.Type) {
				return Invocation{}, 0, parser.NewSyntaxError(
					token.StartPos,
					closingDelimiter(open.Type).String(),
					token.Type.String(),
				)
			}

			end := token
			last := j
			if open.Type != lexer.TokenBraceOpen && tokens[j+1].Is(lexer.TokenSemicolon) {
				last = j + 1
				end = tokens[last]
			}

			bodyStart := open.EndPos
			bodyStart.Offset++
			bodyStart.Column++

			return Invocation{
				Range:     ast.NewRange(tokens[start].StartPos, end.EndPos),
				Body:      ast.NewRange(bodyStart, bodyEnd(token.StartPos)),
				BodyStart: bodyStart,
				Delimiter: open.Type,
			}, last, nil
		}
	}

	return Invocation{}, 0, &parser.SyntaxError{
		Pos:     open.StartPos,
		Message: "unclosed macro invocation",
	}
}

// pathStart returns the index of the first token of the macro path that
// ends with tokens[i], e.g. `::nested_attr::nested`.
func pathStart(tokens []lexer.Token, i int) int {
	start := i
	for start >= 1 && tokens[start-1].Is(lexer.TokenPathSeparator) {
		if start >= 2 && tokens[start-2].Is(lexer.TokenIdentifier) {
			start -= 2
			continue
		}

		start--
		break
	}

	return start
}

func bodyEnd(closeStart ast.Position) ast.Position {
	end := closeStart
	end.Offset--
	end.Column--
	return end
}

func closes(open, close lexer.TokenType) bool {
	return closingDelimiter(open) == close
}

func closingDelimiter(open lexer.TokenType) lexer.TokenType {
	switch open {
	case lexer.TokenParenOpen:
		return lexer.TokenParenClose
	case lexer.TokenBracketOpen:
		return lexer.TokenBracketClose
	default:
		return lexer.TokenBraceClose
	}
}

// Expand replaces every invocation of the macro name in src with the
// expansion of its body. It returns the new source and the number of
// expanded invocations. An expansion error is returned as an
// *InvocationError with positions relative to src.
func Expand(src []byte, name string, expand ExpandFunc) ([]byte, int, error) {
	invocations, err := Find(src, name)
	if err != nil {
		return nil, 0, err
	}

	if len(invocations) == 0 {
		return src, 0, nil
	}

	var out bytes.Buffer
	out.Grow(len(src))

	offset := 0
	for _, invocation := range invocations {
		body := src[invocation.Body.StartPos.Offset : invocation.Body.EndPos.Offset+1]

		expanded, err := expand(body)
		if err != nil {
			return nil, 0, &InvocationError{
				Name: name,
				Pos:  invocation.StartPos,
				Base: invocation.BodyStart,
				Err:  err,
			}
		}

		start := invocation.StartPos.Offset
		out.Write(src[offset:start])
		out.Write(indent(bytes.TrimRight(expanded, "\n"), lineIndentation(src, start)))
		offset = invocation.EndPos.Offset + 1
	}

	out.Write(src[offset:])

	return out.Bytes(), len(invocations), nil
}

// lineIndentation returns the whitespace before offset on its line, or nil
// when anything else precedes offset on the line.
func lineIndentation(src []byte, offset int) []byte {
	lineStart := bytes.LastIndexByte(src[:offset], '\n') + 1
	prefix := src[lineStart:offset]

	if len(bytes.TrimLeft(prefix, " \t")) > 0 {
		return nil
	}

	return prefix
}

// indent prefixes every line but the first with indentation. Empty lines
// are left empty.
func indent(text []byte, indentation []byte) []byte {
	if len(indentation) == 0 {
		return text
	}

	lines := bytes.Split(text, []byte("\n"))
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) == 0 {
			continue
		}

		lines[i] = append(append([]byte{}, indentation...), lines[i]...)
	}

	return bytes.Join(lines, []byte("\n"))
}
