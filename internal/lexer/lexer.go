// Package lexer splits a declaration block into tokens.
//
// Whitespace and plain comments are trivia: they are not emitted, but the
// token that follows them has SpaceBefore set. Doc comments are tokens.
// Lexing never fails. Malformed input produces a TokenError token, after
// which only TokenEOF follows.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"nestflat/internal/ast"
)

type lexer struct {
	input []byte
	// cursor is the position of the next rune.
	cursor ast.Position
	// last is the position of the most recently read rune.
	last ast.Position
	// prevLast is the value of last before the most recent read, for backupOne.
	prevLast ast.Position
	// lastWidth is the byte width of the most recently read rune, 0 at EOF.
	lastWidth int
	// start is the position of the current token.
	start       ast.Position
	spaceBefore bool
	tokens      []Token
}

// Lex tokenizes input. The result always ends with a TokenEOF token.
func Lex(input []byte) []Token {
	l := &lexer{
		input:  input,
		cursor: ast.Position{Line: 1},
	}
	l.run(rootState)
	return l.tokens
}

func (l *lexer) run(state stateFn) {
	for state != nil {
		state = state(l)
	}

	l.start = l.cursor
	l.tokens = append(l.tokens, Token{
		Type:        TokenEOF,
		Range:       ast.NewRange(l.cursor, l.cursor),
		SpaceBefore: l.spaceBefore,
	})
}

// next reads the next rune, or EOF.
func (l *lexer) next() rune {
	l.prevLast = l.last

	if l.cursor.Offset >= len(l.input) {
		l.lastWidth = 0
		return EOF
	}

	r, width := utf8.DecodeRune(l.input[l.cursor.Offset:])
	l.last = l.cursor
	l.lastWidth = width

	l.cursor.Offset += width
	if r == '\n' {
		l.cursor.Line++
		l.cursor.Column = 0
	} else {
		l.cursor.Column += width
	}

	return r
}

// backupOne un-reads the most recently read rune.
func (l *lexer) backupOne() {
	if l.lastWidth == 0 {
		return
	}

	l.cursor = l.last
	l.last = l.prevLast
	l.lastWidth = 0
}

// peek returns the next rune without consuming it.
func (l *lexer) peek() rune {
	return l.peekAt(0)
}

// peekAt returns the rune n runes ahead without consuming anything.
func (l *lexer) peekAt(n int) rune {
	offset := l.cursor.Offset
	for {
		if offset >= len(l.input) {
			return EOF
		}

		r, width := utf8.DecodeRune(l.input[offset:])
		if n == 0 {
			return r
		}

		n--
		offset += width
	}
}

func (l *lexer) acceptOne(r rune) bool {
	if l.peek() == r {
		l.next()
		return true
	}

	return false
}

// startToken marks the current cursor as the start of the next token.
func (l *lexer) startToken() {
	l.start = l.cursor
}

// endPos is the position of the last byte read.
func (l *lexer) endPos() ast.Position {
	if l.cursor.Offset == l.start.Offset {
		return l.start
	}

	end := l.last
	extra := l.cursor.Offset - 1 - l.last.Offset
	end.Offset += extra
	end.Column += extra

	return end
}

func (l *lexer) emit(ty TokenType) {
	l.tokens = append(l.tokens, Token{
		Type:        ty,
		Range:       ast.NewRange(l.start, l.endPos()),
		SpaceBefore: l.spaceBefore,
	})
	l.spaceBefore = false
}

func (l *lexer) emitError(err error) {
	l.tokens = append(l.tokens, Token{
		Type:        TokenError,
		Range:       ast.NewRange(l.start, l.endPos()),
		SpaceBefore: l.spaceBefore,
		Error:       err,
	})
	l.spaceBefore = false
}

func isIdentifierStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentifierContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
