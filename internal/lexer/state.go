package lexer

import (
	"fmt"
)

// stateFn reads runes and emits tokens.
//
// It either returns nil when reaching end of input,
// or returns another stateFn for more scanning work.
type stateFn func(*lexer) stateFn

// rootState scans punctuation and dispatches to the other states.
func rootState(l *lexer) stateFn {
	for {
		l.startToken()

		var ty TokenType

		r := l.next()
		switch r {
		case EOF:
			return nil
		case ' ', '\t', '\r', '\n', '\f', '\v':
			l.spaceBefore = true
			continue
		case '#':
			ty = TokenPound
		case '!':
			ty = TokenBang
		case '[':
			ty = TokenBracketOpen
		case ']':
			ty = TokenBracketClose
		case '(':
			ty = TokenParenOpen
		case ')':
			ty = TokenParenClose
		case '{':
			ty = TokenBraceOpen
		case '}':
			ty = TokenBraceClose
		case '<':
			ty = TokenLess
		case '>':
			ty = TokenGreater
		case ',':
			ty = TokenComma
		case ';':
			ty = TokenSemicolon
		case ':':
			if l.acceptOne(':') {
				ty = TokenPathSeparator
			} else {
				ty = TokenColon
			}
		case '=':
			if l.acceptOne('>') {
				ty = TokenFatArrow
			} else {
				ty = TokenEqual
			}
		case '&':
			ty = TokenAmpersand
		case '*':
			ty = TokenStar
		case '+':
			ty = TokenPlus
		case '-':
			if l.acceptOne('>') {
				ty = TokenRightArrow
			} else {
				ty = TokenMinus
			}
		case '%':
			ty = TokenPercent
		case '^':
			ty = TokenCaret
		case '~':
			ty = TokenTilde
		case '|':
			ty = TokenVerticalBar
		case '?':
			ty = TokenQuestionMark
		case '@':
			ty = TokenAt
		case '$':
			ty = TokenDollar
		case '.':
			if l.acceptOne('.') {
				// `...` and `..=` are lexed as `..` followed by `.` or `=`
				ty = TokenDotDot
			} else {
				ty = TokenDot
			}
		case '/':
			switch l.peek() {
			case '/':
				l.next()
				return lineCommentState
			case '*':
				l.next()
				return blockCommentState
			default:
				ty = TokenSlash
			}
		case '"':
			return stringState
		case '\'':
			return quoteState
		default:
			switch {
			case r >= '0' && r <= '9':
				return numberState
			case isIdentifierStart(r):
				return identifierState
			default:
				return l.error(fmt.Errorf("unrecognized character: %#U", r))
			}
		}

		l.emit(ty)
	}
}

func (l *lexer) error(err error) stateFn {
	l.emitError(err)
	return nil
}

// identifierState scans an identifier, a raw identifier (`r#type`), or a
// prefixed literal (`b"..."`, `r#"..."#`, `b'x'`).
func identifierState(l *lexer) stateFn {
	l.scanIdentifierRemainder()
	word := string(l.input[l.start.Offset:l.cursor.Offset])

	switch word {
	case "r", "br":
		switch l.peek() {
		case '"':
			return rawStringState(0)
		case '#':
			hashes := 0
			for l.peekAt(hashes) == '#' {
				hashes++
			}

			if l.peekAt(hashes) == '"' {
				for i := 0; i < hashes; i++ {
					l.next()
				}
				return rawStringState(hashes)
			}

			if word == "r" && hashes == 1 && isIdentifierStart(l.peekAt(1)) {
				l.next()
				l.next()
				l.scanIdentifierRemainder()
			}
		}

	case "b":
		switch l.peek() {
		case '"':
			l.next()
			return stringState
		case '\'':
			l.next()
			return quoteState
		}
	}

	l.emit(TokenIdentifier)
	return rootState
}

func (l *lexer) scanIdentifierRemainder() {
	for {
		r := l.next()
		if r == EOF {
			return
		}

		if !isIdentifierContinue(r) {
			l.backupOne()
			return
		}
	}
}

// numberState scans a number literal, including suffixes (`1u8`),
// separators (`1_000`) and fractions (`1.5`).
func numberState(l *lexer) stateFn {
	for {
		r := l.next()
		switch {
		case r == EOF:
			l.emit(TokenNumber)
			return nil
		case isIdentifierContinue(r):
			continue
		case r == '.' && l.peek() >= '0' && l.peek() <= '9':
			continue
		default:
			l.backupOne()
			l.emit(TokenNumber)
			return rootState
		}
	}
}

// stringState scans the remainder of a string literal after the opening quote.
func stringState(l *lexer) stateFn {
	for {
		r := l.next()
		switch r {
		case EOF:
			return l.error(fmt.Errorf("unterminated string literal"))
		case '\\':
			l.next()
		case '"':
			l.emit(TokenString)
			return rootState
		}
	}
}

// rawStringState scans a raw string literal closed by `"` and hashes `#`.
func rawStringState(hashes int) stateFn {
	return func(l *lexer) stateFn {
		// opening quote
		l.next()

		for {
			r := l.next()
			switch r {
			case EOF:
				return l.error(fmt.Errorf("unterminated raw string literal"))
			case '"':
				closing := 0
				for closing < hashes && l.peek() == '#' {
					l.next()
					closing++
				}

				if closing == hashes {
					l.emit(TokenString)
					return rootState
				}
			}
		}
	}
}

// quoteState scans a lifetime (`'a`) or a character literal (`'a'`, `'\n'`)
// after the opening quote.
func quoteState(l *lexer) stateFn {
	r := l.next()
	switch {
	case r == EOF:
		return l.error(fmt.Errorf("unterminated character literal"))

	case r == '\\':
		// the escaped character, which may itself be a quote
		if escaped := l.next(); escaped == EOF || escaped == '\n' {
			return l.error(fmt.Errorf("unterminated character literal"))
		}

		for {
			r = l.next()
			switch r {
			case EOF, '\n':
				return l.error(fmt.Errorf("unterminated character literal"))
			case '\'':
				l.emit(TokenChar)
				return rootState
			}
		}

	case isIdentifierStart(r):
		if l.acceptOne('\'') {
			l.emit(TokenChar)
			return rootState
		}

		l.scanIdentifierRemainder()
		l.emit(TokenLifetime)
		return rootState

	default:
		if l.acceptOne('\'') {
			l.emit(TokenChar)
			return rootState
		}

		return l.error(fmt.Errorf("unterminated character literal"))
	}
}

// lineCommentState scans a line comment after `//`. Doc comments are
// emitted as tokens, plain comments are trivia.
func lineCommentState(l *lexer) stateFn {
	ty := TokenError
	switch {
	case l.peek() == '/' && l.peekAt(1) != '/':
		ty = TokenOuterLineDoc
	case l.peek() == '!':
		ty = TokenInnerLineDoc
	}

	for {
		r := l.next()
		if r == EOF {
			break
		}

		if r == '\n' {
			l.backupOne()
			break
		}
	}

	if ty == TokenError {
		l.spaceBefore = true
	} else {
		l.emit(ty)
	}

	return rootState
}

// blockCommentState scans a block comment after `/*`. Block comments nest.
// Doc comments are emitted as tokens, plain comments are trivia.
func blockCommentState(l *lexer) stateFn {
	ty := TokenError
	switch {
	case l.peek() == '*' && l.peekAt(1) != '*' && l.peekAt(1) != '/':
		ty = TokenOuterBlockDoc
	case l.peek() == '!':
		ty = TokenInnerBlockDoc
	}

	depth := 1
	for depth > 0 {
		r := l.next()
		switch r {
		case EOF:
			return l.error(fmt.Errorf("unterminated block comment"))
		case '/':
			if l.acceptOne('*') {
				depth++
			}
		case '*':
			if l.acceptOne('/') {
				depth--
			}
		}
	}

	if ty == TokenError {
		l.spaceBefore = true
	} else {
		l.emit(ty)
	}

	return rootState
}
