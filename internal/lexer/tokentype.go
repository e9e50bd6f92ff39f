package lexer

//go:generate go tool stringer -type=TokenType -linecomment -output=tokentype_string.go

type TokenType uint8

const EOF rune = -1

const (
	TokenError         TokenType = iota // error
	TokenEOF                            // end of input
	TokenIdentifier                     // identifier
	TokenLifetime                       // lifetime
	TokenString                         // string literal
	TokenChar                           // character literal
	TokenNumber                         // number literal
	TokenOuterLineDoc                   // doc comment
	TokenInnerLineDoc                   // inner doc comment
	TokenOuterBlockDoc                  // block doc comment
	TokenInnerBlockDoc                  // inner block doc comment
	TokenPound                          // '#'
	TokenBang                           // '!'
	TokenBracketOpen                    // '['
	TokenBracketClose                   // ']'
	TokenParenOpen                      // '('
	TokenParenClose                     // ')'
	TokenBraceOpen                      // '{'
	TokenBraceClose                     // '}'
	TokenLess                           // '<'
	TokenGreater                        // '>'
	TokenComma                          // ','
	TokenSemicolon                      // ';'
	TokenColon                          // ':'
	TokenPathSeparator                  // '::'
	TokenEqual                          // '='
	TokenAmpersand                      // '&'
	TokenStar                           // '*'
	TokenPlus                           // '+'
	TokenMinus                          // '-'
	TokenSlash                          // '/'
	TokenPercent                        // '%'
	TokenCaret                          // '^'
	TokenTilde                          // '~'
	TokenVerticalBar                    // '|'
	TokenQuestionMark                   // '?'
	TokenAt                             // '@'
	TokenDollar                         // '$'
	TokenDot                            // '.'
	TokenDotDot                         // '..'
	TokenRightArrow                     // '->'
	TokenFatArrow                       // '=>'
	// NOTE: not an actual token, must be last item
	TokenMax
)

func init() {
	// ensure all tokens have its string format
	for t := TokenType(0); t < TokenMax; t++ {
		_ = t.String()
	}
}

// IsDocComment reports whether the token type is one of the doc comment kinds.
func (t TokenType) IsDocComment() bool {
	switch t {
	case TokenOuterLineDoc, TokenInnerLineDoc, TokenOuterBlockDoc, TokenInnerBlockDoc:
		return true
	}

	return false
}

// IsInnerDocComment reports whether the token is a `//!` or `/*!` comment.
func (t TokenType) IsInnerDocComment() bool {
	return t == TokenInnerLineDoc || t == TokenInnerBlockDoc
}
