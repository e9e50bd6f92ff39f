// Package parser reads a declaration block into an ast.Block.
//
// The grammar:
//
//	block        := inner-annotation* declaration
//	declaration  := annotation* visibility 'struct' identity generics? where? fields
//	identity     := NAME | NAME ':' annotation* NAME
//	generics     := '<' param (',' param)* ','? '>'
//	fields       := ';' | '{' field (',' field)* ','? '}'
//	field        := annotation* visibility ( declaration | NAME ':' type )
//
// A unit declaration may leave out its ';' at the end of the block and
// before the ',' or '}' that ends a field.
//
// The parser stops at the first error and returns a *SyntaxError, or a
// *errors.NestingTooDeepError when declarations nest deeper than
// Config.MaxDepth.
package parser

import (
	"strings"

	"nestflat/internal/ast"
	"nestflat/internal/errors"
	"nestflat/internal/lexer"
)

// Config controls parsing.
type Config struct {
	// MaxDepth is the deepest allowed nesting of declarations.
	// The root declaration has depth 1. Zero means errors.DefaultMaxDepth.
	MaxDepth int
}

func (c Config) maxDepth() int {
	if c.MaxDepth <= 0 {
		return errors.DefaultMaxDepth
	}

	return c.MaxDepth
}

type parser struct {
	input   []byte
	tokens  []lexer.Token
	pos     int
	current lexer.Token
	config  Config
	// depth is the nesting depth of the declaration being parsed.
	depth int
	path  *ast.TypePath
}

// ParseBlock parses a block: leading inner annotations followed by exactly
// one root declaration.
func ParseBlock(input []byte, config Config) (*ast.Block, error) {
	p := newParser(input, config)

	globals, err := p.parseInnerAnnotations()
	if err != nil {
		return nil, err
	}

	root, err := p.parseDeclaration(false)
	if err != nil {
		return nil, err
	}

	if !p.current.Is(lexer.TokenEOF) {
		return nil, p.syntaxError("end of input")
	}

	return &ast.Block{
		GlobalAnnotations: globals,
		Root:              root,
	}, nil
}

// ParseDeclaration parses a single declaration without block-level
// annotations.
func ParseDeclaration(input []byte, config Config) (*ast.Declaration, error) {
	p := newParser(input, config)

	decl, err := p.parseDeclaration(false)
	if err != nil {
		return nil, err
	}

	if !p.current.Is(lexer.TokenEOF) {
		return nil, p.syntaxError("end of input")
	}

	return decl, nil
}

func newParser(input []byte, config Config) *parser {
	p := &parser{
		input:  input,
		tokens: lexer.Lex(input),
		pos:    -1,
		config: config,
	}
	p.next()
	return p
}

func (p *parser) next() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.current = p.tokens[p.pos]
}

// peek returns the token after the current one.
func (p *parser) peek() lexer.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}

	return p.tokens[len(p.tokens)-1]
}

func (p *parser) currentSource() string {
	return string(p.current.Source(p.input))
}

func (p *parser) isKeyword(keyword string) bool {
	return p.current.Is(lexer.TokenIdentifier) &&
		p.currentSource() == keyword
}

func (p *parser) astToken(token lexer.Token) ast.Token {
	return ast.Token{
		Text:        string(token.Source(p.input)),
		SpaceBefore: token.SpaceBefore,
	}
}

// syntaxError reports the current token as unexpected. Lexer errors are
// reported with their own message.
func (p *parser) syntaxError(expected string) *SyntaxError {
	if p.current.Is(lexer.TokenError) {
		return &SyntaxError{
			Pos:      p.current.StartPos,
			Expected: expected,
			Message:  p.current.Error.Error(),
		}
	}

	return NewSyntaxError(
		p.current.StartPos,
		expected,
		describeToken(p.current, p.input),
	)
}

func (p *parser) mustOne(ty lexer.TokenType) (lexer.Token, error) {
	token := p.current
	if !token.Is(ty) {
		return token, p.syntaxError(ty.String())
	}

	p.next()
	return token, nil
}

func (p *parser) mustIdentifier(expected string) (ast.Identifier, error) {
	if !p.current.Is(lexer.TokenIdentifier) {
		return ast.Identifier{}, p.syntaxError(expected)
	}

	identifier := ast.Identifier{
		Name: p.currentSource(),
		Pos:  p.current.StartPos,
	}
	p.next()

	return identifier, nil
}

// enterDeclaration tracks the nesting depth of the declaration about to
// be parsed.
func (p *parser) enterDeclaration(pos ast.Position) error {
	p.depth++

	limit := p.config.maxDepth()
	if p.depth > limit {
		path := ""
		if p.path != nil {
			path = p.path.String()
		}

		return &errors.NestingTooDeepError{
			Depth: p.depth,
			Limit: limit,
			Path:  path,
			Pos:   pos,
		}
	}

	return nil
}

func (p *parser) leaveDeclaration(path *ast.TypePath) {
	p.depth--
	p.path = path
}

// collectUntil collects the tokens up to, but excluding, the first token at
// bracket depth 0 for which stop returns true. `<` and `>` only count as
// brackets outside of other brackets. Collection also stops at the end of
// input and at an unbalanced closing bracket.
func (p *parser) collectUntil(stop func(token lexer.Token, angles int) bool) ast.Tokens {
	var tokens ast.Tokens
	nesting := 0
	angles := 0

	for {
		token := p.current

		if token.Is(lexer.TokenEOF) || token.Is(lexer.TokenError) {
			return tokens
		}

		if nesting == 0 && stop(token, angles) {
			return tokens
		}

		switch token.Type {
		case lexer.TokenParenOpen, lexer.TokenBracketOpen, lexer.TokenBraceOpen:
			nesting++
		case lexer.TokenParenClose, lexer.TokenBracketClose, lexer.TokenBraceClose:
			if nesting == 0 {
				return tokens
			}
			nesting--
		case lexer.TokenLess:
			if nesting == 0 {
				angles++
			}
		case lexer.TokenGreater:
			if nesting == 0 && angles > 0 {
				angles--
			}
		}

		tokens = append(tokens, p.astToken(token))
		p.next()
	}
}

// trimSpace clears the leading space of a collected run, so that it renders
// the same wherever it is placed.
func trimSpace(tokens ast.Tokens) ast.Tokens {
	if len(tokens) == 0 || !tokens[0].SpaceBefore {
		return tokens
	}

	trimmed := make(ast.Tokens, len(tokens))
	copy(trimmed, tokens)
	trimmed[0].SpaceBefore = false

	return trimmed
}

func docCommentText(source string, block bool) string {
	if block {
		return source[3 : len(source)-2]
	}

	return strings.TrimRight(source[3:], "\r")
}
