package parser

import (
	"strings"

	"nestflat/internal/ast"
	"nestflat/internal/lexer"
)

// parseInnerAnnotations parses the inner attributes and inner doc comments
// at the start of a block.
func (p *parser) parseInnerAnnotations() ([]*ast.Annotation, error) {
	var annotations []*ast.Annotation

	for {
		switch {
		case p.current.Type.IsInnerDocComment():
			annotations = append(annotations, p.parseDocComment())

		case p.current.Is(lexer.TokenPound) && p.peek().Is(lexer.TokenBang):
			annotation, err := p.parseAttribute()
			if err != nil {
				return nil, err
			}
			annotations = append(annotations, annotation)

		default:
			return annotations, nil
		}
	}
}

// parseOuterAnnotations parses the outer attributes and outer doc comments
// in front of a declaration, a field or a type name.
func (p *parser) parseOuterAnnotations() ([]*ast.Annotation, error) {
	var annotations []*ast.Annotation

	for {
		switch {
		case p.current.Type.IsInnerDocComment():
			return nil, &SyntaxError{
				Pos:     p.current.StartPos,
				Message: "inner doc comments are only allowed at the start of the block",
			}

		case p.current.Type.IsDocComment():
			annotations = append(annotations, p.parseDocComment())

		case p.current.Is(lexer.TokenPound):
			if p.peek().Is(lexer.TokenBang) {
				return nil, &SyntaxError{
					Pos:     p.current.StartPos,
					Message: "inner attributes are only allowed at the start of the block",
				}
			}

			annotation, err := p.parseAttribute()
			if err != nil {
				return nil, err
			}
			annotations = append(annotations, annotation)

		default:
			return annotations, nil
		}
	}
}

func (p *parser) parseDocComment() *ast.Annotation {
	token := p.current
	p.next()

	block := token.Is(lexer.TokenOuterBlockDoc) || token.Is(lexer.TokenInnerBlockDoc)

	return &ast.Annotation{
		Kind:  ast.AnnotationDocComment,
		Inner: token.Type.IsInnerDocComment(),
		Text:  docCommentText(string(token.Source(p.input)), block),
		Block: block,
		Range: token.Range,
	}
}

// parseAttribute parses `#[...]` or `#![...]`.
func (p *parser) parseAttribute() (*ast.Annotation, error) {
	startPos := p.current.StartPos

	// pound
	p.next()

	inner := false
	if p.current.Is(lexer.TokenBang) {
		inner = true
		p.next()
	}

	if _, err := p.mustOne(lexer.TokenBracketOpen); err != nil {
		return nil, err
	}

	body := p.collectUntil(func(token lexer.Token, _ int) bool {
		return token.Is(lexer.TokenBracketClose)
	})

	endToken, err := p.mustOne(lexer.TokenBracketClose)
	if err != nil {
		return nil, err
	}

	body = trimSpace(body)
	if body.IsEmpty() {
		return nil, NewSyntaxError(endToken.StartPos, "attribute path", "']'")
	}

	return &ast.Annotation{
		Kind:   ast.AnnotationAttribute,
		Inner:  inner,
		Path:   attributePath(body),
		Tokens: body,
		Range:  ast.NewRange(startPos, endToken.EndPos),
	}, nil
}

// attributePath returns the leading `a::b::c` path of an attribute body.
func attributePath(body ast.Tokens) string {
	var sb strings.Builder

	expectName := true
	for _, token := range body {
		switch {
		case token.Text == "::" && !expectName:
			sb.WriteString(token.Text)
			expectName = true
		case expectName && isPathSegment(token.Text):
			sb.WriteString(token.Text)
			expectName = false
		default:
			return sb.String()
		}
	}

	return sb.String()
}

func isPathSegment(text string) bool {
	if text == "" {
		return false
	}

	for i, r := range text {
		switch {
		case r == '_' || r == '#':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		case r > 0x7f:
		default:
			return false
		}
	}

	return true
}
