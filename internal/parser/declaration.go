package parser

import (
	"nestflat/internal/ast"
	"nestflat/internal/lexer"
)

// parseDeclaration parses annotations, visibility and the rest of a
// declaration.
func (p *parser) parseDeclaration(inField bool) (*ast.Declaration, error) {
	annotations, err := p.parseOuterAnnotations()
	if err != nil {
		return nil, err
	}

	visibility := p.parseVisibility()

	if !p.isKeyword(KeywordStruct) {
		syntaxErr := p.syntaxError("'struct'")
		if p.current.Is(lexer.TokenIdentifier) {
			syntaxErr.Suggestion = suggestKeyword(p.currentSource(), KeywordStruct)
		}
		return nil, syntaxErr
	}

	return p.parseDeclarationRest(annotations, visibility, inField)
}

// parseDeclarationRest parses a declaration from its `struct` keyword on.
// The annotations and visibility have already been parsed.
func (p *parser) parseDeclarationRest(
	annotations []*ast.Annotation,
	visibility ast.Visibility,
	inField bool,
) (*ast.Declaration, error) {
	startPos := p.current.StartPos
	if len(annotations) > 0 {
		startPos = annotations[0].StartPos
	}

	parentPath := p.path
	if err := p.enterDeclaration(p.current.StartPos); err != nil {
		return nil, err
	}
	defer p.leaveDeclaration(parentPath)

	// struct keyword
	p.next()

	identity, err := p.parseIdentity()
	if err != nil {
		return nil, err
	}

	if parentPath == nil {
		p.path = ast.NewTypePath(identity.Name())
	} else {
		p.path = parentPath.Child(identity.Name())
	}

	generics, err := p.parseGenerics()
	if err != nil {
		return nil, err
	}

	fields, err := p.parseFields(inField)
	if err != nil {
		return nil, err
	}

	endPos := p.tokens[max(p.pos-1, 0)].EndPos

	return &ast.Declaration{
		Annotations: annotations,
		Visibility:  visibility,
		Identity:    identity,
		Generics:    generics,
		Fields:      fields,
		Range:       ast.NewRange(startPos, endPos),
	}, nil
}

func (p *parser) parseIdentity() (ast.Identity, error) {
	first, err := p.mustIdentifier("type name")
	if err != nil {
		return ast.Identity{}, err
	}

	if !p.current.Is(lexer.TokenColon) {
		return ast.NewBareIdentity(first), nil
	}

	// colon
	p.next()

	annotations, err := p.parseOuterAnnotations()
	if err != nil {
		return ast.Identity{}, err
	}

	typeName, err := p.mustIdentifier("type name")
	if err != nil {
		return ast.Identity{}, err
	}

	return ast.NewFieldTypedIdentity(first, annotations, typeName), nil
}

// parseVisibility parses `pub`, optionally followed by a parenthesized
// restriction such as `(crate)` or `(in a::b)`.
func (p *parser) parseVisibility() ast.Visibility {
	if !p.isKeyword(KeywordPub) {
		return ast.Visibility{}
	}

	tokens := ast.Tokens{p.astToken(p.current)}
	p.next()

	if p.current.Is(lexer.TokenParenOpen) {
		tokens = append(tokens, p.astToken(p.current))
		p.next()

		tokens = append(tokens, p.collectUntil(func(lexer.Token, int) bool {
			return false
		})...)

		if p.current.Is(lexer.TokenParenClose) {
			tokens = append(tokens, p.astToken(p.current))
			p.next()
		}
	}

	return ast.Visibility{Tokens: trimSpace(tokens)}
}

func (p *parser) parseGenerics() (ast.Generics, error) {
	var generics ast.Generics

	if p.current.Is(lexer.TokenLess) {
		// opening angle bracket
		p.next()

		for !p.current.Is(lexer.TokenGreater) {
			param, err := p.parseGenericParam()
			if err != nil {
				return generics, err
			}
			generics.Params = append(generics.Params, param)

			if p.current.Is(lexer.TokenComma) {
				p.next()
				continue
			}

			if !p.current.Is(lexer.TokenGreater) {
				return generics, p.syntaxError("',' or '>'")
			}
		}

		// closing angle bracket
		p.next()
	}

	if p.isKeyword(KeywordWhere) {
		whereToken := p.current
		p.next()

		predicates := p.collectUntil(func(token lexer.Token, _ int) bool {
			return token.Is(lexer.TokenBraceOpen) ||
				token.Is(lexer.TokenSemicolon)
		})

		if len(predicates) > 0 && predicates[len(predicates)-1].Text == "," {
			predicates = predicates[:len(predicates)-1]
		}

		if len(predicates) == 0 {
			return generics, NewSyntaxError(
				whereToken.EndPos,
				"where predicate",
				describeToken(p.current, p.input),
			)
		}

		generics.Where = trimSpace(predicates)
	}

	return generics, nil
}

// parseGenericParam parses one parameter up to the ',' or '>' after it.
func (p *parser) parseGenericParam() (ast.GenericParam, error) {
	startToken := p.current
	startIndex := p.pos

	tokens := p.collectUntil(func(token lexer.Token, angles int) bool {
		return angles == 0 &&
			(token.Is(lexer.TokenComma) || token.Is(lexer.TokenGreater))
	})

	// skip attributes on the parameter
	i := startIndex
	for i < p.pos && p.tokens[i].Is(lexer.TokenPound) {
		for i < p.pos && !p.tokens[i].Is(lexer.TokenBracketClose) {
			i++
		}
		i++
	}

	if i >= p.pos {
		return ast.GenericParam{}, p.syntaxError("generic parameter")
	}

	param := ast.GenericParam{
		Tokens: trimSpace(tokens),
	}

	head := p.tokens[i]
	switch {
	case head.Is(lexer.TokenLifetime):
		param.Kind = ast.GenericLifetime
		param.Name = string(head.Source(p.input))

	case head.Is(lexer.TokenIdentifier) && string(head.Source(p.input)) == KeywordConst:
		if i+1 >= p.pos || !p.tokens[i+1].Is(lexer.TokenIdentifier) {
			return ast.GenericParam{}, NewSyntaxError(
				head.EndPos,
				"const parameter name",
				describeToken(p.tokens[i+1], p.input),
			)
		}
		param.Kind = ast.GenericConst
		param.Name = string(p.tokens[i+1].Source(p.input))

	case head.Is(lexer.TokenIdentifier):
		param.Kind = ast.GenericType
		param.Name = string(head.Source(p.input))

	default:
		return ast.GenericParam{}, NewSyntaxError(
			startToken.StartPos,
			"generic parameter",
			describeToken(head, p.input),
		)
	}

	return param, nil
}

func (p *parser) parseFields(inField bool) (ast.Fields, error) {
	switch {
	case p.current.Is(lexer.TokenSemicolon):
		p.next()
		return ast.UnitFields(), nil

	case p.current.Is(lexer.TokenBraceOpen):
		p.next()
		return p.parseFieldList()

	case inField && (p.current.Is(lexer.TokenComma) || p.current.Is(lexer.TokenBraceClose)):
		return ast.UnitFields(), nil

	case !inField && p.current.Is(lexer.TokenEOF):
		return ast.UnitFields(), nil
	}

	return ast.Fields{}, p.syntaxError("'{' or ';'")
}

// parseFieldList parses the entries of a field block after the opening brace.
func (p *parser) parseFieldList() (ast.Fields, error) {
	fields := []*ast.Field{}

	for !p.current.Is(lexer.TokenBraceClose) {
		field, err := p.parseField()
		if err != nil {
			return ast.Fields{}, err
		}
		fields = append(fields, field)

		if p.current.Is(lexer.TokenComma) {
			p.next()
			continue
		}

		if !p.current.Is(lexer.TokenBraceClose) {
			return ast.Fields{}, p.syntaxError("',' or '}'")
		}
	}

	// closing brace
	p.next()

	return ast.NamedFields(fields...), nil
}

// parseField parses a plain field or a nested declaration. The two are told
// apart by the token after the annotations and visibility: a nested
// declaration starts with the `struct` keyword.
func (p *parser) parseField() (*ast.Field, error) {
	annotations, err := p.parseOuterAnnotations()
	if err != nil {
		return nil, err
	}

	visibility := p.parseVisibility()

	if p.isKeyword(KeywordStruct) {
		decl, err := p.parseDeclarationRest(annotations, visibility, true)
		if err != nil {
			return nil, err
		}

		return ast.NewNestedField(decl), nil
	}

	startPos := p.current.StartPos
	if len(annotations) > 0 {
		startPos = annotations[0].StartPos
	}

	word := p.current
	name, err := p.mustIdentifier("field name or 'struct'")
	if err != nil {
		return nil, err
	}

	if !p.current.Is(lexer.TokenColon) {
		syntaxErr := p.syntaxError("':'")
		if p.current.Is(lexer.TokenIdentifier) {
			suggestion := suggestKeyword(name.Name, KeywordStruct)
			if suggestion != "" {
				syntaxErr.Pos = word.StartPos
				syntaxErr.Suggestion = suggestion
			}
		}
		return nil, syntaxErr
	}

	// colon
	p.next()

	ty, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}

	field := ast.NewPlainField(annotations, visibility, name, ty)
	field.Range = ast.NewRange(startPos, p.tokens[p.pos-1].EndPos)

	return field, nil
}

// parseFieldType collects the type of a plain field up to the ',' or '}'
// that ends the field. A ':', a 'struct' keyword or an unbalanced '>' at
// the top level means the field was not terminated.
func (p *parser) parseFieldType() (ast.Tokens, error) {
	ty := p.collectUntil(func(token lexer.Token, angles int) bool {
		if angles > 0 {
			return false
		}

		return token.Is(lexer.TokenComma) ||
			token.Is(lexer.TokenBraceClose) ||
			token.Is(lexer.TokenColon) ||
			token.Is(lexer.TokenGreater) ||
			p.isKeyword(KeywordStruct)
	})
	if len(ty) == 0 {
		return nil, p.syntaxError("type")
	}

	switch {
	case p.current.Is(lexer.TokenColon):
		// the last collected token is the name of the next field
		name := p.tokens[p.pos-1]
		return nil, NewSyntaxError(
			name.StartPos,
			"',' or '}'",
			describeToken(name, p.input),
		)

	case p.current.Is(lexer.TokenGreater),
		p.isKeyword(KeywordStruct):
		return nil, p.syntaxError("',' or '}'")
	}

	return trimSpace(ty), nil
}
