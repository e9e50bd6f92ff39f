package ast

import "github.com/turbolent/prettier"

type GenericParamKind uint8

const (
	GenericLifetime GenericParamKind = iota
	GenericType
	GenericConst
)

// GenericParam is one declared generic parameter, e.g. `'a`, `T: Clone` or
// `const N: usize = 4`.
type GenericParam struct {
	Kind GenericParamKind
	// Name is the name used to instantiate the parameter: `'a`, `T`, `N`.
	Name string
	// Tokens is the full declaration, including attributes, bounds and default.
	Tokens Tokens
}

// Generics is the generic parameter list and where clause of a declaration.
type Generics struct {
	Params []GenericParam
	// Where is the list of where predicates, without the `where` keyword.
	Where Tokens
}

func (g Generics) IsEmpty() bool {
	return len(g.Params) == 0 && g.Where.IsEmpty()
}

// Arguments returns the parameter names as an instantiation argument list,
// e.g. `<'a, T, N>`. It is empty when there are no parameters.
func (g Generics) Arguments() Tokens {
	if len(g.Params) == 0 {
		return nil
	}

	tokens := Tokens{{Text: "<"}}
	for i, param := range g.Params {
		if i > 0 {
			tokens = append(tokens, Token{Text: ","})
		}

		tokens = append(tokens, Token{Text: param.Name, SpaceBefore: i > 0})
	}

	return append(tokens, Token{Text: ">"})
}

// Turbofish returns the parameter names in explicit instantiation form,
// e.g. `::<'a, T, N>`, which is valid in both type and value position.
// It is empty when there are no parameters.
func (g Generics) Turbofish() Tokens {
	arguments := g.Arguments()
	if arguments == nil {
		return nil
	}

	return append(Tokens{{Text: "::"}}, arguments...)
}

// ParamsDoc renders the parameter declarations, e.g. `<'a, T: Clone>`.
func (g Generics) ParamsDoc() prettier.Doc {
	if len(g.Params) == 0 {
		return prettier.Concat{}
	}

	docs := make([]prettier.Doc, len(g.Params))
	for i, param := range g.Params {
		docs[i] = param.Tokens.Doc()
	}

	return prettier.Concat{
		prettier.Text("<"),
		prettier.Join(prettier.Text(", "), docs...),
		prettier.Text(">"),
	}
}

// WhereDoc renders the where clause with a leading space, or nothing.
func (g Generics) WhereDoc() prettier.Doc {
	if g.Where.IsEmpty() {
		return prettier.Concat{}
	}

	return prettier.Group{
		Doc: prettier.Concat{
			prettier.Line{},
			prettier.Text("where "),
			g.Where.Doc(),
		},
	}
}
