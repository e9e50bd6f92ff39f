package flatten

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"nestflat/internal/ast"
	"nestflat/internal/casing"
)

// randomDeclaration builds a declaration tree nested at most depth levels.
// Type names are unique within the tree.
func randomDeclaration(rng *rand.Rand, depth int, counter *int) *ast.Declaration {
	name := fmt.Sprintf("Type%d", *counter)
	*counter++

	decl := &ast.Declaration{
		Identity: ast.NewBareIdentity(ast.Identifier{Name: name}),
	}

	if rng.Intn(5) == 0 {
		decl.Fields = ast.UnitFields()
		return decl
	}

	count := rng.Intn(5)
	fields := make([]*ast.Field, 0, count)

	for i := 0; i < count; i++ {
		if depth > 1 && rng.Intn(3) == 0 {
			child := randomDeclaration(rng, depth-1, counter)
			if rng.Intn(2) == 0 {
				child.Identity = ast.NewFieldTypedIdentity(
					ast.Identifier{Name: fmt.Sprintf("f%d", i)},
					[]*ast.Annotation{ast.NewAttribute("serde", ast.NewTokens("serde"))},
					child.Identity.TypeName,
				)
			}
			fields = append(fields, ast.NewNestedField(child))
			continue
		}

		fields = append(fields, ast.NewPlainField(
			nil,
			ast.Visibility{},
			ast.Identifier{Name: fmt.Sprintf("field%d", i)},
			ast.NewTokens("u8"),
		))
	}

	decl.Fields = ast.NamedFields(fields...)

	return decl
}

func genDeclaration(depth int) gopter.Gen {
	return gen.Int64().Map(func(seed int64) *ast.Declaration {
		counter := 0
		return randomDeclaration(rand.New(rand.NewSource(seed)), depth, &counter)
	})
}

// expectedFieldNames returns the field names a declaration has after
// flattening.
func expectedFieldNames(decl *ast.Declaration) []string {
	names := make([]string, len(decl.Fields.Named))
	for i, field := range decl.Fields.Named {
		switch field.Kind {
		case ast.FieldPlain:
			names[i] = field.Name.Name
		case ast.FieldNested:
			switch field.Decl.Identity.Kind {
			case ast.IdentityFieldTyped:
				names[i] = field.Decl.Identity.FieldName.Name
			default:
				names[i] = casing.ToFieldName(field.Decl.Name())
			}
		}
	}

	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func TestFlatten_Properties(t *testing.T) {
	t.Parallel()

	globals := []*ast.Annotation{
		{Kind: ast.AnnotationAttribute, Inner: true, Path: "derive", Tokens: ast.NewTokens("derive(Debug)")},
		{Kind: ast.AnnotationDocComment, Inner: true, Text: " global"},
	}

	properties := gopter.NewProperties(nil)

	properties.Property("every nested field becomes one plain field", prop.ForAll(
		func(root *ast.Declaration) bool {
			decls, err := FlattenDeclaration(root, nil, Config{})
			if err != nil {
				return false
			}

			before := ast.CountFields(root)
			after := ast.CountFields(decls...)

			return after.Nested == 0 &&
				after.Plain == before.Plain+before.Nested &&
				len(decls) == ast.CountDeclarations(root)
		},
		genDeclaration(5),
	))

	properties.Property("declarations are emitted depth-first in field order", prop.ForAll(
		func(root *ast.Declaration) bool {
			decls, err := FlattenDeclaration(root, nil, Config{})
			if err != nil {
				return false
			}

			var originals []*ast.Declaration
			ast.Walk(root, func(decl *ast.Declaration, _ int) bool {
				originals = append(originals, decl)
				return true
			})

			if len(originals) != len(decls) {
				return false
			}

			for i, original := range originals {
				if decls[i].Name() != original.Name() {
					return false
				}

				if !equalStrings(expectedFieldNames(original), fieldNames(decls[i])) {
					return false
				}
			}

			return true
		},
		genDeclaration(5),
	))

	properties.Property("flat output flattens to itself", prop.ForAll(
		func(root *ast.Declaration) bool {
			decls, err := FlattenDeclaration(root, nil, Config{})
			if err != nil {
				return false
			}

			for _, decl := range decls {
				again, err := FlattenDeclaration(decl, nil, Config{})
				if err != nil || len(again) != 1 {
					return false
				}

				if again[0].String() != decl.String() {
					return false
				}
			}

			return true
		},
		genDeclaration(5),
	))

	properties.Property("global annotations lead every declaration", prop.ForAll(
		func(root *ast.Declaration) bool {
			decls, err := FlattenDeclaration(root, globals, Config{})
			if err != nil {
				return false
			}

			for _, decl := range decls {
				if len(decl.Annotations) < len(globals) {
					return false
				}

				for i, global := range globals {
					annotation := decl.Annotations[i]
					if annotation.Inner || annotation.String() != global.Outer().String() {
						return false
					}
				}
			}

			return true
		},
		genDeclaration(5),
	))

	properties.TestingRun(t)
}
