package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"nestflat/internal/ast"
	"nestflat/internal/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func parse(t *testing.T, input string) *ast.Block {
	t.Helper()

	block, err := ParseBlock([]byte(input), Config{})
	require.NoError(t, err)
	require.NotNil(t, block)
	require.NotNil(t, block.Root)

	return block
}

func parseError(t *testing.T, input string) *SyntaxError {
	t.Helper()

	_, err := ParseBlock([]byte(input), Config{})
	require.Error(t, err)

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)

	return syntaxErr
}

func TestParseBlock_PlainAndNestedFields(t *testing.T) {
	t.Parallel()

	block := parse(t, "struct P { a: i32, struct Q { b: i32 } }")
	root := block.Root

	assert.Empty(t, block.GlobalAnnotations)
	assert.Equal(t, "P", root.Name())
	assert.Equal(t, ast.IdentityBareName, root.Identity.Kind)
	assert.False(t, root.Fields.Unit)
	require.Len(t, root.Fields.Named, 2)

	a := root.Fields.Named[0]
	assert.Equal(t, ast.FieldPlain, a.Kind)
	assert.Equal(t, "a", a.Name.Name)
	assert.Equal(t, "i32", a.Type.String())

	q := root.Fields.Named[1]
	require.Equal(t, ast.FieldNested, q.Kind)
	assert.Equal(t, "Q", q.Decl.Name())
	require.Len(t, q.Decl.Fields.Named, 1)
	assert.Equal(t, "b", q.Decl.Fields.Named[0].Name.Name)

	assert.True(t, root.HasNestedFields())
	assert.False(t, q.Decl.HasNestedFields())
}

func TestParseBlock_FieldTypedIdentity(t *testing.T) {
	t.Parallel()

	block := parse(t, "struct P { pub struct inner: #[serde(skip)] Inner { x: u8 } }")

	require.Len(t, block.Root.Fields.Named, 1)
	field := block.Root.Fields.Named[0]
	require.Equal(t, ast.FieldNested, field.Kind)

	decl := field.Decl
	assert.Equal(t, "pub", decl.Visibility.String())
	assert.Equal(t, ast.IdentityFieldTyped, decl.Identity.Kind)
	assert.Equal(t, "inner", decl.Identity.FieldName.Name)
	assert.Equal(t, "Inner", decl.Identity.TypeName.Name)
	assert.Equal(t, "Inner", decl.Name())

	require.Len(t, decl.Identity.TypeAnnotations, 1)
	annotation := decl.Identity.TypeAnnotations[0]
	assert.Equal(t, ast.AnnotationAttribute, annotation.Kind)
	assert.Equal(t, "serde", annotation.Path)
	assert.Equal(t, "serde(skip)", annotation.Tokens.String())
	assert.Empty(t, decl.Annotations)
}

func TestParseBlock_Generics(t *testing.T) {
	t.Parallel()

	block := parse(t, "struct W<'a, T: Clone + 'a, const N: usize> where T: Default { r: &'a [T; N] }")
	generics := block.Root.Generics

	require.Len(t, generics.Params, 3)

	assert.Equal(t, ast.GenericLifetime, generics.Params[0].Kind)
	assert.Equal(t, "'a", generics.Params[0].Name)

	assert.Equal(t, ast.GenericType, generics.Params[1].Kind)
	assert.Equal(t, "T", generics.Params[1].Name)
	assert.Equal(t, "T: Clone + 'a", generics.Params[1].Tokens.String())

	assert.Equal(t, ast.GenericConst, generics.Params[2].Kind)
	assert.Equal(t, "N", generics.Params[2].Name)
	assert.Equal(t, "const N: usize", generics.Params[2].Tokens.String())

	assert.Equal(t, "T: Default", generics.Where.String())
	assert.Equal(t, "::<'a, T, N>", generics.Turbofish().String())

	require.Len(t, block.Root.Fields.Named, 1)
	assert.Equal(t, "&'a [T; N]", block.Root.Fields.Named[0].Type.String())
}

func TestParseBlock_GenericsTrailingComma(t *testing.T) {
	t.Parallel()

	block := parse(t, "struct W<T, U = Vec<T>,> { t: T }")
	generics := block.Root.Generics

	require.Len(t, generics.Params, 2)
	assert.Equal(t, "U", generics.Params[1].Name)
	assert.Equal(t, "U = Vec<T>", generics.Params[1].Tokens.String())
	assert.True(t, generics.Where.IsEmpty())
}

func TestParseBlock_UnitDeclarations(t *testing.T) {
	t.Parallel()

	t.Run("with terminator", func(t *testing.T) {
		t.Parallel()

		block := parse(t, "struct U;")
		assert.True(t, block.Root.Fields.Unit)
	})

	t.Run("without terminator", func(t *testing.T) {
		t.Parallel()

		block := parse(t, "pub struct U")
		assert.True(t, block.Root.Fields.Unit)
		assert.Equal(t, "pub", block.Root.Visibility.String())
	})

	t.Run("in field position", func(t *testing.T) {
		t.Parallel()

		block := parse(t, "struct P { struct A, pub struct B; }")
		require.Len(t, block.Root.Fields.Named, 2)

		for _, field := range block.Root.Fields.Named {
			require.Equal(t, ast.FieldNested, field.Kind)
			assert.True(t, field.Decl.Fields.Unit)
		}
	})

	t.Run("with where clause", func(t *testing.T) {
		t.Parallel()

		block := parse(t, "struct U<T> where T: Copy;")
		assert.True(t, block.Root.Fields.Unit)
		assert.Equal(t, "T: Copy", block.Root.Generics.Where.String())
	})
}

func TestParseBlock_EmptyFieldList(t *testing.T) {
	t.Parallel()

	block := parse(t, "struct E {}")

	assert.False(t, block.Root.Fields.Unit)
	assert.NotNil(t, block.Root.Fields.Named)
	assert.Empty(t, block.Root.Fields.Named)
}

func TestParseBlock_TrailingCommaOptional(t *testing.T) {
	t.Parallel()

	withComma := parse(t, "struct P { a: i32, b: u8, }")
	withoutComma := parse(t, "struct P { a: i32, b: u8 }")

	assert.Equal(t, withComma.String(), withoutComma.String())
	assert.Len(t, withoutComma.Root.Fields.Named, 2)
}

func TestParseBlock_BracketedTypes(t *testing.T) {
	t.Parallel()

	block := parse(t, "struct P { m: HashMap<String, Vec<u8>>, t: (u8, u16), f: fn(u8) -> [u8; 4] }")

	fields := block.Root.Fields.Named
	require.Len(t, fields, 3)
	assert.Equal(t, "HashMap<String, Vec<u8>>", fields[0].Type.String())
	assert.Equal(t, "(u8, u16)", fields[1].Type.String())
	assert.Equal(t, "fn(u8) -> [u8; 4]", fields[2].Type.String())
}

func TestParseBlock_Annotations(t *testing.T) {
	t.Parallel()

	input := `//! global
#![derive(Debug)]
/// Doc
#[derive(Clone)]
pub(crate) struct P {
    /// field doc
    #[serde(rename = "x")]
    pub a: i32,
}`

	block := parse(t, input)

	require.Len(t, block.GlobalAnnotations, 2)
	assert.Equal(t, ast.AnnotationDocComment, block.GlobalAnnotations[0].Kind)
	assert.True(t, block.GlobalAnnotations[0].Inner)
	assert.Equal(t, " global", block.GlobalAnnotations[0].Text)
	assert.Equal(t, ast.AnnotationAttribute, block.GlobalAnnotations[1].Kind)
	assert.True(t, block.GlobalAnnotations[1].Inner)
	assert.Equal(t, "derive", block.GlobalAnnotations[1].Path)

	root := block.Root
	require.Len(t, root.Annotations, 2)
	assert.Equal(t, " Doc", root.Annotations[0].Text)
	assert.True(t, root.Annotations[0].IsDoc())
	assert.Equal(t, "derive(Clone)", root.Annotations[1].Tokens.String())
	assert.False(t, root.Annotations[1].IsDoc())
	assert.Equal(t, "pub(crate)", root.Visibility.String())

	require.Len(t, root.Fields.Named, 1)
	field := root.Fields.Named[0]
	require.Len(t, field.Annotations, 2)
	assert.Equal(t, " field doc", field.Annotations[0].Text)
	assert.Equal(t, "serde", field.Annotations[1].Path)
	assert.Equal(t, `serde(rename = "x")`, field.Annotations[1].Tokens.String())
	assert.Equal(t, "pub", field.Visibility.String())
}

func TestParseBlock_BlockDocComment(t *testing.T) {
	t.Parallel()

	block := parse(t, "/** Block doc */ struct P;")

	require.Len(t, block.Root.Annotations, 1)
	annotation := block.Root.Annotations[0]
	assert.True(t, annotation.Block)
	assert.Equal(t, " Block doc ", annotation.Text)
	assert.Equal(t, "/** Block doc */", annotation.String())
}

func TestParseBlock_AttributePath(t *testing.T) {
	t.Parallel()

	block := parse(t, `#[doc = "text"] #[serde::rename("x")] #[cfg_attr(test, derive(Debug))] struct P;`)

	annotations := block.Root.Annotations
	require.Len(t, annotations, 3)
	assert.Equal(t, "doc", annotations[0].Path)
	assert.True(t, annotations[0].IsDoc())
	assert.Equal(t, "serde::rename", annotations[1].Path)
	assert.Equal(t, "cfg_attr", annotations[2].Path)
	assert.Equal(t, "cfg_attr(test, derive(Debug))", annotations[2].Tokens.String())
}

func TestParseBlock_Ranges(t *testing.T) {
	t.Parallel()

	input := "struct P {\n    a: i32,\n}"
	block := parse(t, input)

	assert.Equal(t, input, string(block.Root.Range.Source([]byte(input))))

	field := block.Root.Fields.Named[0]
	assert.Equal(t, "a: i32", string(field.Range.Source([]byte(input))))
	assert.Equal(t, ast.Position{Offset: 15, Line: 2, Column: 4}, field.StartPos)
}

func TestParseBlock_SyntaxErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing colon", func(t *testing.T) {
		t.Parallel()

		err := parseError(t, "struct P { a i32 }")
		assert.Equal(t, "expected ':', got identifier `i32`", err.Error())
		assert.Equal(t, ast.Position{Offset: 13, Line: 1, Column: 13}, err.StartPosition())
		assert.Empty(t, err.SecondaryError())
	})

	t.Run("missing type", func(t *testing.T) {
		t.Parallel()

		err := parseError(t, "struct P { a: }")
		assert.Equal(t, "expected type, got '}'", err.Error())
	})

	t.Run("unclosed field list", func(t *testing.T) {
		t.Parallel()

		err := parseError(t, "struct P { a: i32")
		assert.Equal(t, "expected ',' or '}', got end of input", err.Error())
	})

	t.Run("missing comma between fields", func(t *testing.T) {
		t.Parallel()

		err := parseError(t, "struct A { x: i32 y: i32 }")
		assert.Equal(t, "expected ',' or '}', got identifier `y`", err.Error())
		assert.Equal(t, ast.Position{Offset: 18, Line: 1, Column: 18}, err.StartPosition())
	})

	t.Run("missing comma after annotated field", func(t *testing.T) {
		t.Parallel()

		err := parseError(t, "struct A { x: i32\n    #[serde(skip)] pub y: i32 }")
		assert.Equal(t, "expected ',' or '}', got identifier `y`", err.Error())
		assert.Equal(t, 2, err.Pos.Line)
	})

	t.Run("missing comma before nested declaration", func(t *testing.T) {
		t.Parallel()

		err := parseError(t, "struct A { x: i32 struct B }")
		assert.Equal(t, "expected ',' or '}', got identifier `struct`", err.Error())
		assert.Equal(t, 18, err.Pos.Offset)
	})

	t.Run("unbalanced angle bracket", func(t *testing.T) {
		t.Parallel()

		err := parseError(t, "struct A { x: Vec<u8>>, y: u8 }")
		assert.Equal(t, "expected ',' or '}', got '>'", err.Error())
		assert.Equal(t, 21, err.Pos.Offset)
	})

	t.Run("missing type name", func(t *testing.T) {
		t.Parallel()

		err := parseError(t, "struct P { struct Q : }")
		assert.Equal(t, "expected type name, got '}'", err.Error())
	})

	t.Run("trailing input", func(t *testing.T) {
		t.Parallel()

		err := parseError(t, "struct A; struct B;")
		assert.Equal(t, "expected end of input, got identifier `struct`", err.Error())
	})

	t.Run("inner attribute inside the block", func(t *testing.T) {
		t.Parallel()

		err := parseError(t, "struct P { #![x] a: i32 }")
		assert.Equal(t, "inner attributes are only allowed at the start of the block", err.Error())
	})

	t.Run("inner doc comment inside the block", func(t *testing.T) {
		t.Parallel()

		err := parseError(t, "struct P {\n//! x\na: i32 }")
		assert.Equal(t, "inner doc comments are only allowed at the start of the block", err.Error())
	})

	t.Run("lexer error", func(t *testing.T) {
		t.Parallel()

		err := parseError(t, "struct P { a: ` }")
		assert.Equal(t, "unrecognized character: U+0060 '`'", err.Error())
		assert.Equal(t, 14, err.Pos.Offset)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		err := parseError(t, "")
		assert.Equal(t, "expected 'struct', got end of input", err.Error())
	})
}

func TestParseBlock_KeywordSuggestion(t *testing.T) {
	t.Parallel()

	t.Run("root", func(t *testing.T) {
		t.Parallel()

		err := parseError(t, "strcut P { a: i32 }")
		assert.Equal(t, "expected 'struct', got identifier `strcut`", err.Error())
		assert.Equal(t, "struct", err.Suggestion)
		assert.Equal(t, "did you mean `struct`?", err.SecondaryError())
	})

	t.Run("field position", func(t *testing.T) {
		t.Parallel()

		err := parseError(t, "struct P { stuct Q { a: i32 } }")
		assert.Equal(t, "struct", err.Suggestion)
		assert.Equal(t, 11, err.Pos.Offset)
	})

	t.Run("unrelated word", func(t *testing.T) {
		t.Parallel()

		err := parseError(t, "enum P { A }")
		assert.Empty(t, err.Suggestion)
	})
}

func nestedInput(depth int) string {
	var sb strings.Builder
	for i := 0; i < depth; i++ {
		fmt.Fprintf(&sb, "struct L%d { ", i)
	}
	sb.WriteString("a: i32")
	for i := 0; i < depth; i++ {
		sb.WriteString(" }")
	}

	return sb.String()
}

func TestParseBlock_MaxDepth(t *testing.T) {
	t.Parallel()

	t.Run("at the limit", func(t *testing.T) {
		t.Parallel()

		block, err := ParseBlock([]byte(nestedInput(3)), Config{MaxDepth: 3})
		require.NoError(t, err)
		assert.Equal(t, 3, ast.MaxDepth(block.Root))
	})

	t.Run("over the limit", func(t *testing.T) {
		t.Parallel()

		_, err := ParseBlock([]byte(nestedInput(5)), Config{MaxDepth: 3})
		require.Error(t, err)

		var depthErr *errors.NestingTooDeepError
		require.ErrorAs(t, err, &depthErr)
		assert.Equal(t, 4, depthErr.Depth)
		assert.Equal(t, 3, depthErr.Limit)
		assert.Equal(t, "L0.L1.L2", depthErr.Path)
		assert.True(t, errors.IsUserError(err))
	})

	t.Run("default limit", func(t *testing.T) {
		t.Parallel()

		_, err := ParseBlock([]byte(nestedInput(100)), Config{})

		var depthErr *errors.NestingTooDeepError
		require.ErrorAs(t, err, &depthErr)
		assert.Equal(t, errors.DefaultMaxDepth, depthErr.Limit)
	})
}

func TestParseDeclaration(t *testing.T) {
	t.Parallel()

	decl, err := ParseDeclaration([]byte("struct P { a: i32 }"), Config{})
	require.NoError(t, err)
	assert.Equal(t, "P", decl.Name())

	_, err = ParseDeclaration([]byte("#![x] struct P;"), Config{})
	require.Error(t, err)
}
