package emit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestflat/internal/ast"
)

func plainField(name string, ty ...string) *ast.Field {
	return ast.NewPlainField(nil, ast.Visibility{}, ast.Identifier{Name: name}, ast.NewTokens(ty...))
}

func declaration(name string, fields ...*ast.Field) *ast.Declaration {
	return &ast.Declaration{
		Identity: ast.NewBareIdentity(ast.Identifier{Name: name}),
		Fields:   ast.NamedFields(fields...),
	}
}

func TestRender_Layout(t *testing.T) {
	t.Parallel()

	p := declaration("P", plainField("a", "i32"), plainField("q", "Q"))
	p.Annotations = []*ast.Annotation{
		ast.NewDocComment(" The P."),
		ast.NewAttribute("derive", ast.Tokens{
			{Text: "derive"}, {Text: "("}, {Text: "Debug"}, {Text: ")"},
		}),
	}
	p.Visibility = ast.VisibilityPublic

	q := declaration("Q")
	unit := &ast.Declaration{
		Identity: ast.NewBareIdentity(ast.Identifier{Name: "U"}),
		Fields:   ast.UnitFields(),
	}

	assert.Equal(t,
		`/// The P.
#[derive(Debug)]
pub struct P {
    a: i32,
    q: Q,
}

struct Q {}

struct U;
`,
		Render([]*ast.Declaration{p, q, unit}, DefaultOptions()),
	)
}

func TestRender_FieldAnnotations(t *testing.T) {
	t.Parallel()

	field := plainField("a", "u8")
	field.Annotations = []*ast.Annotation{ast.NewDocComment(" field a")}
	field.Visibility = ast.VisibilityPublic

	assert.Equal(t,
		`struct P {
    /// field a
    pub a: u8,
}
`,
		Render([]*ast.Declaration{declaration("P", field)}, DefaultOptions()),
	)
}

func TestRender_Generics(t *testing.T) {
	t.Parallel()

	decl := declaration("W", plainField("r", "&'a", "T"))
	decl.Generics = ast.Generics{
		Params: []ast.GenericParam{
			{Kind: ast.GenericLifetime, Name: "'a", Tokens: ast.Tokens{{Text: "'a"}}},
			{Kind: ast.GenericType, Name: "T", Tokens: ast.Tokens{{Text: "T"}, {Text: ":"}, {Text: "Clone", SpaceBefore: true}}},
		},
		Where: ast.Tokens{{Text: "T"}, {Text: ":"}, {Text: "Default", SpaceBefore: true}},
	}

	assert.Equal(t,
		`struct W<'a, T: Clone> where T: Default {
    r: &'a T,
}
`,
		Render([]*ast.Declaration{decl}, DefaultOptions()),
	)
}

func TestRender_Indent(t *testing.T) {
	t.Parallel()

	decl := declaration("P", plainField("a", "u8"))

	assert.Equal(t,
		"struct P {\n  a: u8,\n}\n",
		Render([]*ast.Declaration{decl}, Options{Width: 80, Indent: 2}),
	)
}

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Render(nil, DefaultOptions()))
}

func TestWriteFiles(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")

	err := WriteFiles(
		[]GeneratedFile{
			{Filename: "a.rs", Content: []byte("struct A;\n")},
			{Filename: "b.rs", Content: []byte("struct B;\n")},
		},
		dir,
	)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "a.rs"))
	require.NoError(t, err)
	assert.Equal(t, "struct A;\n", string(content))

	info, err := os.Stat(filepath.Join(dir, "b.rs"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())
}
