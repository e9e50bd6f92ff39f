// Package emit renders flattened declarations as text.
package emit

import (
	"strings"

	"github.com/turbolent/prettier"

	"nestflat/internal/ast"
)

const (
	DefaultWidth  = ast.DefaultWidth
	DefaultIndent = 4
)

// Options controls the layout of rendered declarations.
type Options struct {
	// Width is the line width that generic where clauses are wrapped at.
	Width int
	// Indent is the number of spaces fields are indented by.
	Indent int
}

func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Indent: DefaultIndent,
	}
}

func (o Options) width() int {
	if o.Width <= 0 {
		return DefaultWidth
	}

	return o.Width
}

func (o Options) indent() string {
	if o.Indent < 0 {
		return strings.Repeat(" ", DefaultIndent)
	}

	return strings.Repeat(" ", o.Indent)
}

var declarationSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.HardLine{},
	prettier.HardLine{},
}

// Doc returns the document for decls, separated by blank lines, in the
// given order.
func Doc(decls []*ast.Declaration) prettier.Doc {
	docs := make([]prettier.Doc, len(decls))
	for i, decl := range decls {
		docs[i] = decl.Doc()
	}

	return prettier.Join(declarationSeparatorDoc, docs...)
}

// Render prints decls one after another. The result ends with a newline
// unless decls is empty.
func Render(decls []*ast.Declaration, options Options) string {
	if len(decls) == 0 {
		return ""
	}

	return ast.Prettier(Doc(decls), options.width(), options.indent()) + "\n"
}
