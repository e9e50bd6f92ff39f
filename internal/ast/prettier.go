package ast

import (
	"strings"

	"github.com/turbolent/prettier"
)

const (
	DefaultWidth  = 100
	DefaultIndent = "    "
)

// Prettier prints doc with the given maximum line width and indentation.
func Prettier(doc prettier.Doc, width int, indent string) string {
	var builder strings.Builder
	prettier.Prettier(&builder, doc, width, indent)
	return builder.String()
}
