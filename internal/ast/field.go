package ast

import "github.com/turbolent/prettier"

type FieldKind uint8

const (
	// FieldPlain is written `name: Type`.
	FieldPlain FieldKind = iota
	// FieldNested is a full declaration written where a field was expected.
	FieldNested
)

// Field is one entry of a named field list.
type Field struct {
	Kind FieldKind

	// Annotations, Visibility, Name and Type are only set for FieldPlain.
	Annotations []*Annotation
	Visibility  Visibility
	Name        Identifier
	Type        Tokens

	// Decl is only set for FieldNested. The annotations and visibility
	// written before the nested `struct` keyword belong to Decl.
	Decl *Declaration

	Range
}

func NewPlainField(annotations []*Annotation, visibility Visibility, name Identifier, ty Tokens) *Field {
	return &Field{
		Kind:        FieldPlain,
		Annotations: annotations,
		Visibility:  visibility,
		Name:        name,
		Type:        ty,
	}
}

func NewNestedField(decl *Declaration) *Field {
	return &Field{
		Kind:  FieldNested,
		Decl:  decl,
		Range: decl.Range,
	}
}

func (f *Field) String() string {
	return Prettier(f.Doc(), DefaultWidth, DefaultIndent)
}

// Doc renders a plain field, or a nested declaration inline.
func (f *Field) Doc() prettier.Doc {
	switch f.Kind {
	case FieldNested:
		return f.Decl.Doc()
	}

	return prettier.Concat{
		annotationLinesDoc(f.Annotations),
		f.Visibility.Doc(),
		prettier.Text(f.Name.Name),
		prettier.Text(": "),
		f.Type.Doc(),
	}
}
