package ast

import "github.com/turbolent/prettier"

type IdentityKind uint8

const (
	// IdentityBareName is written `struct TypeName`.
	IdentityBareName IdentityKind = iota
	// IdentityFieldTyped is written `struct field: #[annotations] TypeName`.
	IdentityFieldTyped
)

// Identity names a declaration.
type Identity struct {
	Kind     IdentityKind
	TypeName Identifier
	// FieldName is only set for IdentityFieldTyped.
	FieldName Identifier
	// TypeAnnotations are the annotations written between the colon and the
	// type name. They are only set for IdentityFieldTyped.
	TypeAnnotations []*Annotation
}

func NewBareIdentity(typeName Identifier) Identity {
	return Identity{
		Kind:     IdentityBareName,
		TypeName: typeName,
	}
}

func NewFieldTypedIdentity(fieldName Identifier, annotations []*Annotation, typeName Identifier) Identity {
	return Identity{
		Kind:            IdentityFieldTyped,
		FieldName:       fieldName,
		TypeAnnotations: annotations,
		TypeName:        typeName,
	}
}

// Name is the type name, which is always the declared type's own name.
func (i Identity) Name() string {
	return i.TypeName.Name
}

func (i Identity) Doc() prettier.Doc {
	switch i.Kind {
	case IdentityFieldTyped:
		doc := prettier.Concat{
			prettier.Text(i.FieldName.Name),
			prettier.Text(":"),
		}

		for _, annotation := range i.TypeAnnotations {
			if annotation.Kind == AnnotationDocComment && !annotation.Block {
				// a line comment swallows the rest of the line
				doc = append(doc, prettier.HardLine{}, annotation.Doc())
			} else {
				doc = append(doc, prettier.Space, annotation.Doc())
			}
		}

		if len(i.TypeAnnotations) > 0 && lastIsLineComment(i.TypeAnnotations) {
			doc = append(doc, prettier.HardLine{})
		} else {
			doc = append(doc, prettier.Space)
		}

		return append(doc, prettier.Text(i.TypeName.Name))
	}

	return prettier.Text(i.TypeName.Name)
}

func lastIsLineComment(annotations []*Annotation) bool {
	last := annotations[len(annotations)-1]
	return last.Kind == AnnotationDocComment && !last.Block
}
