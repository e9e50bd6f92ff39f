package ast

import "github.com/turbolent/prettier"

const KeywordStruct = "struct"

// Fields is the body of a declaration.
type Fields struct {
	// Unit is set for a declaration without a field block.
	Unit bool
	// Named holds the entries of a field block, which may be empty.
	Named []*Field
}

func UnitFields() Fields {
	return Fields{Unit: true}
}

func NamedFields(fields ...*Field) Fields {
	if fields == nil {
		fields = []*Field{}
	}

	return Fields{Named: fields}
}

// Declaration is a record-type declaration, top-level or nested.
type Declaration struct {
	Annotations []*Annotation
	Visibility  Visibility
	Identity    Identity
	Generics    Generics
	Fields      Fields
	Range
}

// Name is the declared type name.
func (d *Declaration) Name() string {
	return d.Identity.Name()
}

// HasNestedFields reports whether any direct field is a nested declaration.
func (d *Declaration) HasNestedFields() bool {
	for _, field := range d.Fields.Named {
		if field.Kind == FieldNested {
			return true
		}
	}

	return false
}

func (d *Declaration) String() string {
	return Prettier(d.Doc(), DefaultWidth, DefaultIndent)
}

var structKeywordDoc prettier.Doc = prettier.Text(KeywordStruct + " ")

var fieldSeparatorDoc prettier.Doc = prettier.Text(",")

func (d *Declaration) Doc() prettier.Doc {
	doc := prettier.Concat{
		annotationLinesDoc(d.Annotations),
		d.Visibility.Doc(),
		structKeywordDoc,
		d.Identity.Doc(),
		d.Generics.ParamsDoc(),
		d.Generics.WhereDoc(),
	}

	if d.Fields.Unit {
		return append(doc, prettier.Text(";"))
	}

	if len(d.Fields.Named) == 0 {
		return append(doc, prettier.Text(" {}"))
	}

	fieldDocs := make(prettier.Concat, 0, len(d.Fields.Named))
	for _, field := range d.Fields.Named {
		fieldDocs = append(
			fieldDocs,
			prettier.Concat{
				prettier.HardLine{},
				field.Doc(),
				fieldSeparatorDoc,
			},
		)
	}

	return append(
		doc,
		prettier.Text(" {"),
		prettier.Indent{
			Doc: fieldDocs,
		},
		prettier.HardLine{},
		prettier.Text("}"),
	)
}

// Block is a parsed input block: block-level annotations and the root
// declaration.
type Block struct {
	// GlobalAnnotations were written once at the start of the block and
	// apply to every emitted declaration.
	GlobalAnnotations []*Annotation
	Root              *Declaration
}

func (b *Block) Doc() prettier.Doc {
	return prettier.Concat{
		annotationLinesDoc(b.GlobalAnnotations),
		b.Root.Doc(),
	}
}

func (b *Block) String() string {
	return Prettier(b.Doc(), DefaultWidth, DefaultIndent)
}
