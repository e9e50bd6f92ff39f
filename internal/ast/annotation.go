package ast

import (
	"github.com/turbolent/prettier"
)

type AnnotationKind uint8

const (
	// AnnotationAttribute is written `#[path ...]` or `#![path ...]`.
	AnnotationAttribute AnnotationKind = iota
	// AnnotationDocComment is written `/// text`, `//! text`,
	// `/** text */` or `/*! text */`.
	AnnotationDocComment
)

// Annotation is a metadata annotation attached to a declaration, a field or
// the type-name half of a field-typed identity.
type Annotation struct {
	Kind AnnotationKind
	// Inner is set for `#![..]`, `//!` and `/*!`.
	Inner bool
	// Path is the attribute path, e.g. "derive" or "serde". Empty for doc comments.
	Path string
	// Tokens is the attribute body between the brackets, path included.
	Tokens Tokens
	// Text is the doc comment text after the comment marker.
	Text string
	// Block is set for block doc comments.
	Block bool
	Range
}

// NewDocComment returns an outer line doc comment.
func NewDocComment(text string) *Annotation {
	return &Annotation{
		Kind: AnnotationDocComment,
		Text: text,
	}
}

// NewAttribute returns an outer attribute with the given body.
func NewAttribute(path string, body Tokens) *Annotation {
	return &Annotation{
		Kind:   AnnotationAttribute,
		Path:   path,
		Tokens: body,
	}
}

// IsDoc reports whether the annotation is documentation: a doc comment, or
// an attribute with the path `doc`.
func (a *Annotation) IsDoc() bool {
	switch a.Kind {
	case AnnotationDocComment:
		return true
	case AnnotationAttribute:
		return a.Path == "doc"
	}

	return false
}

// Outer returns the annotation in outer style. The receiver is returned as
// is when it already is an outer annotation.
func (a *Annotation) Outer() *Annotation {
	if !a.Inner {
		return a
	}

	outer := *a
	outer.Inner = false

	return &outer
}

func (a *Annotation) String() string {
	return Prettier(a.Doc(), DefaultWidth, DefaultIndent)
}

func (a *Annotation) Doc() prettier.Doc {
	switch a.Kind {
	case AnnotationDocComment:
		switch {
		case a.Block && a.Inner:
			return prettier.Text("/*!" + a.Text + "*/")
		case a.Block:
			return prettier.Text("/**" + a.Text + "*/")
		case a.Inner:
			return prettier.Text("//!" + a.Text)
		default:
			return prettier.Text("///" + a.Text)
		}

	case AnnotationAttribute:
		open := "#["
		if a.Inner {
			open = "#!["
		}

		return prettier.Concat{
			prettier.Text(open),
			a.Tokens.Doc(),
			prettier.Text("]"),
		}
	}

	return prettier.Text("")
}

// DocAnnotations returns the documentation annotations of annotations, in order.
func DocAnnotations(annotations []*Annotation) []*Annotation {
	var docs []*Annotation
	for _, annotation := range annotations {
		if annotation.IsDoc() {
			docs = append(docs, annotation)
		}
	}

	return docs
}

// annotationLinesDoc renders each annotation followed by a line break.
func annotationLinesDoc(annotations []*Annotation) prettier.Doc {
	doc := make(prettier.Concat, 0, len(annotations)*2)
	for _, annotation := range annotations {
		doc = append(doc, annotation.Doc(), prettier.HardLine{})
	}

	return doc
}
