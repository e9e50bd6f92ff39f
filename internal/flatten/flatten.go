package flatten

import (
	"github.com/rs/zerolog"

	"nestflat/internal/ast"
	"nestflat/internal/casing"
	"nestflat/internal/errors"
)

// Config controls flattening.
type Config struct {
	// MaxDepth is the deepest allowed nesting. The root declaration has
	// depth 1. Zero means errors.DefaultMaxDepth.
	MaxDepth int
	// Logger receives a debug event for every extracted declaration.
	Logger zerolog.Logger
}

func (c Config) maxDepth() int {
	if c.MaxDepth <= 0 {
		return errors.DefaultMaxDepth
	}

	return c.MaxDepth
}

// pendingChild is a nested declaration waiting to be flattened after its
// parent, with the name of the field that replaced it.
type pendingChild struct {
	decl  *ast.Declaration
	field string
}

type flattener struct {
	globals []*ast.Annotation
	limit   int
	logger  zerolog.Logger
	output  []*ast.Declaration
}

// Flatten flattens the root declaration of block. The block's global
// annotations are put in front of every emitted declaration.
func Flatten(block *ast.Block, config Config) ([]*ast.Declaration, error) {
	return FlattenDeclaration(block.Root, block.GlobalAnnotations, config)
}

// FlattenDeclaration flattens root. The result holds root first, followed
// by every declaration nested in it. Either the whole tree is flattened or
// an error is returned.
//
// The input is not modified. Annotations and token runs of the input are
// shared with the result.
func FlattenDeclaration(
	root *ast.Declaration,
	globals []*ast.Annotation,
	config Config,
) ([]*ast.Declaration, error) {
	f := &flattener{
		globals: outerAnnotations(globals),
		limit:   config.maxDepth(),
		logger:  config.Logger,
	}

	if err := f.flatten(root, nil, 1); err != nil {
		return nil, err
	}

	return f.output, nil
}

func (f *flattener) flatten(decl *ast.Declaration, parent *ast.TypePath, depth int) error {
	if depth > f.limit {
		path := ""
		if parent != nil {
			path = parent.String()
		}

		return &errors.NestingTooDeepError{
			Depth: depth,
			Limit: f.limit,
			Path:  path,
			Pos:   decl.StartPos,
		}
	}

	var path *ast.TypePath
	if parent == nil {
		path = ast.NewTypePath(decl.Name())
	} else {
		path = parent.Child(decl.Name())
	}

	result := &ast.Declaration{
		Annotations: f.headerAnnotations(decl),
		Visibility:  decl.Visibility,
		Identity:    ast.NewBareIdentity(decl.Identity.TypeName),
		Generics:    decl.Generics,
		Range:       decl.Range,
	}
	f.output = append(f.output, result)

	if decl.Fields.Unit {
		result.Fields = ast.UnitFields()
		return nil
	}

	fields := make([]*ast.Field, 0, len(decl.Fields.Named))
	var pending []pendingChild

	for _, field := range decl.Fields.Named {
		switch field.Kind {
		case ast.FieldPlain:
			fields = append(fields, field)

		case ast.FieldNested:
			synthesized := synthesizeField(field.Decl)
			fields = append(fields, synthesized)
			pending = append(pending, pendingChild{
				decl:  field.Decl,
				field: synthesized.Name.Name,
			})

		default:
			return errors.NewUnreachableError()
		}
	}

	result.Fields = ast.NamedFields(fields...)

	for _, child := range pending {
		f.logger.Debug().
			Str("path", path.Child(child.decl.Name()).String()).
			Int("depth", depth+1).
			Str("field", child.field).
			Msg("extracting nested declaration")

		if err := f.flatten(child.decl, path, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// headerAnnotations returns the global annotations followed by the
// declaration's own annotations.
func (f *flattener) headerAnnotations(decl *ast.Declaration) []*ast.Annotation {
	if len(f.globals) == 0 {
		return decl.Annotations
	}

	annotations := make([]*ast.Annotation, 0, len(f.globals)+len(decl.Annotations))
	annotations = append(annotations, f.globals...)
	return append(annotations, decl.Annotations...)
}

// synthesizeField returns the plain field that replaces the nested
// declaration child in its parent.
//
// A bare `struct T` becomes `t: T` and keeps only the doc annotations of the
// declaration. A field-typed `struct f: #[a] T` becomes `#[a] f: T`.
// Generic parameters are passed on: `struct T<'a, U>` is referred to as
// `T::<'a, U>`.
func synthesizeField(child *ast.Declaration) *ast.Field {
	var name ast.Identifier
	var annotations []*ast.Annotation

	switch child.Identity.Kind {
	case ast.IdentityFieldTyped:
		name = child.Identity.FieldName
		annotations = child.Identity.TypeAnnotations

	default:
		name = ast.Identifier{
			Name: casing.ToFieldName(child.Name()),
			Pos:  child.Identity.TypeName.Pos,
		}
		annotations = ast.DocAnnotations(child.Annotations)
	}

	ty := ast.Tokens{{Text: child.Name()}}.Append(child.Generics.Turbofish()...)

	field := ast.NewPlainField(annotations, child.Visibility, name, ty)
	field.Range = child.Range

	return field
}

func outerAnnotations(annotations []*ast.Annotation) []*ast.Annotation {
	if len(annotations) == 0 {
		return nil
	}

	outer := make([]*ast.Annotation, len(annotations))
	for i, annotation := range annotations {
		outer[i] = annotation.Outer()
	}

	return outer
}
