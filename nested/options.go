package nested

import (
	"github.com/rs/zerolog"

	"nestflat/internal/emit"
	"nestflat/internal/errors"
)

const DefaultMacroName = "nested"

type options struct {
	maxDepth  int
	emit      emit.Options
	logger    zerolog.Logger
	macroName string
}

// Option configures Expand and ExpandMacros.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		maxDepth:  errors.DefaultMaxDepth,
		emit:      emit.DefaultOptions(),
		logger:    zerolog.Nop(),
		macroName: DefaultMacroName,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithMaxDepth limits how deep declarations may be nested. The root
// declaration has depth 1.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithWidth sets the line width that long where clauses are wrapped at.
func WithWidth(width int) Option {
	return func(o *options) {
		o.emit.Width = width
	}
}

// WithIndent sets the number of spaces fields are indented by.
func WithIndent(indent int) Option {
	return func(o *options) {
		o.emit.Indent = indent
	}
}

// WithEmitOptions replaces the layout options.
func WithEmitOptions(emitOptions emit.Options) Option {
	return func(o *options) {
		o.emit = emitOptions
	}
}

// WithLogger sets the logger that receives debug events while flattening.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMacroName sets the name of the macro ExpandMacros looks for.
func WithMacroName(name string) Option {
	return func(o *options) {
		o.macroName = name
	}
}
