package config

import (
	"nestflat/internal/emit"
	"nestflat/internal/errors"
)

const (
	CurrentVersion   = "1"
	DefaultMacroName = "nested"
)

// File is the configuration file.
type File struct {
	Version string `yaml:"version"`
	// MaxDepth is the deepest allowed nesting of declarations.
	MaxDepth int `yaml:"max_depth"`
	// MacroName is the name of the macro whose invocations are expanded
	// in host source files.
	MacroName string    `yaml:"macro_name"`
	Output    Output    `yaml:"output"`
	Color     ColorMode `yaml:"color"`
}

// Output controls the rendered output.
type Output struct {
	Width  int `yaml:"width"`
	Indent int `yaml:"indent"`
	// Dir is the directory results are written to. Empty means stdout.
	Dir string `yaml:"dir,omitempty"`
}

// ColorMode controls colored diagnostics.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var colorModes = []ColorMode{ColorAuto, ColorAlways, ColorNever}

func (m ColorMode) IsValid() bool {
	for _, mode := range colorModes {
		if m == mode {
			return true
		}
	}

	return false
}

// Enabled reports whether colors are used. In auto mode, colors are used
// when the output is a terminal.
func (m ColorMode) Enabled(terminal bool) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return terminal
	}
}

// Default returns the configuration used when no file is given.
func Default() *File {
	return &File{
		Version:   CurrentVersion,
		MaxDepth:  errors.DefaultMaxDepth,
		MacroName: DefaultMacroName,
		Output: Output{
			Width:  emit.DefaultWidth,
			Indent: emit.DefaultIndent,
		},
		Color: ColorAuto,
	}
}

// EmitOptions returns the layout options for the emitter.
func (f *File) EmitOptions() emit.Options {
	return emit.Options{
		Width:  f.Output.Width,
		Indent: f.Output.Indent,
	}
}
