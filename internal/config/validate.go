package config

import (
	"fmt"
	"strings"

	"nestflat/internal/casing"
	"nestflat/internal/diagnostic"
)

const (
	minWidth = 20
	// largeMaxDepth is the depth above which a warning is reported.
	largeMaxDepth = 1024
)

// Validate checks the values of a configuration file.
func Validate(file *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if file == nil {
		res.AddError("config_is_nil", "config is nil", "")
		return res
	}

	for _, check := range []func(*File) diagnostic.Diagnostics{
		validateVersion,
		validateMaxDepth,
		validateOutput,
		validateColor,
		validateMacroName,
	} {
		res.Merge(check(file))
	}

	return res
}

func validateVersion(file *File) (res diagnostic.Diagnostics) {
	if file.Version != CurrentVersion {
		res.AddError(
			"unsupported_version",
			fmt.Sprintf("unsupported config version %q", file.Version),
			"version",
			fmt.Sprintf("set version to %q", CurrentVersion),
		)
	}

	return res
}

func validateMaxDepth(file *File) (res diagnostic.Diagnostics) {
	switch {
	case file.MaxDepth < 1:
		res.AddError(
			"invalid_max_depth",
			fmt.Sprintf("max_depth must be at least 1, got %d", file.MaxDepth),
			"max_depth",
		)
	case file.MaxDepth > largeMaxDepth:
		res.AddWarning(
			"large_max_depth",
			fmt.Sprintf("max_depth %d is unusually large", file.MaxDepth),
			"max_depth",
		)
	}

	return res
}

func validateOutput(file *File) (res diagnostic.Diagnostics) {
	if file.Output.Width < minWidth {
		res.AddError(
			"invalid_width",
			fmt.Sprintf("output width must be at least %d, got %d", minWidth, file.Output.Width),
			"output.width",
		)
	}

	if file.Output.Indent < 0 {
		res.AddError(
			"invalid_indent",
			fmt.Sprintf("output indent must not be negative, got %d", file.Output.Indent),
			"output.indent",
		)
	}

	return res
}

func validateColor(file *File) (res diagnostic.Diagnostics) {
	if file.Color.IsValid() {
		return res
	}

	modes := make([]string, len(colorModes))
	for i, mode := range colorModes {
		modes[i] = string(mode)
	}

	res.AddError(
		"invalid_color",
		fmt.Sprintf("unknown color mode %q", file.Color),
		"color",
		"use one of "+strings.Join(modes, ", "),
	)

	return res
}

func validateMacroName(file *File) (res diagnostic.Diagnostics) {
	if !isIdentifier(file.MacroName) || casing.IsKeyword(file.MacroName) {
		res.AddError(
			"invalid_macro_name",
			fmt.Sprintf("macro name %q is not an identifier", file.MacroName),
			"macro_name",
		)
	}

	return res
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}
