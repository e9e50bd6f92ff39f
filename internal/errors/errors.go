// Package errors defines the error model shared by the parser and the
// flattening engine.
//
// Errors caused by the input are UserErrors and are reported as diagnostics.
// Errors caused by a bug in this module are InternalErrors.
package errors

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/xerrors"

	"nestflat/internal/ast"
)

// InternalError is an implementation error, e.g. an unreachable code path.
type InternalError interface {
	error
	IsInternalError()
}

// UserError is an error caused by the input, e.g. malformed syntax.
type UserError interface {
	error
	IsUserError()
}

// SecondaryError is implemented by errors that carry a hint for the user.
type SecondaryError interface {
	SecondaryError() string
}

// HasPosition is implemented by errors that point at the input.
type HasPosition interface {
	StartPosition() ast.Position
	EndPosition() ast.Position
}

// UnreachableError

// UnreachableError is raised when a code path that should never run is hit.
type UnreachableError struct {
	Stack []byte
}

var _ InternalError = UnreachableError{}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{Stack: debug.Stack()}
}

func (e UnreachableError) Error() string {
	return fmt.Sprintf("unreachable\n%s", e.Stack)
}

func (UnreachableError) IsInternalError() {}

// NestingTooDeepError

// DefaultMaxDepth is the nesting limit used when none is configured. The
// root declaration has depth 1. Both the parser and the flattening engine
// enforce it.
const DefaultMaxDepth = 64

// NestingTooDeepError is returned when declarations are nested deeper than
// the configured limit.
type NestingTooDeepError struct {
	Depth int
	Limit int
	// Path names the declaration at which the limit was exceeded, if known.
	Path string
	Pos  ast.Position
}

var _ UserError = &NestingTooDeepError{}
var _ SecondaryError = &NestingTooDeepError{}
var _ HasPosition = &NestingTooDeepError{}

func (*NestingTooDeepError) IsUserError() {}

func (e *NestingTooDeepError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("declarations nested too deeply: depth %d exceeds limit %d", e.Depth, e.Limit)
	}

	return fmt.Sprintf("declarations nested too deeply at %s: depth %d exceeds limit %d", e.Path, e.Depth, e.Limit)
}

func (e *NestingTooDeepError) SecondaryError() string {
	return "move the innermost declarations to the top level, or raise the maximum depth"
}

func (e *NestingTooDeepError) StartPosition() ast.Position {
	return e.Pos
}

func (e *NestingTooDeepError) EndPosition() ast.Position {
	return e.Pos
}

// IsInternalError reports whether err has an InternalError in its chain.
func IsInternalError(err error) bool {
	switch err := err.(type) {
	case InternalError:
		return true
	case xerrors.Wrapper:
		return IsInternalError(err.Unwrap())
	default:
		return false
	}
}

// IsUserError reports whether err has a UserError in its chain.
func IsUserError(err error) bool {
	switch err := err.(type) {
	case UserError:
		return true
	case xerrors.Wrapper:
		return IsUserError(err.Unwrap())
	default:
		return false
	}
}
