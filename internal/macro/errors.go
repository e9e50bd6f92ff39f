package macro

import (
	"golang.org/x/xerrors"

	"nestflat/internal/ast"
	"nestflat/internal/errors"
)

// InvocationError is an error in the body of a macro invocation. Positions
// reported by the wrapped error are relative to the body; the
// InvocationError reports them relative to the host file.
type InvocationError struct {
	Name string
	// Pos is the start of the invocation.
	Pos ast.Position
	// Base is the position of the body in the host file.
	Base ast.Position
	Err  error
}

var _ errors.HasPosition = &InvocationError{}
var _ xerrors.Wrapper = &InvocationError{}

func (e *InvocationError) Error() string {
	return e.Err.Error()
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

func (e *InvocationError) StartPosition() ast.Position {
	var positioned errors.HasPosition
	if xerrors.As(e.Err, &positioned) {
		return positioned.StartPosition().Shifted(e.Base)
	}

	return e.Pos
}

func (e *InvocationError) EndPosition() ast.Position {
	var positioned errors.HasPosition
	if xerrors.As(e.Err, &positioned) {
		return positioned.EndPosition().Shifted(e.Base)
	}

	return e.Pos
}
