// Package testutil holds assertions shared by the tests of several packages.
package testutil

import (
	"strings"
	"testing"

	"github.com/k0kubun/pp/v3"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"

	"nestflat/internal/errors"
)

var printer = func() *pp.PrettyPrinter {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	return printer
}()

// AssertEqualWithDiff asserts that two objects are equal.
//
// If the objects are not equal, this function prints a human-readable diff.
func AssertEqualWithDiff(t testing.TB, expected, actual any) {
	t.Helper()

	diff := pretty.Diff(expected, actual)
	if len(diff) == 0 {
		return
	}

	var s strings.Builder
	for i, d := range diff {
		if i == 0 {
			s.WriteString("diff    : ")
		} else {
			s.WriteString("          ")
		}

		s.WriteString(d)
		s.WriteString("\n")
	}

	t.Errorf(
		"Not equal: \n"+
			"expected: %s\n"+
			"actual  : %s\n\n"+
			"%s",
		printer.Sprint(expected),
		printer.Sprint(actual),
		s.String(),
	)
}

// RequireUserError requires err to be a user error, and ensures that its
// message, secondary message and position can be produced.
func RequireUserError(t testing.TB, err error) {
	t.Helper()

	require.Error(t, err)
	require.True(t, errors.IsUserError(err), "not a user error: %v", err)

	_ = err.Error()

	if hasPosition, ok := err.(errors.HasPosition); ok {
		_ = hasPosition.StartPosition()
		_ = hasPosition.EndPosition()
	}

	if hasSecondaryError, ok := err.(errors.SecondaryError); ok {
		_ = hasSecondaryError.SecondaryError()
	}
}
