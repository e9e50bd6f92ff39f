// Package diagnostic reports problems to the user.
//
// Key capabilities:
//   - Collecting configuration errors and warnings as Diagnostics
//   - Printing any error with a source excerpt, a caret under the
//     offending input and an optional hint, in color or plain
//   - Attaching a file name and its contents to an error with FileError
package diagnostic
