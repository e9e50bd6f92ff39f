package diagnostic

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rivo/uniseg"
	"go.uber.org/multierr"
	"golang.org/x/xerrors"

	"nestflat/internal/ast"
	"nestflat/internal/errors"
)

// PrettyPrinter prints errors and diagnostics for humans:
//
//	error: expected ':', got identifier `i32`
//	 --> input.rs:1:13
//	  |
//	1 | struct P { a i32 }
//	  |              ^^^
type PrettyPrinter struct {
	writer io.Writer
	colors *aurora.Aurora
}

func NewPrettyPrinter(writer io.Writer, colorize bool) PrettyPrinter {
	return PrettyPrinter{
		writer: writer,
		colors: aurora.New(aurora.WithColors(colorize)),
	}
}

// PrettyPrint prints every error combined in err. Errors wrapped in a
// FileError are printed with an excerpt of the file.
func (p PrettyPrinter) PrettyPrint(err error) error {
	for _, err := range multierr.Errors(err) {
		var fileErr *FileError
		if xerrors.As(err, &fileErr) {
			printErr := p.PrettyPrintError(fileErr.Err, fileErr.Path, fileErr.Source)
			if printErr != nil {
				return printErr
			}

			continue
		}

		if printErr := p.PrettyPrintError(err, "", nil); printErr != nil {
			return printErr
		}
	}

	return nil
}

// PrettyPrintError prints a single error. If the error has a position,
// location and the position are printed, followed by the source line when
// source has it.
func (p PrettyPrinter) PrettyPrintError(err error, location string, source []byte) error {
	var sb strings.Builder

	sb.WriteString(p.colors.Red("error").Bold().String())
	sb.WriteString(": ")
	sb.WriteString(p.colors.Bold(err.Error()).String())
	sb.WriteByte('\n')

	gutter := " "

	var positioned errors.HasPosition
	if xerrors.As(err, &positioned) {
		start := positioned.StartPosition()
		end := positioned.EndPosition()

		sb.WriteString(p.colors.Blue(" --> ").Bold().String())
		if location != "" {
			sb.WriteString(location)
			sb.WriteByte(':')
		}
		sb.WriteString(start.String())
		sb.WriteByte('\n')

		if line, ok := sourceLine(source, start.Line); ok {
			gutter = strings.Repeat(" ", len(strconv.Itoa(start.Line)))
			p.writeExcerpt(&sb, gutter, line, start, end)
		}
	}

	var secondary errors.SecondaryError
	if xerrors.As(err, &secondary) {
		if hint := secondary.SecondaryError(); hint != "" {
			sb.WriteString(gutter)
			sb.WriteString(p.colors.Cyan(" = help: ").Bold().String())
			sb.WriteString(hint)
			sb.WriteByte('\n')
		}
	}

	_, writeErr := io.WriteString(p.writer, sb.String())
	return writeErr
}

func (p PrettyPrinter) writeExcerpt(sb *strings.Builder, gutter string, line string, start, end ast.Position) {
	bar := p.colors.Blue(" |").Bold().String()
	lineNumber := p.colors.Blue(strconv.Itoa(start.Line)).Bold().String()

	sb.WriteString(gutter)
	sb.WriteString(bar)
	sb.WriteByte('\n')

	sb.WriteString(lineNumber)
	sb.WriteString(bar)
	sb.WriteByte(' ')
	sb.WriteString(line)
	sb.WriteByte('\n')

	column := min(max(start.Column, 0), len(line))

	length := 1
	if end.Line == start.Line && end.Offset >= start.Offset {
		length = end.Offset - start.Offset + 1
	}
	marked := line[column:min(column+length, len(line))]
	carets := max(uniseg.StringWidth(marked), 1)

	sb.WriteString(gutter)
	sb.WriteString(bar)
	sb.WriteByte(' ')
	sb.WriteString(indentation(line[:column]))
	sb.WriteString(p.colors.Red(strings.Repeat("^", carets)).Bold().String())
	sb.WriteByte('\n')
}

// PrettyPrintDiagnostics prints every diagnostic in diags, errors first.
func (p PrettyPrinter) PrettyPrintDiagnostics(diags *Diagnostics, location string) error {
	var sb strings.Builder

	for _, diag := range diags.All() {
		severity := diag.Severity.String()
		switch diag.Severity {
		case DiagnosticError:
			sb.WriteString(p.colors.Red(severity).Bold().String())
		case DiagnosticWarning:
			sb.WriteString(p.colors.Yellow(severity).Bold().String())
		default:
			sb.WriteString(p.colors.Cyan(severity).Bold().String())
		}

		message := diag.Message
		if diag.Code != "" {
			message = fmt.Sprintf("[%s] %s", diag.Code, message)
		}
		sb.WriteString(": ")
		sb.WriteString(p.colors.Bold(message).String())
		sb.WriteByte('\n')

		switch {
		case location != "" && diag.Key != "":
			fmt.Fprintf(&sb, "%s%s: %s\n", p.colors.Blue(" --> ").Bold(), location, diag.Key)
		case location != "":
			fmt.Fprintf(&sb, "%s%s\n", p.colors.Blue(" --> ").Bold(), location)
		case diag.Key != "":
			fmt.Fprintf(&sb, "%s%s\n", p.colors.Blue(" --> ").Bold(), diag.Key)
		}

		for _, suggestion := range diag.Suggestions {
			fmt.Fprintf(&sb, " %s%s\n", p.colors.Cyan(" = help: ").Bold(), suggestion)
		}
	}

	_, err := io.WriteString(p.writer, sb.String())
	return err
}

func sourceLine(source []byte, line int) (string, bool) {
	if line < 1 || len(source) == 0 {
		return "", false
	}

	lines := strings.Split(string(source), "\n")
	if line > len(lines) {
		return "", false
	}

	return strings.TrimRight(lines[line-1], "\r"), true
}

// indentation returns whitespace as wide as prefix. Tabs are kept, so the
// caret lines up with the source line in any terminal.
func indentation(prefix string) string {
	var sb strings.Builder

	state := -1
	for prefix != "" {
		var cluster string
		var width int
		cluster, prefix, width, state = uniseg.FirstGraphemeClusterInString(prefix, state)

		if cluster == "\t" {
			sb.WriteByte('\t')
			continue
		}

		sb.WriteString(strings.Repeat(" ", width))
	}

	return sb.String()
}
