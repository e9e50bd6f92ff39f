// Command nestflat flattens declarations with inline nested declarations.
//
// Usage:
//
//	nestflat [flags] [files...]
//
// Without files, the input is read from stdin. With -macros, inputs are
// host source files in which every `nested! { ... }` invocation is
// replaced by its expansion.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"

	"nestflat/internal/config"
	"nestflat/internal/diagnostic"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type flags struct {
	configPath string
	macros     bool
	outDir     string
	maxDepth   int
	width      int
	indent     int
	color      string
	dump       bool
	verbose    bool
	jobs       int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func newFlagSet(stderr io.Writer) (*flag.FlagSet, *flags) {
	f := &flags{}

	fs := flag.NewFlagSet("nestflat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: nestflat [flags] [files...]")
		fs.PrintDefaults()
	}

	fs.StringVar(&f.configPath, "config", "", "Path to YAML config file")
	fs.BoolVar(&f.macros, "macros", false, "Expand macro invocations in host source files")
	fs.StringVar(&f.outDir, "out", "", "Directory to write results to (default stdout)")
	fs.IntVar(&f.maxDepth, "max-depth", 0, "Maximum nesting depth of declarations")
	fs.IntVar(&f.width, "width", 0, "Line width of the output")
	fs.IntVar(&f.indent, "indent", 0, "Number of spaces fields are indented by")
	fs.StringVar(&f.color, "color", "", "Colored diagnostics: auto, always or never")
	fs.BoolVar(&f.dump, "dump", false, "Dump the parsed input to stderr")
	fs.BoolVar(&f.verbose, "v", false, "Enable debug logging")
	fs.IntVar(&f.jobs, "j", runtime.GOMAXPROCS(0), "Number of files processed in parallel")

	return fs, f
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs, f := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	cfg, notes, err := loadConfig(fs, f)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	colorize := cfg.Color.Enabled(isTerminal(stderr))
	printer := diagnostic.NewPrettyPrinter(stderr, colorize)

	location := f.configPath
	if location == "" {
		location = "flags"
	}

	diags := config.Validate(cfg)
	if f.verbose {
		diags.Merge(notes)
	}
	if len(diags.All()) > 0 {
		_ = printer.PrettyPrintDiagnostics(diags, location)
	}
	if diags.HasErrors() {
		return exitUsage
	}

	if f.jobs < 1 {
		fmt.Fprintf(stderr, "error: -j must be at least 1, got %d\n", f.jobs)
		return exitUsage
	}

	logger := newLogger(stderr, f.verbose, colorize)

	inputs, readErr := readInputs(fs.Args(), stdin)

	p := &processor{
		config: cfg,
		macros: f.macros,
		dump:   f.dump,
		logger: logger,
	}

	results, err := p.processAll(inputs, f.jobs)
	err = multierr.Append(readErr, err)

	if f.dump {
		for _, result := range results {
			_, _ = io.WriteString(stderr, result.dump)
		}
	}

	if writeErr := writeResults(results, cfg.Output.Dir, stdout); writeErr != nil {
		err = multierr.Append(err, writeErr)
	}

	if err != nil {
		if printErr := printer.PrettyPrint(err); printErr != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}

		return exitFailure
	}

	logger.Debug().Int("files", len(inputs)).Msg("done")

	return exitOK
}

// configKeys maps the flags that override config values to their keys.
var configKeys = map[string]string{
	"max-depth": "max_depth",
	"width":     "output.width",
	"indent":    "output.indent",
	"color":     "color",
	"out":       "output.dir",
}

// loadConfig loads the config file, if any, and applies the flags that
// were set on the command line on top of it. Every overridden file value
// is noted as an info diagnostic.
func loadConfig(fs *flag.FlagSet, f *flags) (*config.File, diagnostic.Diagnostics, error) {
	var notes diagnostic.Diagnostics
	cfg := config.Default()

	if f.configPath != "" {
		loaded, err := config.LoadFile(f.configPath)
		if err != nil {
			return nil, notes, err
		}

		cfg = loaded
	}

	fs.Visit(func(fl *flag.Flag) {
		key, ok := configKeys[fl.Name]
		if !ok {
			return
		}

		switch fl.Name {
		case "max-depth":
			cfg.MaxDepth = f.maxDepth
		case "width":
			cfg.Output.Width = f.width
		case "indent":
			cfg.Output.Indent = f.indent
		case "color":
			cfg.Color = config.ColorMode(f.color)
		case "out":
			cfg.Output.Dir = f.outDir
		}

		if f.configPath != "" {
			notes.AddInfo(
				"flag_override",
				fmt.Sprintf("-%s=%s overrides the config file", fl.Name, fl.Value),
				key,
			)
		}
	})

	return cfg, notes, nil
}

func newLogger(w io.Writer, verbose bool, colorize bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.DateTime,
		NoColor:    !colorize,
	}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
