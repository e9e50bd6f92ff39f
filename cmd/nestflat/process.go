package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"nestflat/internal/config"
	"nestflat/internal/diagnostic"
	"nestflat/internal/emit"
	"nestflat/internal/macro"
	"nestflat/nested"
)

const stdinName = "<stdin>"

type input struct {
	// path is empty for stdin.
	path   string
	source []byte
}

func (in input) name() string {
	if in.path == "" {
		return stdinName
	}

	return in.path
}

type result struct {
	input
	output []byte
	dump   string
	err    error
}

func readInputs(paths []string, stdin io.Reader) ([]input, error) {
	if len(paths) == 0 {
		source, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}

		return []input{{source: source}}, nil
	}

	var errs error
	inputs := make([]input, 0, len(paths))

	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "reading %s", path))
			continue
		}

		inputs = append(inputs, input{path: path, source: source})
	}

	return inputs, errs
}

type processor struct {
	config *config.File
	macros bool
	dump   bool
	logger zerolog.Logger
}

// processAll processes inputs with at most jobs of them at a time. The
// results are in input order. The returned error combines the failures of
// all inputs, each one wrapped in a *diagnostic.FileError.
func (p *processor) processAll(inputs []input, jobs int) ([]result, error) {
	results := make([]result, len(inputs))

	var group errgroup.Group
	group.SetLimit(jobs)

	for i, in := range inputs {
		i, in := i, in
		group.Go(func() error {
			results[i] = p.process(in)
			return nil
		})
	}

	_ = group.Wait()

	var errs error
	for _, result := range results {
		if result.err == nil {
			continue
		}

		errs = multierr.Append(errs, &diagnostic.FileError{
			Path:   result.name(),
			Source: result.source,
			Err:    result.err,
		})
	}

	return results, errs
}

func (p *processor) options(logger zerolog.Logger) []nested.Option {
	return []nested.Option{
		nested.WithMaxDepth(p.config.MaxDepth),
		nested.WithEmitOptions(p.config.EmitOptions()),
		nested.WithMacroName(p.config.MacroName),
		nested.WithLogger(logger),
	}
}

func (p *processor) process(in input) result {
	logger := p.logger.With().Str("file", in.name()).Logger()
	logger.Debug().Int("bytes", len(in.source)).Msg("processing")

	res := result{input: in}
	opts := p.options(logger)

	if p.dump {
		res.dump = p.dumpInput(in, opts)
	}

	if p.macros {
		output, count, err := nested.ExpandMacros(in.source, opts...)
		if err != nil {
			res.err = err
			return res
		}

		logger.Debug().Int("invocations", count).Msg("expanded macros")
		res.output = output

		return res
	}

	output, err := nested.Expand(in.source, opts...)
	if err != nil {
		res.err = err
		return res
	}

	res.output = output

	return res
}

// dumpInput returns a dump of the parsed block, or of the macro
// invocations of a host file. Inputs that fail to parse are not dumped.
func (p *processor) dumpInput(in input, opts []nested.Option) string {
	dumper := spew.NewDefaultConfig()
	dumper.DisablePointerAddresses = true
	dumper.SortKeys = true

	header := "==> " + in.name() + "\n"

	if p.macros {
		invocations, err := macro.Find(in.source, p.config.MacroName)
		if err != nil {
			return ""
		}

		return header + dumper.Sdump(invocations)
	}

	block, err := nested.Parse(in.source, opts...)
	if err != nil {
		return ""
	}

	return header + dumper.Sdump(block)
}

// writeResults writes the output of every successful input, to outDir when
// set, to stdout otherwise. Inputs whose base names collide in outDir are
// reported and only the first one is written.
func writeResults(results []result, outDir string, stdout io.Writer) error {
	if outDir == "" {
		for _, result := range results {
			if result.err != nil {
				continue
			}

			if _, err := stdout.Write(result.output); err != nil {
				return errors.Wrap(err, "writing output")
			}
		}

		return nil
	}

	var errs error
	files := make([]emit.GeneratedFile, 0, len(results))
	writtenBy := make(map[string]string, len(results))

	for _, result := range results {
		if result.err != nil {
			continue
		}

		filename := filepath.Base(result.path)
		if result.path == "" {
			filename = "stdin.rs"
		}

		if previous, ok := writtenBy[filename]; ok {
			errs = multierr.Append(errs, errors.Errorf(
				"output file %s is written by both %s and %s; %s was skipped",
				filepath.Join(outDir, filename), previous, result.name(), result.name(),
			))
			continue
		}
		writtenBy[filename] = result.name()

		files = append(files, emit.GeneratedFile{
			Filename: filename,
			Content:  result.output,
		})
	}

	if len(files) > 0 {
		errs = multierr.Append(errs, emit.WriteFiles(files, outDir))
	}

	return errs
}
