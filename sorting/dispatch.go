// Package sorting reads lines, words or integers and reports them either
// in natural order or ranked by how often they occur.
package sorting

import (
	"context"
	"io"

	"github.com/rs/zerolog"
)

// Run parses args and drives one full pass: collect, process, render and
// deliver. Diagnostics go to warn. Only configuration and I/O errors are
// returned. Tracing goes to the zerolog logger carried by ctx, if any.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, warn io.Writer) error {
	log := zerolog.Ctx(ctx)

	opts, err := ParseOptions(args, warn)
	if err != nil {
		return err
	}
	log.Debug().
		Str("sortingType", opts.SortingType).
		Str("dataType", opts.DataType).
		Bool("inputFile", opts.InputFile != nil).
		Bool("outputFile", opts.OutputFile != nil).
		Msg("options parsed")

	kind, err := ParseKind(opts.DataType)
	if err != nil {
		return err
	}
	mode, err := ParseMode(opts.SortingType)
	if err != nil {
		return err
	}
	proc, err := NewProcessor(kind)
	if err != nil {
		return err
	}

	tokens, err := Collect(opts.Input(stdin), kind, warn)
	if err != nil {
		return err
	}
	log.Debug().Stringer("kind", kind).Int("tokens", len(tokens)).Msg("input collected")

	if err := ctx.Err(); err != nil {
		return err
	}

	report := &Report{Kind: kind, Mode: mode}
	switch mode {
	case ModeNatural:
		report.Sorted = proc.Natural(tokens)
	case ModeCount:
		report.Entries = proc.Counts(tokens)
	}

	return Deliver(opts.Output(stdout), Render(report))
}
