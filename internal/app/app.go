// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"tbfsbs-core/tbfsbs"
	"tbfsbs/internal/cli"
	"tbfsbs/internal/cmdutil"
	"tbfsbs/internal/input"
	"tbfsbs/internal/output"
	"tbfsbs/internal/version"
	"tbfsbs/internal/writers"
)

// RunContext is the full program: parse argv, expand directory inputs,
// parse every input file into its own collection, report per-file
// summaries to stdout, then merge and optionally re-serialize all
// records to the output sink.
//
// Exit codes: 0 success (including broken pipe on stdout), 2 usage or
// input error, 3 output error, 130 canceled.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(cli.ProgName)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			cli.Usage(outw, fs)
			return flushCode(outw, stderr)
		}
		fmt.Fprintln(stderr, err)
		cli.Usage(stderr, fs)
		return 2
	}
	if opts.Version {
		fmt.Fprintf(outw, "%s version %s\n", cli.ProgName, version.Version)
		return flushCode(outw, stderr)
	}

	files, err := input.ExpandPaths(opts.Inputs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	merged := &tbfsbs.Collection{}
	for _, path := range files {
		col, err := parseFile(ctx, path)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return 130
			}
			if opts.SkipErrors {
				cmdutil.Warnf(stderr, opts.Quiet, "%v", err)
				continue
			}
			fmt.Fprintln(stderr, err)
			return 2
		}
		if !opts.Quiet {
			if err := report(outw, opts.Format, displayName(path), col); err != nil {
				return writeFail(err, stderr)
			}
		}
		merged.Extend(col)
	}

	if opts.Output != "" {
		if err := writeMerged(merged, opts.Output, opts.Wrap, outw); err != nil {
			return writeFail(err, stderr)
		}
	}
	return flushCode(outw, stderr)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// parseFile reads one input path into a fresh collection. The handle is
// opened, read to EOF, and closed before return; no partial collection
// escapes on error.
func parseFile(ctx context.Context, path string) (*tbfsbs.Collection, error) {
	rc, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	col := &tbfsbs.Collection{}
	if err := col.ParseContext(ctx, rc); err != nil {
		return nil, fmt.Errorf("%s: %w", displayName(path), err)
	}
	return col, nil
}

func report(w io.Writer, format, name string, c *tbfsbs.Collection) error {
	switch format {
	case cli.FormatJSON:
		return output.WriteJSON(w, name, c)
	default:
		return output.WriteText(w, name, c)
	}
}

// writeMerged serializes the merged collection to path ("-" = stdout,
// sharing the buffered stdout writer so summaries stay ordered).
func writeMerged(c *tbfsbs.Collection, path string, wrap int, stdoutw *bufio.Writer) error {
	if path == "-" {
		return c.Write(stdoutw, wrap)
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fh)
	if err := c.Write(w, wrap); err != nil {
		_ = fh.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}

func flushCode(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func writeFail(err error, stderr io.Writer) int {
	if writers.IsBrokenPipe(err) {
		return 0
	}
	fmt.Fprintln(stderr, err)
	return 3
}
