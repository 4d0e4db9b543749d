// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"tbfsbs/internal/version"
)

// Summary report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Positional input paths: files, directories, or "-" for stdin.
	Inputs []string

	// Output
	Output string // TBFSBS output file ("" = don't write, "-" = stdout)
	Wrap   int    // max sequence line width (0 = unbounded)
	Format string // summary format: text | json

	// Behavior
	SkipErrors bool
	Quiet      bool

	Version bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	return fs
}

// ProgName is the canonical binary name used in help output.
const ProgName = "tbfsbs"

// Usage writes the full help text for fs to w.
func Usage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w,
		`%s: parse TBFSBS (Text-Based Format for Storing Biological Sequences) files

Version: %s

Usage:
  %s [flags] <file|dir|->...

Flags:
%s`, ProgName, version.Version, ProgName, fs.FlagUsages())
}

// Parse is the top-level call for CLI parsing.
func Parse(argv []string) (Options, error) { return ParseArgs(NewFlagSet(ProgName), argv) }

// ParseArgs registers and parses all flags, returns an Options struct.
// Remaining positional arguments become Inputs.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVarP(&opt.Output, "output", "o", "", "write merged TBFSBS records to this file ('-' = stdout)")
	fs.IntVarP(&opt.Wrap, "wrap", "w", 0, "maximum sequence line width (0 = unbounded)")
	fs.StringVar(&opt.Format, "format", FormatText, "summary format: text | json")
	fs.BoolVar(&opt.SkipErrors, "skip-errors", false, "warn and continue when an input file is malformed")
	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "suppress per-file summaries and warnings")
	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit")
	fs.BoolVarP(&help, "help", "h", false, "show this help message")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, pflag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Inputs = fs.Args()

	// Validation
	if len(opt.Inputs) == 0 {
		return opt, errors.New("at least one input file or directory is required")
	}
	if opt.Wrap < 0 {
		return opt, errors.New("--wrap must be ≥ 0")
	}
	if opt.Format != FormatText && opt.Format != FormatJSON {
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	return opt, nil
}
