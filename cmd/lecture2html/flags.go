package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/adventure705/shortstobenz3/internal/config"
)

// Flag errors. Inputs come from the data directory, so positional arguments
// are rejected.
var (
	ErrUnexpectedArgs   = errors.New("unexpected arguments")
	ErrConflictingFlags = errors.New("conflicting flags")
)

// cliFlags holds every command line flag. All are optional.
type cliFlags struct {
	config  string
	data    string
	out     string
	workers int
	timeout time.Duration

	strict  bool
	quiet   bool
	verbose bool
	version bool

	standalone bool
	markdown   bool
	pdf        bool
	style      string

	changed func(name string) bool
}

// parseFlags parses args without the program name.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, error) {
	fs := flag.NewFlagSet("lecture2html", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path (default: lecture2html.yaml if present)")
	fs.StringVar(&f.data, "data", "", "directory holding the lecture JSON files")
	fs.StringVar(&f.out, "out", "", "directory receiving the pages")
	fs.IntVarP(&f.workers, "workers", "w", 0, "lectures converted in parallel (0 = auto)")
	fs.DurationVar(&f.timeout, "timeout", 0, "PDF page load timeout (e.g. 30s, 2m)")

	fs.BoolVar(&f.strict, "strict", false, "exit non-zero when a lecture fails or a part file is skipped")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-lecture timing")
	fs.BoolVar(&f.version, "version", false, "print the version and exit")

	fs.BoolVar(&f.standalone, "standalone", false, "write full HTML documents with the style inlined")
	fs.BoolVar(&f.markdown, "markdown", false, "also write a Markdown export per lecture")
	fs.BoolVar(&f.pdf, "pdf", false, "also print a PDF per lecture (needs Chrome)")
	fs.StringVar(&f.style, "style", "", "stylesheet name for --standalone")

	fs.Usage = func() { printUsage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedArgs, fs.Args())
	}
	if f.quiet && f.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose", ErrConflictingFlags)
	}
	f.changed = fs.Changed
	return f, nil
}

// mergeFlags applies explicitly set flags over cfg.
func mergeFlags(f *cliFlags, cfg *config.Config) {
	if f.data != "" {
		cfg.Input.Dir = f.data
	}
	if f.out != "" {
		cfg.Output.Dir = f.out
	}
	if f.changed != nil && f.changed("workers") {
		cfg.Workers = f.workers
	}
	if f.standalone {
		cfg.Output.Standalone = true
	}
	if f.markdown {
		cfg.Output.Markdown = true
	}
	if f.pdf {
		cfg.Output.PDF = true
	}
	if f.style != "" {
		cfg.Assets.Style = f.style
	}
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `Usage: lecture2html [flags]

Converts every lecture found in the data directory ("1강_1부 기초편.json",
"1강_2부 실전편.json", ...) into one page per lecture.

Flags:
%s
Environment:
  LECTURE2HTML_CONFIG, LECTURE2HTML_DATA, LECTURE2HTML_OUT,
  LECTURE2HTML_STYLE, LECTURE2HTML_WORKERS
  ROD_BROWSER_BIN, ROD_NO_SANDBOX (PDF output)
`, fs.FlagUsages())
}
