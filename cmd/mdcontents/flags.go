package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	workers int
}

// contentsFlags holds flags that shape the generated block.
type contentsFlags struct {
	title          string
	keepExisting   bool
	skipCodeBlocks bool
	frontMatter    bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common   commonFlags
	contents contentsFlags
	stdout   bool
}

// checkFlags holds all flags for the check command.
// check compares against what generate would write, so it takes the same
// contents flags.
type checkFlags struct {
	common   commonFlags
	contents contentsFlags
}

// stripFlags holds all flags for the strip command.
type stripFlags struct {
	common      commonFlags
	frontMatter bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing and diagnostics")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
}

// addContentsFlags adds contents block flags to a FlagSet.
func addContentsFlags(fs *flag.FlagSet, f *contentsFlags) {
	fs.StringVar(&f.title, "title", "", "heading inside the contents block (default \"Contents\")")
	fs.BoolVar(&f.keepExisting, "keep-existing", false, "do not remove a previous contents block")
	fs.BoolVar(&f.skipCodeBlocks, "skip-code", false, "ignore heading-like lines inside code blocks")
	fs.BoolVar(&f.frontMatter, "front-matter", false, "insert the block after leading front matter")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, stderr io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, stderr io.Writer) (*generateFlags, []string, error) {
	f := &generateFlags{}
	fs := newFlagSet("generate", stderr, printGenerateUsage)

	fs.BoolVar(&f.stdout, "stdout", false, "print the result instead of rewriting the file")
	addCommonFlags(fs, &f.common)
	addContentsFlags(fs, &f.contents)

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseCheckFlags parses check command flags and returns positional args.
func parseCheckFlags(args []string, stderr io.Writer) (*checkFlags, []string, error) {
	f := &checkFlags{}
	fs := newFlagSet("check", stderr, printCheckUsage)

	addCommonFlags(fs, &f.common)
	addContentsFlags(fs, &f.contents)

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseStripFlags parses strip command flags and returns positional args.
func parseStripFlags(args []string, stderr io.Writer) (*stripFlags, []string, error) {
	f := &stripFlags{}
	fs := newFlagSet("strip", stderr, printStripUsage)

	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.frontMatter, "front-matter", false, "look for the block after leading front matter")

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// ErrInvalidFlag wraps flag parsing failures. Callers print it along with
// the command usage.
var ErrInvalidFlag = errors.New("invalid flag")

// parseError wraps a pflag error, keeping flag.ErrHelp detectable.
func parseError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidFlag, err)
}
