package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdcontents/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand is returned for a first argument that is neither a
// command nor a markdown input.
var ErrUnknownCommand = errors.New("unknown command")

// Command names.
const (
	cmdGenerate = "generate"
	cmdStrip    = "strip"
	cmdCheck    = "check"
	cmdVersion  = "version"
	cmdHelp     = "help"
)

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches args to a command and returns the process exit code.
// A first argument naming a markdown file, a directory or a flag runs generate.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	if implicitGenerate(cmd) {
		cmd, rest = cmdGenerate, args[1:]
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	var err error
	switch cmd {
	case cmdGenerate:
		err = runGenerate(ctx, rest, env)
	case cmdStrip:
		err = runStrip(ctx, rest, env)
	case cmdCheck:
		err = runCheck(ctx, rest, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "mdcontents %s\n", Version)
	case cmdHelp, "-h", "--help":
		return runHelp(rest, env)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		fmt.Fprintln(env.Stderr, err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, flag.ErrHelp):
		return ExitSuccess
	case errors.Is(err, ErrInvalidFlag):
		fmt.Fprintln(env.Stderr, err)
		commandUsage(cmd)(env.Stderr)
		return ExitUsage
	default:
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
}

// isCommand reports whether arg names a command.
func isCommand(arg string) bool {
	switch arg {
	case cmdGenerate, cmdStrip, cmdCheck, cmdVersion, cmdHelp:
		return true
	}
	return false
}

// implicitGenerate reports whether the first argument starts a generate
// run without naming the command.
func implicitGenerate(arg string) bool {
	if isCommand(arg) || arg == "-h" || arg == "--help" {
		return false
	}
	return strings.HasPrefix(arg, "-") || looksLikeInput(arg)
}

// looksLikeInput reports whether arg is a markdown path or an existing
// directory, which makes "generate" implicit.
func looksLikeInput(arg string) bool {
	if fileutil.IsMarkdown(arg) {
		return true
	}
	info, err := os.Stat(arg)
	return err == nil && info.IsDir()
}
