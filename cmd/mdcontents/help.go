package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdcontents [command] [flags] <file-or-dir>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Insert or refresh the numbered contents block (default)")
	fmt.Fprintln(w, "  strip      Remove the contents block")
	fmt.Fprintln(w, "  check      Report files whose contents block is out of date")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A markdown file or directory as first argument runs generate.")
	fmt.Fprintln(w, "Run 'mdcontents help <command>' for details on a specific command.")
}

// printCommonFlags prints flags shared by generate, strip and check.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-file timing and diagnostics")
}

// printContentsFlags prints flags that shape the generated block.
func printContentsFlags(w io.Writer) {
	fmt.Fprintln(w, "Contents:")
	fmt.Fprintln(w, "      --title <s>           Heading inside the block (default \"Contents\")")
	fmt.Fprintln(w, "      --keep-existing       Do not remove a previous contents block")
	fmt.Fprintln(w, "      --skip-code           Ignore heading-like lines inside code blocks")
	fmt.Fprintln(w, "      --front-matter        Insert the block after leading front matter")
}

// printInputHelp prints the shared arguments and environment sections.
func printInputHelp(w io.Writer) {
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  file-or-dir    Markdown files (.md, .markdown) or directories to walk")
	fmt.Fprintln(w, "                 (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
}

// printEnvHelp prints the recognized environment variables.
func printEnvHelp(w io.Writer) {
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDCONTENTS_CONFIG      Config file name or path")
	fmt.Fprintln(w, "  MDCONTENTS_TITLE       Contents block heading")
	fmt.Fprintln(w, "  MDCONTENTS_INPUT_DIR   Default input directory")
	fmt.Fprintln(w, "  MDCONTENTS_WORKERS     Parallel workers")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Priority: flags > environment > config file > defaults.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdcontents generate [flags] <file-or-dir>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Number every heading and write a contents block at the top of each file.")
	fmt.Fprintln(w, "A previous block is replaced, so running it twice changes nothing.")
	fmt.Fprintln(w)
	printInputHelp(w)
	printCommonFlags(w)
	fmt.Fprintln(w)
	printContentsFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --stdout              Print the result instead of rewriting the file")
	fmt.Fprintln(w)
	printEnvHelp(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  mdcontents README.md")
	fmt.Fprintln(w, "  mdcontents generate --skip-code --title \"Table of Contents\" docs/")
	fmt.Fprintln(w, "  mdcontents generate --stdout guide.md > guide.out.md")
}

// printStripUsage prints usage for the strip command.
func printStripUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdcontents strip [flags] <file-or-dir>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Remove the contents block written by generate.")
	fmt.Fprintln(w)
	printInputHelp(w)
	printCommonFlags(w)
	fmt.Fprintln(w, "      --front-matter        Look for the block after leading front matter")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdcontents check [flags] <file-or-dir>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit with status 1 if any file would change under generate.")
	fmt.Fprintln(w, "Nothing is written.")
	fmt.Fprintln(w, "--keep-existing (or contents.keepExisting) is rejected: generate would")
	fmt.Fprintln(w, "always add a block, so every file would read as stale.")
	fmt.Fprintln(w)
	printInputHelp(w)
	printCommonFlags(w)
	fmt.Fprintln(w)
	printContentsFlags(w)
}

// commandUsage returns the usage printer for a command.
func commandUsage(cmd string) func(io.Writer) {
	switch cmd {
	case cmdGenerate:
		return printGenerateUsage
	case cmdStrip:
		return printStripUsage
	case cmdCheck:
		return printCheckUsage
	}
	return printUsage
}

// runHelp prints help for a command and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case cmdGenerate:
		printGenerateUsage(env.Stdout)
	case cmdStrip:
		printStripUsage(env.Stdout)
	case cmdCheck:
		printCheckUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: mdcontents version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: mdcontents help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
