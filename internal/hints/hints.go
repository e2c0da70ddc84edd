// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdcontents/internal/fileutil"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and, when one was searched, the user
// config location to create.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-mdcontents/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInvalidExtension returns a hint for paths that are not markdown files.
// When a markdown sibling exists (e.g. "notes" -> "notes.md") it is suggested.
func ForInvalidExtension(path string) string {
	for _, ext := range []string{".md", ".markdown"} {
		if candidate := path + ext; fileutil.FileExists(candidate) {
			return format("did you mean " + candidate + "?")
		}
	}
	return format("only .md and .markdown files are processed")
}

// ForStale returns the hint printed when check finds outdated files.
func ForStale() string {
	return format("run 'mdcontents generate' to refresh the contents blocks")
}

// ForCheckKeepExisting returns a hint for check combined with keep-existing.
func ForCheckKeepExisting() string {
	return format("drop --keep-existing, or set contents.keepExisting: false for check")
}

// ForNoInput returns a hint for a missing input path.
func ForNoInput() string {
	return format("pass a file or directory, or set input.defaultDir / MDCONTENTS_INPUT_DIR")
}

// ForStdoutMultiple returns a hint for --stdout with several files.
func ForStdoutMultiple() string {
	return format("--stdout works with a single file; drop it to rewrite files in place")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
