package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	mdcontents "github.com/alnah/go-mdcontents"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment and fixtures
// ---------------------------------------------------------------------------

// sampleDocument is a small document with three levels.
const sampleDocument = "# Intro\n\ntext\n\n## Setup\n\n### Linux\n\n# Usage\n"

// testEnv returns an Environment writing to buffers, with a fixed clock.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &Environment{
		Now:    func() time.Time { return fixed },
		Stdout: stdout,
		Stderr: stderr,
		Logger: newLogger(stderr),
	}, stdout, stderr
}

// writeFile creates a file under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("creating dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// readFile returns the content of path.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// generated returns what the library writes for content with default options.
func generated(t *testing.T, content string, opts ...mdcontents.Option) string {
	t.Helper()
	res, err := mdcontents.NewGenerator(opts...).Generate(context.Background(), content)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	return res.Document
}
