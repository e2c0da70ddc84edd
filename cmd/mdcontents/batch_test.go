package main

// Notes:
// - processBatch: we test ordering under concurrency, the concurrency bound,
//   and cancellation before jobs start. Cancellation mid-job depends on the
//   job itself and is covered through Generate's own context check.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestProcessBatch - Worker pool
// ---------------------------------------------------------------------------

func TestProcessBatch_PreservesOrder(t *testing.T) {
	t.Parallel()

	files := make([]string, 20)
	index := make(map[string]int, len(files))
	for i := range files {
		files[i] = fmt.Sprintf("doc-%02d.md", i)
		index[files[i]] = i
	}

	job := func(_ context.Context, path string) FileResult {
		// Later files finish first.
		time.Sleep(time.Duration(len(files)-index[path]) * time.Millisecond)
		return FileResult{Path: path, Status: statusUpdated}
	}

	results := processBatch(context.Background(), 4, files, job)

	if len(results) != len(files) {
		t.Fatalf("got %d results, want %d", len(results), len(files))
	}
	for i, r := range results {
		if r.Path != files[i] {
			t.Errorf("results[%d].Path = %q, want %q", i, r.Path, files[i])
		}
	}
}

func TestProcessBatch_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	var running, peak atomic.Int32
	job := func(_ context.Context, path string) FileResult {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)
		return FileResult{Path: path}
	}

	files := []string{"a.md", "b.md", "c.md", "d.md", "e.md", "f.md"}
	processBatch(context.Background(), 2, files, job)

	if got := peak.Load(); got > 2 {
		t.Errorf("peak concurrency = %d, want <= 2", got)
	}
}

func TestProcessBatch_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	job := func(_ context.Context, path string) FileResult {
		calls.Add(1)
		return FileResult{Path: path}
	}

	results := processBatch(ctx, 2, []string{"a.md", "b.md", "c.md"}, job)

	if calls.Load() != 0 {
		t.Errorf("job called %d times after cancellation, want 0", calls.Load())
	}
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("result %s error = %v, want context.Canceled", r.Path, r.Err)
		}
	}
}

func TestProcessBatch_Empty(t *testing.T) {
	t.Parallel()

	if results := processBatch(context.Background(), 4, nil, nil); results != nil {
		t.Errorf("processBatch(nil) = %v, want nil", results)
	}
}

// ---------------------------------------------------------------------------
// TestPrintResults - Output formatting
// ---------------------------------------------------------------------------

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []FileResult{
		{Path: "a.md", Status: statusUpdated, Duration: 3 * time.Millisecond},
		{Path: "b.md", Status: statusUnchanged},
		{Path: "c.md", Err: errors.New("boom")},
	}

	tests := []struct {
		name          string
		flags         commonFlags
		wantStdout    []string
		excludeStdout []string
	}{
		{
			name:          "default",
			flags:         commonFlags{},
			wantStdout:    []string{"Updated a.md\n", "1 updated, 1 unchanged, 1 failed"},
			excludeStdout: []string{"b.md"},
		},
		{
			name:       "verbose lists unchanged with timing",
			flags:      commonFlags{verbose: true},
			wantStdout: []string{"Updated a.md (3ms)", "Unchanged b.md"},
		},
		{
			name:          "quiet",
			flags:         commonFlags{quiet: true},
			excludeStdout: []string{"a.md", "updated"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			summary := printResults(results, generateVerbs, tt.flags, env)

			if summary != (ResultSummary{Updated: 1, Unchanged: 1, Failed: 1}) {
				t.Errorf("summary = %+v", summary)
			}
			if !strings.Contains(stderr.String(), "FAILED c.md: boom") {
				t.Errorf("stderr = %q, want failure line", stderr.String())
			}
			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout = %q, want %q", stdout.String(), want)
				}
			}
			for _, exclude := range tt.excludeStdout {
				if strings.Contains(stdout.String(), exclude) {
					t.Errorf("stdout = %q, should not contain %q", stdout.String(), exclude)
				}
			}
		})
	}
}

func TestBatchError(t *testing.T) {
	t.Parallel()

	if err := batchError([]FileResult{{Path: "a.md"}}); err != nil {
		t.Errorf("batchError(success) = %v, want nil", err)
	}

	err := batchError([]FileResult{
		{Path: "a.md", Err: fmt.Errorf("%w: denied", ErrWriteMarkdown)},
		{Path: "b.md"},
	})
	if !errors.Is(err, ErrWriteMarkdown) {
		t.Errorf("batchError() = %v, want ErrWriteMarkdown in chain", err)
	}
	if !strings.Contains(err.Error(), "1 of 2 file(s) failed") {
		t.Errorf("batchError() message = %q", err.Error())
	}
}
