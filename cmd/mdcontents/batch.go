package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown  = errors.New("failed to read markdown file")
	ErrWriteMarkdown = errors.New("failed to write markdown file")
)

// fileStatus describes what happened to one file.
type fileStatus int

const (
	statusUnchanged fileStatus = iota // already up to date, nothing written
	statusUpdated                     // rewritten (generate, strip) or would be (check)
)

// FileResult holds the outcome of processing a single file.
type FileResult struct {
	Path     string
	Status   fileStatus
	Err      error
	Duration time.Duration
}

// fileJob processes one file. Implementations must be safe for concurrent use.
type fileJob func(ctx context.Context, path string) FileResult

// processBatch runs job over files with at most workers goroutines.
// Results are returned in input order regardless of completion order.
func processBatch(ctx context.Context, workers int, files []string, job fileJob) []FileResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency > len(files) {
		concurrency = len(files)
	}
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]FileResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = FileResult{Path: files[idx], Err: err}
					continue
				}
				results[idx] = job(ctx, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// ResultSummary holds the count of updated, unchanged and failed files.
type ResultSummary struct {
	Updated   int
	Unchanged int
	Failed    int
}

// countResults tallies results by status.
func countResults(results []FileResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Status == statusUpdated:
			summary.Updated++
		default:
			summary.Unchanged++
		}
	}
	return summary
}

// batchError joins the errors of failed results, or returns nil when every
// file succeeded. The joined error keeps each cause reachable by errors.Is.
func batchError(results []FileResult) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d file(s) failed: %w", len(errs), len(results), errors.Join(errs...))
}

// resultVerbs names a status in printed output for one command.
type resultVerbs struct {
	updated   string
	unchanged string
	tally     string // summary line: updated, unchanged, failed counts
}

var (
	generateVerbs = resultVerbs{updated: "Updated", unchanged: "Unchanged", tally: "%d updated, %d unchanged, %d failed"}
	stripVerbs    = resultVerbs{updated: "Stripped", unchanged: "No contents block in", tally: "%d stripped, %d without block, %d failed"}
	checkVerbs    = resultVerbs{updated: "Stale", unchanged: "Up to date", tally: "%d stale, %d up to date, %d failed"}
)

// printResults outputs results using the environment writers and returns
// the summary. Failures always go to Stderr; unchanged files are listed with
// --verbose only.
func printResults(results []FileResult, verbs resultVerbs, flags commonFlags, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.Path, r.Err)
			continue
		}

		if flags.quiet {
			continue
		}

		verb := verbs.updated
		if r.Status == statusUnchanged {
			if !flags.verbose {
				continue
			}
			verb = verbs.unchanged
		}

		if flags.verbose {
			fmt.Fprintf(env.Stdout, "%s %s (%v)\n", verb, r.Path, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "%s %s\n", verb, r.Path)
		}
	}

	if !flags.quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n"+verbs.tally+"\n", summary.Updated, summary.Unchanged, summary.Failed)
	}

	return summary
}
