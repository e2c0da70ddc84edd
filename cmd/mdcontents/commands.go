package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	mdcontents "github.com/alnah/go-mdcontents"
	"github.com/alnah/go-mdcontents/internal/config"
	"github.com/alnah/go-mdcontents/internal/fileutil"
	"github.com/alnah/go-mdcontents/internal/hints"
)

// Sentinel errors for command outcomes.
var (
	ErrStale             = errors.New("contents out of date")
	ErrStdoutMultiple    = errors.New("--stdout requires exactly one input file")
	ErrCheckKeepExisting = errors.New("check cannot run in keep-existing mode")
)

// transformFunc rewrites one document.
type transformFunc func(ctx context.Context, markdown string) (string, error)

// sinkFunc receives the original and transformed text of a file and
// reports whether the file changed.
type sinkFunc func(path, original, updated string) (fileStatus, error)

// writeInPlace rewrites changed files atomically and leaves others untouched.
func writeInPlace(path, original, updated string) (fileStatus, error) {
	if updated == original {
		return statusUnchanged, nil
	}
	if err := fileutil.WriteFileAtomic(path, []byte(updated)); err != nil {
		return statusUnchanged, fmt.Errorf("%w: %v", ErrWriteMarkdown, err)
	}
	return statusUpdated, nil
}

// reportOnly compares without writing anything.
func reportOnly(_, original, updated string) (fileStatus, error) {
	if updated == original {
		return statusUnchanged, nil
	}
	return statusUpdated, nil
}

// writeTo prints the transformed text to w.
func writeTo(w io.Writer) sinkFunc {
	return func(_, original, updated string) (fileStatus, error) {
		if _, err := io.WriteString(w, updated); err != nil {
			return statusUnchanged, err
		}
		return reportOnly("", original, updated)
	}
}

// transformJob builds a fileJob that reads a file, transforms it and hands
// the result to sink.
func transformJob(env *Environment, transform transformFunc, sink sinkFunc) fileJob {
	return func(ctx context.Context, path string) FileResult {
		start := env.Now()
		result := FileResult{Path: path}

		content, err := os.ReadFile(path) // #nosec G304 -- discovered path
		if err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
			result.Duration = env.Now().Sub(start)
			return result
		}

		updated, err := transform(ctx, string(content))
		if err != nil {
			result.Err = err
			result.Duration = env.Now().Sub(start)
			return result
		}

		result.Status, result.Err = sink(path, string(content), updated)
		result.Duration = env.Now().Sub(start)

		env.Logger.WithFields(logrus.Fields{
			"file":     path,
			"changed":  result.Status == statusUpdated,
			"duration": result.Duration,
		}).Debug("processed")
		return result
	}
}

// generateTransform returns the full document Generate would write.
func generateTransform(gen *mdcontents.Generator) transformFunc {
	return func(ctx context.Context, markdown string) (string, error) {
		res, err := gen.Generate(ctx, markdown)
		if err != nil {
			return "", err
		}
		return res.Document, nil
	}
}

// runGenerate refreshes the contents block of every input file.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	plan, err := planBatch(flags.common, positional, env, func(cfg *config.Config) {
		mergeContentsFlags(flags.contents, cfg)
	})
	if err != nil {
		return err
	}

	transform := generateTransform(newGenerator(plan.cfg.Contents))

	if flags.stdout {
		if len(plan.files) != 1 {
			return fmt.Errorf("%w: got %d files%s", ErrStdoutMultiple, len(plan.files), hints.ForStdoutMultiple())
		}
		result := transformJob(env, transform, writeTo(env.Stdout))(ctx, plan.files[0])
		return result.Err
	}

	results := processBatch(ctx, plan.workers, plan.files, transformJob(env, transform, writeInPlace))
	printResults(results, generateVerbs, flags.common, env)
	return batchError(results)
}

// runStrip removes the contents block from every input file.
func runStrip(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseStripFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	plan, err := planBatch(flags.common, positional, env, func(cfg *config.Config) {
		if flags.frontMatter {
			cfg.Contents.FrontMatter = true
		}
	})
	if err != nil {
		return err
	}

	gen := newGenerator(plan.cfg.Contents)
	transform := func(ctx context.Context, markdown string) (string, error) {
		stripped, _, err := gen.Strip(ctx, markdown)
		return stripped, err
	}

	results := processBatch(ctx, plan.workers, plan.files, transformJob(env, transform, writeInPlace))
	printResults(results, stripVerbs, flags.common, env)
	return batchError(results)
}

// runCheck reports files whose contents block differs from what generate
// would write. Nothing is modified.
func runCheck(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseCheckFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	plan, err := planBatch(flags.common, positional, env, func(cfg *config.Config) {
		mergeContentsFlags(flags.contents, cfg)
	})
	if err != nil {
		return err
	}
	// A kept block is never replaced, so every file would read as stale.
	if plan.cfg.Contents.KeepExisting {
		return fmt.Errorf("%w%s", ErrCheckKeepExisting, hints.ForCheckKeepExisting())
	}

	transform := generateTransform(newGenerator(plan.cfg.Contents))

	results := processBatch(ctx, plan.workers, plan.files, transformJob(env, transform, reportOnly))
	summary := printResults(results, checkVerbs, flags.common, env)
	if err := batchError(results); err != nil {
		return err
	}
	if summary.Updated > 0 {
		return fmt.Errorf("%w: %d file(s)%s", ErrStale, summary.Updated, hints.ForStale())
	}
	return nil
}
