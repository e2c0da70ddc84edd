package mdcontents

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-mdcontents/internal/pipeline"
)

// Result holds the outcome of generating a contents block for one document.
type Result struct {
	Document string    // full document: front matter, contents block, body
	Contents string    // rendered outline body, without markers or title
	Headings []Heading // headings the outline was built from
	Replaced bool      // a previous contents block was removed
}

// Option configures a Generator.
type Option func(*Generator)

// WithKeepExisting leaves a previous contents block in place instead of
// removing it before extraction.
func WithKeepExisting() Option {
	return func(g *Generator) { g.keepExisting = true }
}

// WithSkipCodeBlocks ignores lines inside fenced or indented code blocks.
func WithSkipCodeBlocks() Option {
	return func(g *Generator) { g.codeDetector = pipeline.NewGoldmarkDetector() }
}

// WithFrontMatter keeps a leading front matter block at the top of the
// document and inserts the contents block right after it.
func WithFrontMatter() Option {
	return func(g *Generator) { g.frontMatter = true }
}

// WithTitle sets the heading written inside the contents block.
// An empty title keeps DefaultTitle.
func WithTitle(title string) Option {
	return func(g *Generator) {
		if title != "" {
			g.title = title
		}
	}
}

// Generator builds and refreshes contents blocks.
// It is immutable after construction and safe for concurrent use.
type Generator struct {
	title        string
	keepExisting bool
	frontMatter  bool
	codeDetector pipeline.CodeBlockDetector // nil = plain line scan
}

// NewGenerator creates a Generator. Without options it removes any previous
// block, scans every line and writes a "# Contents" title.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{title: DefaultTitle}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate removes a previous contents block (unless WithKeepExisting),
// numbers the remaining headings and prepends a fresh block.
func (g *Generator) Generate(ctx context.Context, markdown string) (*Result, error) {
	front, body, err := g.split(ctx, markdown)
	if err != nil {
		return nil, err
	}

	replaced := false
	if !g.keepExisting {
		body, replaced = RemoveBlock(body)
	}

	// The block must start on a line of its own.
	if front != "" && !strings.HasSuffix(front, "\n") {
		front += lineBreakOf(front)
	}

	headings := g.extract(body)
	contents, err := RenderOutline(headings)
	if err != nil {
		return nil, err
	}

	return &Result{
		Document: front + WrapBlock(g.title, contents) + body,
		Contents: contents,
		Headings: headings,
		Replaced: replaced,
	}, nil
}

// Strip removes the contents block and reports whether one was found.
func (g *Generator) Strip(ctx context.Context, markdown string) (string, bool, error) {
	front, body, err := g.split(ctx, markdown)
	if err != nil {
		return "", false, err
	}
	body, removed := RemoveBlock(body)
	return front + body, removed, nil
}

// Check reports whether markdown already carries an up to date contents
// block, i.e. whether Generate would return it unchanged.
func (g *Generator) Check(ctx context.Context, markdown string) (bool, error) {
	result, err := g.Generate(ctx, markdown)
	if err != nil {
		return false, err
	}
	return result.Document == markdown, nil
}

// split validates markdown and separates front matter when enabled.
func (g *Generator) split(ctx context.Context, markdown string) (front, body string, err error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	if !utf8.ValidString(markdown) {
		return "", "", fmt.Errorf("%w: not valid UTF-8", ErrInvalidInput)
	}
	if !g.frontMatter {
		return "", markdown, nil
	}
	return pipeline.SplitFrontMatter(markdown)
}

// extract collects headings from body, honoring code block detection.
func (g *Generator) extract(body string) []Heading {
	var skip map[int]bool
	if g.codeDetector != nil {
		skip = g.codeDetector.CodeLines(body)
	}
	return extractHeadings(pipeline.SplitLines(body), skip)
}

// lineBreakOf returns the line terminator used by text: "\r\n" when it
// contains one, "\n" otherwise.
func lineBreakOf(text string) string {
	if strings.Contains(text, "\r\n") {
		return "\r\n"
	}
	return "\n"
}
