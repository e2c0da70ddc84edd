package pipeline

import (
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// CodeBlockDetector finds the source lines that belong to code blocks.
type CodeBlockDetector interface {
	CodeLines(content string) map[int]bool
}

// GoldmarkDetector detects fenced and indented code blocks with Goldmark's
// CommonMark parser. It holds no per-document state and is safe for
// concurrent use.
type GoldmarkDetector struct {
	parser parser.Parser
}

// NewGoldmarkDetector creates a detector backed by the default Goldmark parser.
func NewGoldmarkDetector() *GoldmarkDetector {
	return &GoldmarkDetector{parser: goldmark.DefaultParser()}
}

// Compile-time interface implementation check.
var _ CodeBlockDetector = (*GoldmarkDetector)(nil)

// CodeLines returns the zero-based indexes, as produced by SplitLines, of
// every line inside a fenced or indented code block. Fence lines themselves
// are not included.
func (d *GoldmarkDetector) CodeLines(content string) map[int]bool {
	src := []byte(content)
	doc := d.parser.Parse(text.NewReader(src))
	starts := lineStarts(src)

	lines := make(map[int]bool)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			segments := n.Lines()
			for i := 0; i < segments.Len(); i++ {
				lines[lineOf(starts, segments.At(i).Start)] = true
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return lines
}

// lineOf maps a byte offset to its zero-based line index.
func lineOf(starts []int, offset int) int {
	return sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
}
