package mdcontents

import (
	"unicode"
	"unicode/utf8"

	"github.com/alnah/go-mdcontents/internal/pipeline"
)

// Heading levels supported by the extractor and the numberer.
const (
	MinLevel = 1
	MaxLevel = 6
)

// headingMarker prefixes every heading line; its repeat count is the level.
const headingMarker = '#'

// Heading is one heading line of a document, in document order.
type Heading struct {
	Level int    // 1-6, number of leading '#'
	Text  string // rest of the line after the '#' run and one whitespace char
}

// ParseHeading classifies a single line. It reports a heading when the line
// starts with one to six '#' followed immediately by one whitespace
// character (Unicode White_Space, so a no-break space counts). Lines with
// seven or more leading '#' are not headings.
func ParseHeading(line string) (Heading, bool) {
	level := 0
	for level < len(line) && line[level] == headingMarker {
		level++
	}
	if level < MinLevel || level > MaxLevel || level == len(line) {
		return Heading{}, false
	}
	r, size := utf8.DecodeRuneInString(line[level:])
	if !isSeparator(r) {
		return Heading{}, false
	}
	return Heading{Level: level, Text: line[level+size:]}, true
}

// isSeparator reports whether r may separate the '#' run from the text.
// Line breaks never reach it: lines are split beforehand.
func isSeparator(r rune) bool {
	return r != utf8.RuneError && unicode.IsSpace(r)
}

// ExtractHeadings returns every heading line of content in document order.
// It does not special-case a previously generated contents block: callers
// strip it first (see RemoveBlock).
func ExtractHeadings(content string) []Heading {
	return extractHeadings(pipeline.SplitLines(content), nil)
}

// extractHeadings scans lines, skipping the indexes for which skip is true.
func extractHeadings(lines []string, skip map[int]bool) []Heading {
	var headings []Heading
	for i, line := range lines {
		if line == "" || skip[i] {
			continue
		}
		if h, ok := ParseHeading(line); ok {
			headings = append(headings, h)
		}
	}
	return headings
}
