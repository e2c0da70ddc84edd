package mdcontents

import "strings"

// Contents block sentinels. Both markers occupy a line of their own.
const (
	StartMarker = `<a name="start-of-contents" />`
	EndMarker   = `<a name="end-of-contents" />`

	// DefaultTitle is the heading written right after StartMarker.
	DefaultTitle = "Contents"
)

// WrapBlock builds a contents block around a rendered outline body:
// the start marker, a "# title" line, the body, the end marker and one blank
// separator line. An empty title falls back to DefaultTitle.
func WrapBlock(title, body string) string {
	if title == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	b.Grow(len(StartMarker) + len(EndMarker) + len(title) + len(body) + 6)
	b.WriteString(StartMarker)
	b.WriteString("\n# ")
	b.WriteString(title)
	b.WriteByte('\n')
	b.WriteString(body)
	b.WriteString(EndMarker)
	b.WriteString("\n\n")
	return b.String()
}

// RemoveBlock deletes a previously generated contents block: every line from
// the start marker through the end marker, plus the blank separator line
// WrapBlock writes after it. Nothing is removed unless both markers are
// found, each at the start of a line, with the start marker first.
func RemoveBlock(content string) (string, bool) {
	start := indexLine(content, StartMarker, 0)
	if start < 0 {
		return content, false
	}
	end := indexLine(content, EndMarker, start+len(StartMarker))
	if end < 0 {
		return content, false
	}

	rest := content[end+len(EndMarker):]
	rest = trimLineBreak(rest) // end marker line terminator
	rest = trimLineBreak(rest) // blank separator line
	return content[:start] + rest, true
}

// HasBlock reports whether content contains a removable contents block.
func HasBlock(content string) bool {
	_, ok := RemoveBlock(content)
	return ok
}

// indexLine returns the index of the first occurrence of marker at or after
// from that begins a line, or -1.
func indexLine(content, marker string, from int) int {
	for from <= len(content) {
		i := strings.Index(content[from:], marker)
		if i < 0 {
			return -1
		}
		i += from
		if i == 0 || content[i-1] == '\n' {
			return i
		}
		from = i + len(marker)
	}
	return -1
}

// trimLineBreak removes one leading "\n" or "\r\n".
func trimLineBreak(s string) string {
	if strings.HasPrefix(s, "\r\n") {
		return s[2:]
	}
	return strings.TrimPrefix(s, "\n")
}
