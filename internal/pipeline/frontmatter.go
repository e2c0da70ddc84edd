package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrFrontMatter indicates a front matter block that could not be parsed.
var ErrFrontMatter = errors.New("invalid front matter")

// frontMatterOpeners are the delimiters adrg/frontmatter recognizes by default.
var frontMatterOpeners = []string{"---", "+++", ";;;"}

// SplitFrontMatter separates a leading front matter block from the body.
// front includes both delimiter lines and is "" when content has none;
// front+body always equals content.
func SplitFrontMatter(content string) (front, body string, err error) {
	if !hasFrontMatterOpener(content) {
		return "", content, nil
	}

	var meta map[string]any
	rest, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}

	// Only trust the split when the remainder is a verbatim suffix.
	if len(rest) >= len(content) || !strings.HasSuffix(content, string(rest)) {
		return "", content, nil
	}

	cut := len(content) - len(rest)
	front, body = content[:cut], content[cut:]

	// Keep the closing delimiter's line break with the front matter.
	if !strings.HasSuffix(front, "\n") {
		switch {
		case strings.HasPrefix(body, "\r\n"):
			front, body = front+"\r\n", body[2:]
		case strings.HasPrefix(body, "\n"):
			front, body = front+"\n", body[1:]
		}
	}
	return front, body, nil
}

func hasFrontMatterOpener(content string) bool {
	for _, opener := range frontMatterOpeners {
		if strings.HasPrefix(content, opener) {
			return true
		}
	}
	return false
}
