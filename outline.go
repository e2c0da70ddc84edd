package mdcontents

import (
	"fmt"
	"strconv"
	"strings"
)

// indentUnit is written once per heading level in front of each entry.
const indentUnit = "\t"

// counterTable holds per-level counts for one numbering pass.
// counters[0] is unused so that counters[level] reads naturally.
type counterTable [MaxLevel + 1]int

// enter updates the table for a heading at level after a heading at prev.
// Entering deeper levels opens them fresh: skipped intermediate levels count
// as one implicit heading, and level itself restarts from zero.
// Going back to the same or a shallower level leaves deeper counters stale;
// they are reset the next time they are entered.
func (c *counterTable) enter(level, prev int) {
	if level > prev {
		for l := prev + 1; l < level; l++ {
			c[l] = 1
		}
		c[level] = 0
	}
	c[level]++
}

// number renders the dot-decimal outline number for level, e.g. "2.1.3.".
func (c *counterTable) number(level int) string {
	var b strings.Builder
	for l := MinLevel; l <= level; l++ {
		b.WriteString(strconv.Itoa(c[l]))
		b.WriteByte('.')
	}
	return b.String()
}

// RenderOutline numbers headings and renders the contents body: one line per
// heading, indented by one tab per level, e.g. "\t\t1.2. Title\n".
// It returns "" for no headings, and an error wrapping ErrInvalidLevel if a
// heading level is outside 1..6.
func RenderOutline(headings []Heading) (string, error) {
	var (
		counters counterTable
		prev     int
		buf      strings.Builder
	)

	for i, h := range headings {
		if h.Level < MinLevel || h.Level > MaxLevel {
			return "", fmt.Errorf("%w: %d at heading %d (%q)", ErrInvalidLevel, h.Level, i, h.Text)
		}

		counters.enter(h.Level, prev)
		prev = h.Level

		buf.WriteString(strings.Repeat(indentUnit, h.Level))
		buf.WriteString(counters.number(h.Level))
		buf.WriteByte(' ')
		buf.WriteString(h.Text)
		buf.WriteByte('\n')
	}

	return buf.String(), nil
}
