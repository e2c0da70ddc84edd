// Package pipeline prepares markdown text for heading extraction.
//
// It covers the parts of extraction that need more than a line scan:
//   - Line splitting with CRLF tolerance
//   - Code block detection via Goldmark, so "# comment" lines inside fenced
//     or indented code are not taken for headings
//   - Front matter splitting via adrg/frontmatter, so YAML comments are not
//     taken for headings and the metadata block stays first in the file
//
// Numbering and contents block handling live in the root mdcontents package.
package pipeline
