// Package mdcontents generates numbered tables of contents for Markdown
// documents.
//
// # Quick Start
//
// Create a generator and refresh the contents block of a document:
//
//	gen := mdcontents.NewGenerator()
//
//	result, err := gen.Generate(ctx, "# Hello\n\n## World\n")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("README.md", []byte(result.Document), 0644)
//
// The result holds the merged document (result.Document), the rendered
// outline alone (result.Contents) and the headings it was built from.
//
// # Outline Format
//
// Every heading line ("#" to "######" followed by a space) becomes one
// entry, indented by one tab per level and numbered in dot-decimal form:
//
//	<a name="start-of-contents" />
//	# Contents
//		1. Hello
//			1.1. World
//	<a name="end-of-contents" />
//
// The block sits at the top of the document and the rest of the file is left
// untouched. Running Generate again replaces the block in place.
//
// # Building Blocks
//
// The stages are exported for callers that need only part of the pipeline:
//
//  1. ExtractHeadings / ParseHeading: find heading lines
//  2. RenderOutline: number headings and render the outline body
//  3. WrapBlock / RemoveBlock: add or strip the sentinel-delimited block
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen := mdcontents.NewGenerator(
//	    mdcontents.WithSkipCodeBlocks(), // ignore "# ..." inside code fences
//	    mdcontents.WithFrontMatter(),    // keep YAML/TOML front matter first
//	    mdcontents.WithTitle("Table of Contents"),
//	)
package mdcontents
