// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rip

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdfrip/pkg/types"
)

// Document is the assembled output: a title derived from the input
// filename and one PageResult per source page in ascending index order.
type Document struct {
	Title string
	Pages []types.PageResult
}

// Markdown serializes the document:
//
//	# <title>
//
//	Pages: <N>
//
//	## Page 1
//
//	<text>
//
// Every page contributes a heading, including pages whose OCR text is
// empty. Page text is emitted verbatim as returned by the engine.
func (d Document) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\nPages: %d\n", d.Title, len(d.Pages))
	for _, p := range d.Pages {
		fmt.Fprintf(&b, "\n## Page %d\n", p.Index)
		if p.Text != "" {
			b.WriteString("\n")
			b.WriteString(p.Text)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Title derives the document title from the input path: the base
// filename without its extension.
func Title(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ResolveOutputPath returns output unchanged when set, otherwise the
// default path outputDir/<input-basename>.md.
func ResolveOutputPath(inputPath, output, outputDir string) string {
	if output != "" {
		return output
	}
	return filepath.Join(outputDir, Title(inputPath)+".md")
}
