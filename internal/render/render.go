// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render rasterizes PDF pages to images for OCR.
package render

import "image"

// Document is an open PDF whose pages can be rendered one at a time.
// Pages are rendered on demand and not retained; the caller owns each
// returned image only until the next render.
type Document interface {
	// PageCount returns the total number of pages.
	PageCount() int

	// Render rasterizes the page at the given zero-based index at the
	// requested resolution in dots per inch.
	Render(index int, dpi int) (image.Image, error)

	// Close releases the underlying document resources.
	Close() error
}

// Opener opens a PDF at the given path. It is injected into the pipeline
// so tests can substitute an in-memory document.
type Opener func(path string) (Document, error)
