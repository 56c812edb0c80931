// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// PageResult holds the extracted text for one page, keyed by its one-based
// page index. Results are accumulated in ascending index order, one per
// source page.
type PageResult struct {
	// Index is the one-based page number within the source document.
	Index int `json:"index" yaml:"index"`

	// Text is the OCR output for the page. Empty when the engine found
	// no text.
	Text string `json:"text" yaml:"text"`
}

// RunRecord describes one completed conversion run as stored in the
// history database.
type RunRecord struct {
	// ID is assigned by the store on insert; zero before recording.
	ID int64 `json:"id" yaml:"id"`

	// InputPath is the source PDF path as given on the command line.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the markdown file the run produced.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Pages is the number of pages processed.
	Pages int `json:"pages" yaml:"pages"`

	// DPI is the render resolution used.
	DPI int `json:"dpi" yaml:"dpi"`

	// PagesPerChunk is the progress granularity used.
	PagesPerChunk int `json:"pages_per_chunk" yaml:"pages_per_chunk"`

	// Languages lists the OCR language hints used, if any.
	Languages []string `json:"languages,omitempty" yaml:"languages,omitempty"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration" yaml:"duration"`

	// CreatedAt is when the run completed, in UTC.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
