// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared configuration and record types used across
// pdfrip stages.
package types

// RipConfig holds settings for a conversion run.
type RipConfig struct {
	// OutputDir is the directory used to derive the default output path
	// when no explicit output file is given (default "output").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// DPI is the resolution at which pages are rasterized before OCR
	// (default 300, higher = better quality but slower).
	DPI int `json:"dpi" yaml:"dpi"`

	// PagesPerChunk is the number of pages processed between progress
	// updates (default 10).
	PagesPerChunk int `json:"pages_per_chunk" yaml:"pages_per_chunk"`

	// Languages lists Tesseract language hints (e.g. "eng", "deu").
	// Empty means the engine default.
	Languages []string `json:"languages,omitempty" yaml:"languages,omitempty"`
}

// HistoryConfig holds settings for the run-history store.
type HistoryConfig struct {
	// Dir is the directory holding the history database (default ".pdfrip").
	Dir string `json:"dir" yaml:"dir"`

	// Enabled controls whether successful runs are recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Rip     RipConfig     `json:"rip" yaml:"rip"`
	History HistoryConfig `json:"history" yaml:"history"`
}
