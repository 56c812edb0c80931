// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rip

import "errors"

// Error classes for a conversion run. All are fatal: a run either writes
// the complete output file or writes nothing. Callers classify with
// errors.Is.
var (
	// ErrFileAccess indicates the input PDF is missing or unreadable, or
	// the output path cannot be created or written.
	ErrFileAccess = errors.New("file access error")

	// ErrDocumentParse indicates the input could not be opened as a PDF
	// or contains no pages.
	ErrDocumentParse = errors.New("document parse error")

	// ErrEngineUnavailable indicates the OCR engine is missing or
	// misconfigured; detected before any page is processed.
	ErrEngineUnavailable = errors.New("ocr engine unavailable")

	// ErrPageProcessing indicates a render or recognition failure on a
	// specific page. The run is aborted; no output is written.
	ErrPageProcessing = errors.New("page processing error")
)
