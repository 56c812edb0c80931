// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ocr abstracts optical character recognition engines. The
// production engine wraps Tesseract via gosseract; tests inject fakes.
package ocr

import "context"

// ImageFormat identifies the content type of an OCR input image.
type ImageFormat string

const (
	ImageFormatPNG  ImageFormat = "image/png"
	ImageFormatJPEG ImageFormat = "image/jpeg"
)

// Input is a single encoded image submitted for recognition.
type Input struct {
	// ID is a caller-provided identifier echoed back in the Result.
	ID string

	// Image is the encoded image payload in the format given by Format.
	Image []byte

	// Format declares the image content type.
	Format ImageFormat

	// PageIndex is the zero-based source page the image came from.
	PageIndex int

	// DPI is the effective dots-per-inch of the image; zero means
	// unknown. Tesseract uses it for layout heuristics.
	DPI int

	// Languages lists trained-data hints (e.g. "eng", "deu"). Empty
	// means the engine default.
	Languages []string
}

// Result holds recognition output for one input.
type Result struct {
	// InputID mirrors the Input.ID that produced this result.
	InputID string

	// Text is the recognized text, trimmed of surrounding whitespace.
	// Empty when the engine found nothing.
	Text string
}

// Engine is the OCR provider contract: one image in, one result out.
// Recognition is synchronous and blocking.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (Result, error)
}

// Pinger is implemented by engines that can verify up front that their
// backing binary or trained data is usable, so a run can fail before any
// page is processed rather than partway through.
type Pinger interface {
	Ping(ctx context.Context) error
}
