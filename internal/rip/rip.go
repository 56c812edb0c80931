// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rip drives the conversion pipeline: render each PDF page to an
// image, recognize its text with an OCR engine, and write one markdown
// document with per-page sections. A run is all-or-nothing: any failure
// aborts before the output file exists.
package rip

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/pdfrip/internal/ocr"
	"github.com/pdiddy/pdfrip/internal/render"
	"github.com/pdiddy/pdfrip/pkg/types"
)

// Options controls a conversion run.
type Options struct {
	// DPI is the render resolution; must be positive.
	DPI int

	// PagesPerChunk is the number of pages between progress updates;
	// must be positive.
	PagesPerChunk int

	// Languages lists OCR language hints. Empty means the engine default.
	Languages []string
}

// RunInfo summarizes a completed run.
type RunInfo struct {
	InputPath  string
	OutputPath string
	Pages      int
	Duration   time.Duration
}

// Run converts the PDF at inputPath to a markdown file at outputPath.
// Pages are processed strictly in order, one at a time; each page is
// rendered at opts.DPI, recognized by engine, and accumulated as a
// PageResult. Progress lines are written to w every opts.PagesPerChunk
// pages, with a final line when the total is not a chunk multiple. The
// output file is written once, after every page has succeeded; parent
// directories are created as needed.
func Run(ctx context.Context, open render.Opener, engine ocr.Engine, inputPath, outputPath string, opts Options, w io.Writer) (*RunInfo, error) {
	if opts.DPI <= 0 {
		return nil, fmt.Errorf("dpi must be positive, got %d", opts.DPI)
	}
	if opts.PagesPerChunk <= 0 {
		return nil, fmt.Errorf("pages-per-chunk must be positive, got %d", opts.PagesPerChunk)
	}

	start := time.Now()

	if _, err := os.Stat(inputPath); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileAccess, inputPath, err)
	}

	doc, err := open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}
	defer doc.Close()

	total := doc.PageCount()
	if total == 0 {
		return nil, fmt.Errorf("%w: %s has no pages", ErrDocumentParse, inputPath)
	}

	if p, ok := engine.(ocr.Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
		}
	}

	fmt.Fprintf(w, "opened %s: %d pages, %s OCR at %d DPI\n", inputPath, total, engine.Name(), opts.DPI)

	results := make([]types.PageResult, 0, total)
	for i := 0; i < total; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		pageNum := i + 1

		img, err := doc.Render(i, opts.DPI)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrPageProcessing, pageNum, err)
		}

		data, err := encodePNG(img)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrPageProcessing, pageNum, err)
		}

		res, err := engine.Recognize(ctx, ocr.Input{
			ID:        fmt.Sprintf("page-%d", pageNum),
			Image:     data,
			Format:    ocr.ImageFormatPNG,
			PageIndex: i,
			DPI:       opts.DPI,
			Languages: opts.Languages,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrPageProcessing, pageNum, err)
		}

		results = append(results, types.PageResult{Index: pageNum, Text: res.Text})

		if pageNum%opts.PagesPerChunk == 0 {
			fmt.Fprintf(w, "processed %d/%d pages\n", pageNum, total)
		}
	}
	if total%opts.PagesPerChunk != 0 {
		fmt.Fprintf(w, "processed %d/%d pages\n", total, total)
	}

	out := Document{Title: Title(inputPath), Pages: results}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: creating output directory %s: %v", ErrFileAccess, dir, err)
		}
	}
	if err := os.WriteFile(outputPath, []byte(out.Markdown()), 0o644); err != nil {
		return nil, fmt.Errorf("%w: writing %s: %v", ErrFileAccess, outputPath, err)
	}

	return &RunInfo{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Pages:      total,
		Duration:   time.Since(start),
	}, nil
}

// encodePNG serializes a rendered page image for the OCR engine. The
// buffer lives only for the current page.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding page image: %w", err)
	}
	return buf.Bytes(), nil
}
