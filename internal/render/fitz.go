// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// fitzDocument implements Document on top of go-fitz (MuPDF).
type fitzDocument struct {
	doc *fitz.Document
}

// Open opens the PDF at path with MuPDF. It is the production Opener.
func Open(path string) (Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &fitzDocument{doc: doc}, nil
}

func (d *fitzDocument) PageCount() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) Render(index int, dpi int) (image.Image, error) {
	img, err := d.doc.ImageDPI(index, float64(dpi))
	if err != nil {
		return nil, fmt.Errorf("rendering page %d at %d DPI: %w", index+1, dpi, err)
	}
	return img, nil
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
