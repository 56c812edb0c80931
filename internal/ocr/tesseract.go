// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine implements Engine using the gosseract client.
type TesseractEngine struct {
	clientFactory func() *gosseract.Client
}

// NewTesseractEngine constructs a Tesseract-backed OCR engine.
func NewTesseractEngine() *TesseractEngine {
	return &TesseractEngine{clientFactory: gosseract.NewClient}
}

func (e *TesseractEngine) Name() string { return "tesseract" }

// Ping verifies the Tesseract installation by listing its available
// trained languages. A failure here means the engine binary or its data
// files are missing or misconfigured.
func (e *TesseractEngine) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	langs, err := gosseract.GetAvailableLanguages()
	if err != nil {
		return fmt.Errorf("listing tesseract languages: %w", err)
	}
	if len(langs) == 0 {
		return fmt.Errorf("tesseract reports no trained language data")
	}
	return nil
}

// Recognize performs OCR on a single image input. Each call uses a fresh
// client so per-input settings do not leak between pages.
func (e *TesseractEngine) Recognize(ctx context.Context, in Input) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(in.Image); err != nil {
		return Result{}, fmt.Errorf("set image: %w", err)
	}
	if len(in.Languages) > 0 {
		if err := c.SetLanguage(in.Languages...); err != nil {
			return Result{}, fmt.Errorf("set languages: %w", err)
		}
	}
	if in.DPI > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(in.DPI)); err != nil {
			return Result{}, fmt.Errorf("set dpi: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return Result{}, fmt.Errorf("recognize text: %w", err)
	}

	return Result{
		InputID: in.ID,
		Text:    strings.TrimSpace(text),
	}, nil
}
