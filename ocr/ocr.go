//go:build ocr

// Package ocr recognizes the text of statement table cells.
//
// This package wraps the Tesseract OCR engine via gosseract and requires
// Tesseract plus the Spanish language model to be installed. On macOS:
//
//	brew install tesseract tesseract-lang
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-spa
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// PageSegMode selects how Tesseract segments the input image.
type PageSegMode = gosseract.PageSegMode

// Page segmentation modes used by the extraction pipeline.
const (
	PSM_SINGLE_BLOCK = gosseract.PSM_SINGLE_BLOCK // header regions
	PSM_SINGLE_LINE  = gosseract.PSM_SINGLE_LINE  // data cells
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// NewClient creates a new OCR client. The client should be closed when no
// longer needed to release resources.
func NewClient() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on encoded image data (PNG, TIFF, JPEG).
// Returns the recognized text with surrounding whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// SetLanguage sets the language(s) for recognition. Multiple languages can
// be specified as a "+" separated string (e.g., "spa+eng").
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}
