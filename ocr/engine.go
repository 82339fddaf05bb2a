package ocr

import (
	"bytes"
	"image/png"
	"strings"

	"github.com/GermanMF/table-reader-bank/model"
	"github.com/GermanMF/table-reader-bank/render"
)

// Recognizer is the text-recognition surface the engine drives. The
// gosseract-backed Client satisfies it when the ocr build tag is set.
type Recognizer interface {
	RecognizeImage(data []byte) (string, error)
	SetLanguage(lang string) error
	SetPageSegMode(mode PageSegMode) error
}

// Config tunes cropping and recognition for statement pages scanned at
// 300dpi.
type Config struct {
	// Language is the traineddata model passed to the recognizer.
	Language string
	// CellPadding widens cell crops, in page points.
	CellPadding float64
	// RegionPaddingPx widens header-region crops, in pixels.
	RegionPaddingPx int
	// MinCellHeight is the pixel height below which cell crops are
	// upscaled before recognition.
	MinCellHeight int
	// MinRegionHeight is the same floor for multi-line regions.
	MinRegionHeight int
	// Sign configures the bitmap sign heuristic.
	Sign SignConfig
}

// DefaultConfig returns settings calibrated for Santander statements.
func DefaultConfig() Config {
	return Config{
		Language:        "spa",
		CellPadding:     5,
		RegionPaddingPx: 4,
		MinCellHeight:   50,
		MinRegionHeight: 60,
		Sign:            defaultSignConfig(),
	}
}

// Engine reads text and signs out of rendered page bitmaps.
type Engine struct {
	rec Recognizer
	cfg Config
}

// NewEngine wraps a recognizer. The language is applied immediately;
// page-segmentation mode is switched per read.
func NewEngine(rec Recognizer, cfg Config) (*Engine, error) {
	if err := rec.SetLanguage(cfg.Language); err != nil {
		return nil, err
	}
	return &Engine{rec: rec, cfg: cfg}, nil
}

// Page binds the engine to one rendered page.
func (e *Engine) Page(pg *render.PageImage) *PageReader {
	return &PageReader{engine: e, page: pg}
}

// PageReader recognizes cells, regions, and signs on a single page.
// Recognition failures degrade to empty strings; a bad cell costs one
// field, not the run.
type PageReader struct {
	engine *Engine
	page   *render.PageImage
}

// ReadCell recognizes one table cell as a single line of text.
func (r *PageReader) ReadCell(box model.BBox) string {
	pad := int(r.engine.cfg.CellPadding * r.page.Scale)
	return r.read(box, pad, PSM_SINGLE_LINE, r.engine.cfg.MinCellHeight)
}

// ReadRegion recognizes a multi-line region such as a header block.
func (r *PageReader) ReadRegion(box model.BBox) string {
	return r.read(box, r.engine.cfg.RegionPaddingPx, PSM_SINGLE_BLOCK, r.engine.cfg.MinRegionHeight)
}

// ReadSign classifies a sign-column cell by its pixels alone.
func (r *PageReader) ReadSign(box model.BBox) string {
	img := r.page.Crop(box, 0)
	return DetectSign(img, r.engine.cfg.Sign)
}

func (r *PageReader) read(box model.BBox, padPx int, mode PageSegMode, minHeight int) string {
	img := r.page.Crop(box, padPx)
	if img == nil {
		return ""
	}
	prepared := prepare(img, minHeight)

	var buf bytes.Buffer
	if err := png.Encode(&buf, prepared); err != nil {
		return ""
	}
	if err := r.engine.rec.SetPageSegMode(mode); err != nil {
		return ""
	}
	text, err := r.engine.rec.RecognizeImage(buf.Bytes())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}
