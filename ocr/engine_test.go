package ocr

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/GermanMF/table-reader-bank/model"
	"github.com/GermanMF/table-reader-bank/render"
)

type fakeRecognizer struct {
	text     string
	err      error
	lang     string
	modes    []PageSegMode
	received [][]byte
}

func (f *fakeRecognizer) RecognizeImage(data []byte) (string, error) {
	f.received = append(f.received, data)
	return f.text, f.err
}

func (f *fakeRecognizer) SetLanguage(lang string) error {
	f.lang = lang
	return nil
}

func (f *fakeRecognizer) SetPageSegMode(mode PageSegMode) error {
	f.modes = append(f.modes, mode)
	return nil
}

func testPage(w, h int) *render.PageImage {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	// 300dpi over 72-point units.
	return render.NewPageImage(img, 300.0/72.0)
}

func TestNewEngineSetsLanguage(t *testing.T) {
	rec := &fakeRecognizer{}
	if _, err := NewEngine(rec, DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	if rec.lang != "spa" {
		t.Errorf("language = %q, want %q", rec.lang, "spa")
	}
}

func TestReadCellUsesSingleLineMode(t *testing.T) {
	rec := &fakeRecognizer{text: "  17-Ene-2026  "}
	eng, err := NewEngine(rec, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	pr := eng.Page(testPage(2000, 2000))

	got := pr.ReadCell(model.BBox{X0: 50, Top: 50, X1: 150, Bottom: 70})
	if got != "17-Ene-2026" {
		t.Errorf("got %q, want trimmed text", got)
	}
	if len(rec.modes) != 1 || rec.modes[0] != PSM_SINGLE_LINE {
		t.Errorf("modes = %v, want [PSM_SINGLE_LINE]", rec.modes)
	}
	if len(rec.received) != 1 || len(rec.received[0]) == 0 {
		t.Error("recognizer should receive encoded image bytes")
	}
}

func TestReadRegionUsesBlockMode(t *testing.T) {
	rec := &fakeRecognizer{text: "CARGOS NO A MESES"}
	eng, err := NewEngine(rec, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	pr := eng.Page(testPage(2000, 2000))

	got := pr.ReadRegion(model.BBox{X0: 40, Top: 100, X1: 400, Bottom: 140})
	if got != "CARGOS NO A MESES" {
		t.Errorf("got %q", got)
	}
	if len(rec.modes) != 1 || rec.modes[0] != PSM_SINGLE_BLOCK {
		t.Errorf("modes = %v, want [PSM_SINGLE_BLOCK]", rec.modes)
	}
}

func TestReadDegradesToEmptyOnError(t *testing.T) {
	rec := &fakeRecognizer{err: errors.New("tesseract failed")}
	eng, err := NewEngine(rec, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	pr := eng.Page(testPage(2000, 2000))

	if got := pr.ReadCell(model.BBox{X0: 10, Top: 10, X1: 90, Bottom: 30}); got != "" {
		t.Errorf("got %q, want empty on recognizer error", got)
	}
}

func TestReadDegradesToEmptyOnDegenerateBox(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellPadding = 0
	rec := &fakeRecognizer{text: "should not be called"}
	eng, err := NewEngine(rec, cfg)
	if err != nil {
		t.Fatal(err)
	}
	pr := eng.Page(testPage(500, 500))

	// Entirely off the bitmap.
	if got := pr.ReadCell(model.BBox{X0: 900, Top: 900, X1: 950, Bottom: 950}); got != "" {
		t.Errorf("got %q, want empty for out-of-bounds box", got)
	}
	if len(rec.received) != 0 {
		t.Error("recognizer should not run on a nil crop")
	}
}

func TestReadSignOnSyntheticPage(t *testing.T) {
	// Page with one inked horizontal stroke inside the sign cell.
	img := image.NewGray(image.Rect(0, 0, 400, 400))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	for x := 110; x < 140; x++ {
		img.SetGray(x, 125, color.Gray{Y: 0})
		img.SetGray(x, 126, color.Gray{Y: 0})
	}
	pg := render.NewPageImage(img, 1.0)

	rec := &fakeRecognizer{}
	eng, err := NewEngine(rec, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	pr := eng.Page(pg)

	if got := pr.ReadSign(model.BBox{X0: 100, Top: 100, X1: 150, Bottom: 150}); got != "-" {
		t.Errorf("stroke cell sign = %q, want %q", got, "-")
	}
	if got := pr.ReadSign(model.BBox{X0: 200, Top: 200, X1: 250, Bottom: 250}); got != "+" {
		t.Errorf("blank cell sign = %q, want %q", got, "+")
	}
	// Degenerate crops keep the charge default rather than dropping the row.
	if got := pr.ReadSign(model.BBox{X0: 900, Top: 900, X1: 950, Bottom: 950}); got != "+" {
		t.Errorf("out-of-bounds sign = %q, want %q", got, "+")
	}
	if got := pr.ReadSign(model.BBox{X0: 100, Top: 100, X1: 103, Bottom: 150}); got != "+" {
		t.Errorf("sliver sign = %q, want %q", got, "+")
	}
	if len(rec.received) != 0 {
		t.Error("sign detection must not invoke the recognizer")
	}
}
