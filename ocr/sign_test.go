package ocr

import (
	"image"
	"image/color"
	"testing"
)

func blankCell(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

// drawHStroke inks a horizontal bar spanning the inner width of the cell.
func drawHStroke(img *image.Gray, y0, y1 int) {
	b := img.Bounds()
	for y := y0; y < y1; y++ {
		for x := b.Dx() / 4; x < 3*b.Dx()/4; x++ {
			img.SetGray(x, y, color.Gray{Y: 0})
		}
	}
}

// drawVStroke inks a vertical bar spanning the inner height of the cell.
func drawVStroke(img *image.Gray, x0, x1 int) {
	b := img.Bounds()
	for x := x0; x < x1; x++ {
		for y := b.Dy() / 4; y < 3*b.Dy()/4; y++ {
			img.SetGray(x, y, color.Gray{Y: 0})
		}
	}
}

func TestDetectSignEmptyCellIsCharge(t *testing.T) {
	got := DetectSign(blankCell(30, 30), defaultSignConfig())
	if got != "+" {
		t.Errorf("empty cell: got %q, want %q", got, "+")
	}
}

func TestDetectSignMinusStroke(t *testing.T) {
	img := blankCell(30, 30)
	drawHStroke(img, 14, 16)
	got := DetectSign(img, defaultSignConfig())
	if got != "-" {
		t.Errorf("horizontal stroke: got %q, want %q", got, "-")
	}
}

func TestDetectSignPlusGlyph(t *testing.T) {
	img := blankCell(30, 30)
	drawHStroke(img, 14, 16)
	drawVStroke(img, 14, 16)
	got := DetectSign(img, defaultSignConfig())
	if got != "+" {
		t.Errorf("cross glyph: got %q, want %q", got, "+")
	}
}

func TestDetectSignTooSmallDefaultsToCharge(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"narrow", 4, 30},
		{"short", 30, 4},
		{"tiny", 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectSign(blankCell(tt.w, tt.h), defaultSignConfig()); got != "+" {
				t.Errorf("got %q, want %q", got, "+")
			}
		})
	}
}

func TestDetectSignNilImageDefaultsToCharge(t *testing.T) {
	if got := DetectSign(nil, defaultSignConfig()); got != "+" {
		t.Errorf("got %q, want %q", got, "+")
	}
}

func TestDetectSignBorderNoiseIgnored(t *testing.T) {
	// Ink only along the ruled border must not flip an otherwise empty
	// cell to a credit.
	img := blankCell(30, 30)
	for x := 0; x < 30; x++ {
		img.SetGray(x, 0, color.Gray{Y: 0})
		img.SetGray(x, 29, color.Gray{Y: 0})
	}
	got := DetectSign(img, defaultSignConfig())
	if got != "+" {
		t.Errorf("border-only ink: got %q, want %q", got, "+")
	}
}
