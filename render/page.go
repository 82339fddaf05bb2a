package render

import (
	"image"
	"image/draw"

	"github.com/GermanMF/table-reader-bank/model"
)

// PageImage is one page rasterized at the renderer's fixed resolution.
// Scale maps PDF point coordinates to pixel coordinates and is shared by
// all downstream cell cropping. The bitmap is read-only after creation.
type PageImage struct {
	Img    image.Image
	Width  int
	Height int
	Scale  float64
}

// NewPageImage wraps an existing bitmap with its point-to-pixel scale.
// Used by the renderer and by tests that synthesize pages directly.
func NewPageImage(img image.Image, scale float64) *PageImage {
	b := img.Bounds()
	return &PageImage{
		Img:    img,
		Width:  b.Dx(),
		Height: b.Dy(),
		Scale:  scale,
	}
}

// Crop cuts a cell region out of the page bitmap. The box is given in point
// units, scaled to pixels, expanded by padPx on all sides, and clamped to
// the bitmap bounds. A degenerate region yields nil.
func (p *PageImage) Crop(box model.BBox, padPx int) image.Image {
	x0 := clamp(int(box.X0*p.Scale)-padPx, 0, p.Width)
	y0 := clamp(int(box.Top*p.Scale)-padPx, 0, p.Height)
	x1 := clamp(int(box.X1*p.Scale)+padPx, 0, p.Width)
	y1 := clamp(int(box.Bottom*p.Scale)+padPx, 0, p.Height)

	if x1 <= x0 || y1 <= y0 {
		return nil
	}

	rect := image.Rect(0, 0, x1-x0, y1-y0)
	src := p.Img.Bounds().Min
	switch p.Img.(type) {
	case *image.Gray:
		out := image.NewGray(rect)
		draw.Draw(out, rect, p.Img, image.Pt(src.X+x0, src.Y+y0), draw.Src)
		return out
	default:
		out := image.NewRGBA(rect)
		draw.Draw(out, rect, p.Img, image.Pt(src.X+x0, src.Y+y0), draw.Src)
		return out
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
