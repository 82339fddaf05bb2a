package ocr

import "image"

// SignConfig holds the pixel heuristics used to tell "+" from "-" in the
// narrow sign column of regular movement tables. The glyphs there are too
// small for reliable text recognition, so the decision is made directly on
// the bitmap.
type SignConfig struct {
	// MinSizePx is the minimum crop width and height for a usable sample.
	MinSizePx int
	// InnerMargin is the fraction trimmed from each edge before counting,
	// which drops the cell's ruled border.
	InnerMargin float64
	// MinInnerPx is the minimum inner-region width and height after
	// trimming.
	MinInnerPx int
	// DarkThreshold is the grayscale value below which a pixel counts as
	// ink.
	DarkThreshold uint8
	// MinDarkPixels is the ink count below which the cell reads as empty,
	// meaning a charge ("+").
	MinDarkPixels int
	// CoverageCutoff separates the two glyphs by the fraction of inner
	// rows holding ink: a minus stroke spans few rows, a plus spans many.
	CoverageCutoff float64
}

func defaultSignConfig() SignConfig {
	return SignConfig{
		MinSizePx:      6,
		InnerMargin:    0.20,
		MinInnerPx:     3,
		DarkThreshold:  100,
		MinDarkPixels:  2,
		CoverageCutoff: 0.40,
	}
}

// DetectSign classifies a sign-column crop as "+" or "-". Samples too small
// to judge read as "+", the charge default.
func DetectSign(img image.Image, cfg SignConfig) string {
	if img == nil {
		return "+"
	}
	g := toGray(img)
	w, h := g.Bounds().Dx(), g.Bounds().Dy()
	if w < cfg.MinSizePx || h < cfg.MinSizePx {
		return "+"
	}

	mx := int(float64(w) * cfg.InnerMargin)
	my := int(float64(h) * cfg.InnerMargin)
	iw, ih := w-2*mx, h-2*my
	if iw < cfg.MinInnerPx || ih < cfg.MinInnerPx {
		return "+"
	}

	dark := 0
	rows := 0
	for y := my; y < my+ih; y++ {
		rowHasInk := false
		for x := mx; x < mx+iw; x++ {
			if g.Pix[y*g.Stride+x] < cfg.DarkThreshold {
				dark++
				rowHasInk = true
			}
		}
		if rowHasInk {
			rows++
		}
	}

	if dark < cfg.MinDarkPixels {
		return "+"
	}
	coverage := float64(rows) / float64(ih)
	if coverage < cfg.CoverageCutoff {
		return "-"
	}
	return "+"
}
