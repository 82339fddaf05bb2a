package ocr

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// prepare upscales, grays, and sharpens a cell crop for recognition.
// Crops below minHeight pixels are enlarged by an integer factor (at least
// 2x) with Catmull-Rom interpolation; small statement cells OCR poorly at
// their native scan size.
func prepare(img image.Image, minHeight int) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if h > 0 && h < minHeight {
		factor := (minHeight + h - 1) / h
		if factor < 2 {
			factor = 2
		}
		dst := image.NewRGBA(image.Rect(0, 0, w*factor, h*factor))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
		img = dst
	}

	return sharpen(toGray(img))
}

// toGray converts any image to 8-bit grayscale using the standard
// luminance weights.
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(out, out.Bounds(), img, b.Min, xdraw.Src)
	return out
}

// sharpen applies a 3x3 sharpening convolution. Border pixels keep their
// original value.
func sharpen(img *image.Gray) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 3 || h < 3 {
		return img
	}

	// Kernel weights with divisor 16: strong center, negative ring.
	out := image.NewGray(image.Rect(0, 0, w, h))
	copy(out.Pix, img.Pix)

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			sum := 32 * int(img.Pix[y*img.Stride+x])
			sum -= 2 * int(img.Pix[(y-1)*img.Stride+x-1])
			sum -= 2 * int(img.Pix[(y-1)*img.Stride+x])
			sum -= 2 * int(img.Pix[(y-1)*img.Stride+x+1])
			sum -= 2 * int(img.Pix[y*img.Stride+x-1])
			sum -= 2 * int(img.Pix[y*img.Stride+x+1])
			sum -= 2 * int(img.Pix[(y+1)*img.Stride+x-1])
			sum -= 2 * int(img.Pix[(y+1)*img.Stride+x])
			sum -= 2 * int(img.Pix[(y+1)*img.Stride+x+1])
			v := sum / 16
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			out.Pix[y*out.Stride+x] = uint8(v)
		}
	}
	return out
}
