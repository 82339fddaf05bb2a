package render

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// decodeImageStream turns an image XObject stream into a Go image.
// JPEG-compressed scans (DCTDecode) are handed to image/jpeg; everything
// else is filter-decoded and wrapped according to its color space and
// bit depth.
func decodeImageStream(sd *types.StreamDict) (image.Image, error) {
	if hasFilter(sd, "DCTDecode") {
		img, err := jpeg.Decode(bytes.NewReader(sd.Raw))
		if err != nil {
			return nil, fmt.Errorf("failed to decode JPEG scan: %w", err)
		}
		return img, nil
	}

	if err := sd.Decode(); err != nil {
		return nil, fmt.Errorf("failed to decode image stream: %w", err)
	}

	width := intEntry(sd.Dict, "Width")
	height := intEntry(sd.Dict, "Height")
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image missing Width or Height")
	}

	bpc := intEntry(sd.Dict, "BitsPerComponent")
	if bpc == 0 {
		bpc = 8
	}

	colorSpace := "DeviceGray"
	if cs := sd.Dict.NameEntry("ColorSpace"); cs != nil {
		colorSpace = *cs
	}

	switch colorSpace {
	case "DeviceRGB", "CalRGB":
		return toRGBImage(sd.Content, width, height)
	default:
		// DeviceGray, CalGray, and unrecognized spaces fall back to gray.
		return toGrayImage(sd.Content, width, height, bpc)
	}
}

func hasFilter(sd *types.StreamDict, name string) bool {
	for _, f := range sd.FilterPipeline {
		if f.Name == name {
			return true
		}
	}
	return false
}

func intEntry(d types.Dict, key string) int {
	if v := d.IntEntry(key); v != nil {
		return *v
	}
	return 0
}

// toGrayImage converts decoded grayscale pixel data to an image.Gray.
func toGrayImage(data []byte, width, height, bpc int) (*image.Gray, error) {
	img := image.NewGray(image.Rect(0, 0, width, height))

	switch bpc {
	case 8:
		expected := width * height
		if len(data) < expected {
			return nil, fmt.Errorf("insufficient data: got %d, expected %d", len(data), expected)
		}
		copy(img.Pix, data[:expected])
		return img, nil
	case 1:
		return toBilevelGray(data, width, height)
	default:
		return nil, fmt.Errorf("unsupported bits per component: %d", bpc)
	}
}

// toBilevelGray converts 1-bit bi-level data to 8-bit grayscale.
func toBilevelGray(data []byte, width, height int) (*image.Gray, error) {
	img := image.NewGray(image.Rect(0, 0, width, height))

	bytesPerRow := (width + 7) / 8
	expected := bytesPerRow * height
	if len(data) < expected {
		return nil, fmt.Errorf("insufficient data for 1-bit image: got %d, expected %d", len(data), expected)
	}

	for y := 0; y < height; y++ {
		rowStart := y * bytesPerRow
		for x := 0; x < width; x++ {
			byteIdx := rowStart + x/8
			bitIdx := 7 - (x % 8) // MSB first
			bit := (data[byteIdx] >> bitIdx) & 1
			// In PDF bi-level images 0 is black.
			if bit == 0 {
				img.Pix[y*img.Stride+x] = 0
			} else {
				img.Pix[y*img.Stride+x] = 255
			}
		}
	}
	return img, nil
}

// toRGBImage converts decoded RGB pixel data to an image.RGBA.
func toRGBImage(data []byte, width, height int) (*image.RGBA, error) {
	expected := width * height * 3
	if len(data) < expected {
		return nil, fmt.Errorf("insufficient data: got %d, expected %d", len(data), expected)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		img.Pix[i*4+0] = data[i*3+0]
		img.Pix[i*4+1] = data[i*3+1]
		img.Pix[i*4+2] = data[i*3+2]
		img.Pix[i*4+3] = 255
	}
	return img, nil
}
