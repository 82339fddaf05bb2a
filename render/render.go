// Package render rasterizes statement pages to fixed-resolution bitmaps and
// exposes the ruled-line geometry drawn on each page.
//
// The statements this package targets are scanned documents: each page's
// visual content is a single embedded image XObject, while the table rules
// are vector strokes in the content stream. RenderPage decodes the scan and
// resamples it to exactly DPI/72 times the page's point dimensions, so the
// point-to-pixel scale reported to downstream cropping is always truthful
// regardless of the resolution the page was scanned at.
package render

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	xdraw "golang.org/x/image/draw"
)

// DefaultDPI is the fixed render resolution.
const DefaultDPI = 300.0

// ErrNoPageImage is returned when a page carries no decodable image XObject.
var ErrNoPageImage = errors.New("page has no decodable image")

// Document is an open statement PDF.
type Document struct {
	ctx   *pdfmodel.Context
	dpi   float64
	sizes []pageSize
}

type pageSize struct {
	width  float64
	height float64
}

// Open reads and validates a PDF at the default resolution.
func Open(path string) (*Document, error) {
	return OpenWithDPI(path, DefaultDPI)
}

// OpenWithDPI reads and validates a PDF with an explicit render resolution.
func OpenWithDPI(path string, dpi float64) (*Document, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("invalid PDF: %w", err)
	}

	d := &Document{ctx: ctx, dpi: dpi, sizes: make([]pageSize, ctx.PageCount)}
	for i := 1; i <= ctx.PageCount; i++ {
		_, _, attrs, err := ctx.PageDict(i, false)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", i, err)
		}
		w, h := 612.0, 792.0 // US Letter fallback
		if attrs != nil && attrs.MediaBox != nil {
			w = attrs.MediaBox.Width()
			h = attrs.MediaBox.Height()
		}
		d.sizes[i-1] = pageSize{width: w, height: h}
	}
	return d, nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// Scale returns the point-to-pixel factor shared by all rendered pages.
func (d *Document) Scale() float64 {
	return d.dpi / 72.0
}

// RenderPage rasterizes a page (1-indexed) at the document's resolution.
// The embedded scan is decoded and resampled to the page's exact target
// pixel geometry with Catmull-Rom interpolation.
func (d *Document) RenderPage(pageNr int) (*PageImage, error) {
	if pageNr < 1 || pageNr > d.ctx.PageCount {
		return nil, fmt.Errorf("page number %d out of range [1, %d]", pageNr, d.ctx.PageCount)
	}

	src, err := d.pageScan(pageNr)
	if err != nil {
		return nil, err
	}

	size := d.sizes[pageNr-1]
	tw := int(math.Round(size.width * d.Scale()))
	th := int(math.Round(size.height * d.Scale()))
	if tw < 1 || th < 1 {
		return nil, fmt.Errorf("page %d has degenerate media box %gx%g", pageNr, size.width, size.height)
	}

	b := src.Bounds()
	if b.Dx() == tw && b.Dy() == th {
		return NewPageImage(src, d.Scale()), nil
	}

	var dst xdraw.Image
	if _, ok := src.(*image.Gray); ok {
		dst = image.NewGray(image.Rect(0, 0, tw, th))
	} else {
		dst = image.NewRGBA(image.Rect(0, 0, tw, th))
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)

	return NewPageImage(dst, d.Scale()), nil
}

// pageScan decodes the largest image XObject on the page.
func (d *Document) pageScan(pageNr int) (image.Image, error) {
	pageDict, _, _, err := d.ctx.PageDict(pageNr, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get page dict: %w", err)
	}

	resources, err := d.derefDict(pageDict["Resources"])
	if err != nil || resources == nil {
		return nil, ErrNoPageImage
	}
	xobjects, err := d.derefDict(resources["XObject"])
	if err != nil || xobjects == nil {
		return nil, ErrNoPageImage
	}

	var best image.Image
	bestArea := 0
	for _, obj := range xobjects {
		sd, _, err := d.ctx.DereferenceStreamDict(obj)
		if err != nil || sd == nil {
			continue
		}
		subtype := sd.Dict.NameEntry("Subtype")
		if subtype == nil || *subtype != "Image" {
			continue
		}
		img, err := decodeImageStream(sd)
		if err != nil {
			continue
		}
		area := img.Bounds().Dx() * img.Bounds().Dy()
		if area > bestArea {
			best, bestArea = img, area
		}
	}

	if best == nil {
		return nil, ErrNoPageImage
	}
	return best, nil
}

// derefDict resolves an object (directly or through an indirect reference)
// to a dictionary. A nil object yields a nil dict without error.
func (d *Document) derefDict(obj types.Object) (types.Dict, error) {
	if obj == nil {
		return nil, nil
	}
	resolved, err := d.ctx.Dereference(obj)
	if err != nil {
		return nil, err
	}
	dict, ok := resolved.(types.Dict)
	if !ok {
		return nil, nil
	}
	return dict, nil
}
