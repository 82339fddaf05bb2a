package tablereader

import (
	"github.com/GermanMF/table-reader-bank/assemble"
	"github.com/GermanMF/table-reader-bank/model"
	"github.com/GermanMF/table-reader-bank/ocr"
	"github.com/GermanMF/table-reader-bank/render"
	"github.com/GermanMF/table-reader-bank/tables"
)

// Renderer is the page source the extraction pipeline consumes. It is
// satisfied by *render.Document; tests substitute synthetic pages.
type Renderer interface {
	PageCount() int
	Scale() float64
	RenderPage(pageNr int) (*render.PageImage, error)
	PageLines(pageNr int) ([]model.Line, error)
}

// CellReaderFactory builds the per-page cell reader. The default factory
// wraps a shared Tesseract engine; tests substitute canned readers.
type CellReaderFactory func(pg *render.PageImage) assemble.CellReader

// ExtractOptions holds configuration for statement extraction.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is; nil means all)
	pages []int

	// Rendering and recognition
	dpi float64
	ocr ocr.Config

	// Grid reconstruction
	grid tables.GridOptions

	// Injectable stages (nil means the built-in implementation)
	renderer    Renderer
	cellReaders CellReaderFactory
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages: nil,
		dpi:   render.DefaultDPI,
		ocr:   ocr.DefaultConfig(),
		grid:  tables.DefaultGridOptions(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		dpi:         o.dpi,
		ocr:         o.ocr,
		grid:        o.grid,
		renderer:    o.renderer,
		cellReaders: o.cellReaders,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
