package tablereader

import (
	"errors"
	"fmt"

	"github.com/GermanMF/table-reader-bank/assemble"
	"github.com/GermanMF/table-reader-bank/clean"
	"github.com/GermanMF/table-reader-bank/model"
	"github.com/GermanMF/table-reader-bank/ocr"
	"github.com/GermanMF/table-reader-bank/render"
	"github.com/GermanMF/table-reader-bank/tables"
)

// ErrNoRows is returned by Statement when the document yields no
// transaction rows at all: wrong document type, unreadable scan, or a
// statement with no movements.
var ErrNoRows = errors.New("no transaction rows extracted from document")

// Extractor provides a fluent interface for extracting statement data.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of
// options, so each chain method returns an independent instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		options:  e.options.clone(),
		err:      e.err,
		warnings: append([]Warning(nil), e.warnings...),
	}
}

// Pages restricts extraction to the given 1-indexed pages, in the order
// given. Without it, all pages are processed front to back.
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	for _, p := range pages {
		if p < 1 {
			newExt.err = fmt.Errorf("invalid page number %d: pages are 1-indexed", p)
			return newExt
		}
	}
	newExt.options.pages = append([]int(nil), pages...)
	return newExt
}

// DPI overrides the render resolution. Cell-crop and sign-detection
// thresholds are calibrated for the 300dpi default; changing it is mostly
// useful for experimentation.
func (e *Extractor) DPI(dpi float64) *Extractor {
	newExt := e.clone()
	if dpi <= 0 {
		newExt.err = fmt.Errorf("invalid dpi %g: must be positive", dpi)
		return newExt
	}
	newExt.options.dpi = dpi
	return newExt
}

// Language overrides the Tesseract language model. Statements are Spanish,
// so the default is "spa".
func (e *Extractor) Language(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.ocr.Language = lang
	return newExt
}

// OCRConfig replaces the full recognition configuration.
func (e *Extractor) OCRConfig(cfg ocr.Config) *Extractor {
	newExt := e.clone()
	newExt.options.ocr = cfg
	return newExt
}

// GridOptions replaces the ruled-grid reconstruction options.
func (e *Extractor) GridOptions(opts tables.GridOptions) *Extractor {
	newExt := e.clone()
	newExt.options.grid = opts
	return newExt
}

// WithRenderer substitutes the page source. Used by tests to feed
// synthetic pages.
func (e *Extractor) WithRenderer(r Renderer) *Extractor {
	newExt := e.clone()
	newExt.options.renderer = r
	return newExt
}

// WithCellReaders substitutes the per-page cell reader factory. Used by
// tests to avoid a Tesseract dependency.
func (e *Extractor) WithCellReaders(factory CellReaderFactory) *Extractor {
	newExt := e.clone()
	newExt.options.cellReaders = factory
	return newExt
}

// PageCount opens the document and returns its page count.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	rend, err := e.openRenderer()
	if err != nil {
		return 0, err
	}
	return rend.PageCount(), nil
}

// Statement runs the full extraction pipeline and returns the typed
// datasets together with any per-page warnings. ErrNoRows is returned when
// no page contributed a single transaction row.
func (e *Extractor) Statement() (*model.Statement, []Warning, error) {
	if e.err != nil {
		return nil, e.warnings, e.err
	}

	rend, err := e.openRenderer()
	if err != nil {
		return nil, e.warnings, err
	}

	factory := e.options.cellReaders
	if factory == nil {
		client, err := ocr.NewClient()
		if err != nil {
			return nil, e.warnings, fmt.Errorf("failed to create OCR client: %w", err)
		}
		defer client.Close()

		engine, err := ocr.NewEngine(client, e.options.ocr)
		if err != nil {
			return nil, e.warnings, fmt.Errorf("failed to configure OCR engine: %w", err)
		}
		factory = func(pg *render.PageImage) assemble.CellReader {
			return engine.Page(pg)
		}
	}

	warnings := append([]Warning(nil), e.warnings...)
	locator := &tables.GridLocator{Options: e.options.grid}
	asm := assemble.NewAssembler()

	raw := map[model.Classification][][]string{}
	state := assemble.State{}

	pageNrs, dropped := e.pageList(rend.PageCount())
	warnings = append(warnings, dropped...)

	for _, pageNr := range pageNrs {
		lines, err := rend.PageLines(pageNr)
		if err != nil {
			warnings = append(warnings, Warning{Page: pageNr, Message: fmt.Sprintf("failed to read ruled lines: %v", err)})
			continue
		}

		tbls := locator.LocateTables(lines)
		if len(tbls) == 0 {
			continue
		}

		pg, err := rend.RenderPage(pageNr)
		if err != nil {
			warnings = append(warnings, Warning{Page: pageNr, Message: fmt.Sprintf("failed to render page: %v", err)})
			continue
		}
		reader := factory(pg)

		for _, tbl := range tbls {
			var res assemble.TableResult
			res, state = asm.ProcessTable(reader, *tbl, state)
			if len(res.Rows) > 0 {
				raw[res.Classification] = append(raw[res.Classification], res.Rows...)
			}
		}
	}

	st := &model.Statement{
		MSITitular:       clean.MSIRecords(raw[model.Classification{Category: model.CategoryMSI, CardType: model.CardTitular}]),
		MSIAdicional:     clean.MSIRecords(raw[model.Classification{Category: model.CategoryMSI, CardType: model.CardAdicional}]),
		RegularTitular:   clean.RegularRecords(raw[model.Classification{Category: model.CategoryRegular, CardType: model.CardTitular}], model.CardTitular),
		RegularAdicional: clean.RegularRecords(raw[model.Classification{Category: model.CategoryRegular, CardType: model.CardAdicional}], model.CardAdicional),
	}
	st.Consolidated = clean.Consolidate(st.RegularTitular, st.RegularAdicional)

	if st.RowCount() == 0 {
		return nil, warnings, ErrNoRows
	}
	return st, warnings, nil
}

// openRenderer returns the configured page source, opening the PDF when no
// renderer was injected.
func (e *Extractor) openRenderer() (Renderer, error) {
	if e.options.renderer != nil {
		return e.options.renderer, nil
	}
	if e.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}
	doc, err := render.OpenWithDPI(e.filename, e.options.dpi)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return doc, nil
}

// pageList resolves the configured page selection against the document's
// page count. Pages beyond the document are dropped with a warning.
func (e *Extractor) pageList(pageCount int) ([]int, []Warning) {
	if e.options.pages == nil {
		out := make([]int, pageCount)
		for i := range out {
			out[i] = i + 1
		}
		return out, nil
	}
	out := make([]int, 0, len(e.options.pages))
	var warnings []Warning
	for _, p := range e.options.pages {
		if p >= 1 && p <= pageCount {
			out = append(out, p)
			continue
		}
		warnings = append(warnings, Warning{Page: p, Message: fmt.Sprintf("page %d not in document (1-%d), skipped", p, pageCount)})
	}
	return out, warnings
}
