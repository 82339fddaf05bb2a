// Package assemble turns located table geometry into classified rows of
// recognized text, carrying classification state across page breaks so a
// table split by pagination keeps its section and cardholder.
package assemble

import (
	"github.com/GermanMF/table-reader-bank/classify"
	"github.com/GermanMF/table-reader-bank/model"
)

// CellReader recognizes text and signs for cell boxes on one page.
type CellReader interface {
	ReadCell(box model.BBox) string
	ReadRegion(box model.BBox) string
	ReadSign(box model.BBox) string
}

// State is the classification carried between tables. A table whose header
// names no section inherits it; tables are processed in page order, so the
// state always refers to the most recent table that produced rows.
type State struct {
	Category model.Category
	CardType model.CardType
}

// Valid reports whether the state can be inherited.
func (s State) Valid() bool {
	return s.Category == model.CategoryMSI || s.Category == model.CategoryRegular
}

// TableResult is one processed table: its classification and the cleaned-up
// field rows, header, total, and empty rows already removed.
type TableResult struct {
	Classification model.Classification
	Rows           [][]string

	// Continued is set when the classification was inherited rather than
	// read from the table's own header.
	Continued bool
}

// Assembler drives per-table row extraction.
type Assembler struct {
	// SignColumnMaxWidth is the cell width, in points, below which a cell
	// in a regular table is read as a +/- sign instead of text.
	SignColumnMaxWidth float64

	// MinPresentCells is the fewest non-merged cells a data row needs.
	// Sparser rows are ruling noise, not transactions.
	MinPresentCells int
}

// NewAssembler returns an assembler with statement defaults.
func NewAssembler() *Assembler {
	return &Assembler{
		SignColumnMaxWidth: 20,
		MinPresentCells:    3,
	}
}

// ProcessTable classifies one table and extracts its data rows. The
// returned state reflects this table when it produced rows, and is passed
// through unchanged otherwise, so a heading followed by an empty grid does
// not hijack the next continuation.
func (a *Assembler) ProcessTable(reader CellReader, tbl model.Table, st State) (TableResult, State) {
	header, dataStart := classify.ScanHeader(tbl, reader)
	cls := classify.Classify(header)

	var res TableResult
	if cls.Category == model.CategoryUnknown {
		if !st.Valid() {
			// A headerless table with nothing to continue is page
			// furniture.
			return res, st
		}
		cls = model.Classification{Category: st.Category, CardType: st.CardType}
		dataStart = 0
		res.Continued = true
	}
	res.Classification = cls

	want := model.ColumnCount(cls.Category)
	for _, row := range tbl.Rows[dataStart:] {
		if row.NonNilCells() < a.MinPresentCells {
			continue
		}

		fields := a.readRow(reader, row, cls.Category)
		if classify.IsHeaderRow(fields) || classify.IsTotalRow(fields) || classify.IsEmptyRow(fields) {
			continue
		}
		res.Rows = append(res.Rows, normalize(fields, want))
	}

	if len(res.Rows) > 0 {
		st = State{Category: cls.Category, CardType: cls.CardType}
	}
	return res, st
}

// readRow recognizes one data row slot by slot. Merged slots yield empty
// fields so column positions stay stable.
func (a *Assembler) readRow(reader CellReader, row model.Row, cat model.Category) []string {
	fields := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		if cell == nil {
			continue
		}
		if cat == model.CategoryRegular && cell.Width() < a.SignColumnMaxWidth {
			fields[i] = reader.ReadSign(*cell)
		} else {
			fields[i] = reader.ReadCell(*cell)
		}
	}
	return fields
}

// normalize pads or truncates fields to the category's column count.
func normalize(fields []string, want int) []string {
	out := make([]string, want)
	copy(out, fields)
	return out
}
