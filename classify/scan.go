package classify

import (
	"strings"

	"github.com/GermanMF/table-reader-bank/model"
)

// RegionReader recognizes the text of a merged header region on the page a
// table was located on. Block-mode OCR, as opposed to the single-line mode
// used for data cells.
type RegionReader interface {
	ReadRegion(box model.BBox) string
}

// ScanHeader walks a table's leading merged rows, accumulating their OCR'd
// text, and returns that text together with the index of the first data row.
//
// A merged title row has at most one present cell: the section heading spans
// the full table width, so every other slot in the row is nil. The first row
// with more than one present cell marks where data begins.
func ScanHeader(tbl model.Table, regions RegionReader) (string, int) {
	var header strings.Builder
	dataStart := 0

	for i, row := range tbl.Rows {
		if row.NonNilCells() > 1 {
			break
		}
		for _, cell := range row.Cells {
			if cell != nil {
				header.WriteString(" ")
				header.WriteString(regions.ReadRegion(*cell))
				break
			}
		}
		dataStart = i + 1
	}

	return header.String(), dataStart
}
