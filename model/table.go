package model

// Category identifies the transaction section a table belongs to.
type Category string

const (
	// CategoryMSI marks installment purchase tables ("Meses sin intereses").
	CategoryMSI Category = "msi"
	// CategoryRegular marks regular charge tables ("No a meses").
	CategoryRegular Category = "regular"
	// CategoryUnknown marks a table whose header carries no known section
	// marker. Callers treat it as a continuation candidate.
	CategoryUnknown Category = "unknown"
)

// CardType identifies the cardholder a table belongs to.
type CardType string

const (
	CardTitular   CardType = "titular"
	CardAdicional CardType = "adicional"
)

// Classification is a table's derived (category, card type) pair.
type Classification struct {
	Category Category
	CardType CardType
}

// Row is an ordered, fixed-arity sequence of cell bounding boxes.
// A nil entry is a cell merged into a neighboring cell.
type Row struct {
	Cells []*BBox
}

// NonNilCells returns the number of present (non-merged) cells.
func (r Row) NonNilCells() int {
	n := 0
	for _, c := range r.Cells {
		if c != nil {
			n++
		}
	}
	return n
}

// Table is a located ruled-line table: an ordered sequence of rows
// of cell bounding boxes in page space.
type Table struct {
	BBox BBox
	Rows []Row
}

// RowCount returns the number of rows.
func (t Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the fixed arity of the table's rows.
func (t Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0].Cells)
}
