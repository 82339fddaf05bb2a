package model

// ColumnCount returns the fixed output arity for a category: 7 raw columns
// for installment tables, 5 for regular tables.
func ColumnCount(c Category) int {
	if c == CategoryMSI {
		return 7
	}
	return 5
}

// Sheet names for the extracted datasets. They match the workbook
// sheets and CSV file names the exporters produce.
const (
	SheetMSITitular       = "MSI Titular"
	SheetMSIAdicional     = "MSI Adicional"
	SheetRegularTitular   = "No a Meses Titular"
	SheetRegularAdicional = "No a Meses Adicional"
	SheetConsolidated     = "No a Meses Consolidado"
)

// MSIRecord is one installment purchase row after field cleaning.
type MSIRecord struct {
	OperationDate   string `csv:"Fecha de la operación"`
	Description     string `csv:"Descripción"`
	OriginalAmount  string `csv:"Monto original"`
	PendingBalance  string `csv:"Saldo pendiente"`
	RequiredPayment string `csv:"Pago requerido"`
	PaymentNumber   string `csv:"Núm. de pago"`
	Rate            string `csv:"Tasa de interés aplicable"`
}

// MSIColumns is the column order for installment sheets.
var MSIColumns = []string{
	"Fecha de la operación",
	"Descripción",
	"Monto original",
	"Saldo pendiente",
	"Pago requerido",
	"Núm. de pago",
	"Tasa de interés aplicable",
}

// RegularRecord is one regular charge/credit row after field cleaning.
// The sign of the movement is carried by Type ("Cargo" or "Abono"), never
// by the amount. Assignee and Comment are filled in by hand later.
type RegularRecord struct {
	TransactionDate string `csv:"Fecha Transacción"`
	ChargeDate      string `csv:"Fecha Cargo"`
	Description     string `csv:"Descripción"`
	Amount          string `csv:"Monto"`
	Type            string `csv:"Tipo"`
	CardType        string `csv:"Tipo Tarjeta"`
	Assignee        string `csv:"De quien"`
	Comment         string `csv:"Comentario"`
}

// RegularColumns is the column order for regular sheets.
var RegularColumns = []string{
	"Fecha Transacción",
	"Fecha Cargo",
	"Descripción",
	"Monto",
	"Tipo",
	"Tipo Tarjeta",
	"De quien",
	"Comentario",
}

// Statement holds every dataset extracted from one document.
type Statement struct {
	MSITitular       []MSIRecord
	MSIAdicional     []MSIRecord
	RegularTitular   []RegularRecord
	RegularAdicional []RegularRecord

	// Consolidated is the row-wise concatenation of RegularTitular and
	// RegularAdicional, titular rows first.
	Consolidated []RegularRecord
}

// RowCount returns the total number of transaction rows across the four
// primary datasets (the consolidated sheet is derived, not counted).
func (s *Statement) RowCount() int {
	return len(s.MSITitular) + len(s.MSIAdicional) +
		len(s.RegularTitular) + len(s.RegularAdicional)
}
