// Package export writes extracted statement datasets to CSV files and an
// Excel workbook.
//
// Both outputs target Google Sheets imports: CSVs carry a UTF-8 BOM so
// accented characters survive, amounts are plain numbers without currency
// symbols, and dates stay as DD-Mon-YYYY strings for Sheets to auto-parse.
package export

import (
	"github.com/GermanMF/table-reader-bank/config"
	"github.com/GermanMF/table-reader-bank/model"
	"github.com/GermanMF/table-reader-bank/summary"
)

// SummarySheet is the name of the formula summary sheet and CSV.
const SummarySheet = "Resumen"

// WorkbookName is the Excel output file name.
const WorkbookName = "estado_de_cuenta.xlsx"

// Exporter writes statement datasets to disk. The config drives the
// summary sheet attached alongside the consolidated dataset.
type Exporter struct {
	cfg *config.Config
}

// New creates an Exporter.
func New(cfg *config.Config) *Exporter {
	return &Exporter{cfg: cfg}
}

// sheet is one exportable dataset in grid form.
type sheet struct {
	name   string
	header []string
	rows   [][]string
}

// sheets converts a statement's non-empty datasets into export order:
// installment sheets, regular sheets, then the consolidated sheet.
func (e *Exporter) sheets(st *model.Statement) []sheet {
	var out []sheet
	if len(st.MSITitular) > 0 {
		out = append(out, sheet{model.SheetMSITitular, model.MSIColumns, msiRows(st.MSITitular)})
	}
	if len(st.MSIAdicional) > 0 {
		out = append(out, sheet{model.SheetMSIAdicional, model.MSIColumns, msiRows(st.MSIAdicional)})
	}
	if len(st.RegularTitular) > 0 {
		out = append(out, sheet{model.SheetRegularTitular, model.RegularColumns, regularRows(st.RegularTitular)})
	}
	if len(st.RegularAdicional) > 0 {
		out = append(out, sheet{model.SheetRegularAdicional, model.RegularColumns, regularRows(st.RegularAdicional)})
	}
	if len(st.Consolidated) > 0 {
		out = append(out, sheet{model.SheetConsolidated, model.RegularColumns, regularRows(st.Consolidated)})
	}
	return out
}

// summarySheet builds the Resumen grid when the consolidated dataset
// exists; otherwise nil.
func (e *Exporter) summarySheet(st *model.Statement) *sheet {
	if len(st.Consolidated) == 0 {
		return nil
	}
	rows := summary.Build(e.cfg)
	grid := make([][]string, len(rows))
	for i, r := range rows {
		grid[i] = []string{r.Name, r.Owed, r.Shared, r.CardTotal, r.MortgageTotal, r.GrandTotal}
	}
	return &sheet{name: SummarySheet, header: summary.Columns, rows: grid}
}

func msiRows(records []model.MSIRecord) [][]string {
	out := make([][]string, len(records))
	for i, r := range records {
		out[i] = []string{
			r.OperationDate,
			r.Description,
			r.OriginalAmount,
			r.PendingBalance,
			r.RequiredPayment,
			r.PaymentNumber,
			r.Rate,
		}
	}
	return out
}

func regularRows(records []model.RegularRecord) [][]string {
	out := make([][]string, len(records))
	for i, r := range records {
		out[i] = []string{
			r.TransactionDate,
			r.ChargeDate,
			r.Description,
			r.Amount,
			r.Type,
			r.CardType,
			r.Assignee,
			r.Comment,
		}
	}
	return out
}
