// Package summary builds the per-person expense breakdown ("Resumen").
//
// The Debe and Los 2 cells are live SUMIFS spreadsheet formulas over the
// consolidated sheet's named table rather than computed values: the user
// assigns the "De quien" column by hand after import, and the amounts
// recalculate in Excel or Google Sheets as they do.
package summary

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GermanMF/table-reader-bank/config"
)

// Row is one line of the summary sheet. Cells holding a leading "=" are
// spreadsheet formulas; the mortgage column is a plain number.
type Row struct {
	Name          string `csv:"Nombre"`
	Owed          string `csv:"Debe"`
	Shared        string `csv:"Los 2"`
	CardTotal     string `csv:"Total Tarjeta"`
	MortgageTotal string `csv:"Total hipoteca"`
	GrandTotal    string `csv:"Total de totales"`
}

// Columns is the column order of the summary sheet.
var Columns = []string{
	"Nombre",
	"Debe",
	"Los 2",
	"Total Tarjeta",
	"Total hipoteca",
	"Total de totales",
}

// Build produces one row per configured person plus the trailing shared
// row. Formula cell references assume the sheet layout produced by the
// exporters: headers in row 1, data from row 2, columns A through F.
func Build(cfg *config.Config) []Row {
	mortgage := decimal.NewFromFloat(cfg.MortgageTotal)
	rows := make([]Row, 0, len(cfg.People)+1)

	mortgageSum := decimal.Zero
	for i, person := range cfg.People {
		excelRow := i + 2
		split := decimal.NewFromFloat(cfg.Splits[i])
		share := mortgage.Mul(split)
		mortgageSum = mortgageSum.Add(share)

		rows = append(rows, Row{
			Name:          person,
			Owed:          sumIfs(cfg.TableName, person),
			Shared:        fmt.Sprintf("%s*%.4f", sumIfs(cfg.TableName, cfg.SharedLabel), cfg.Splits[i]),
			CardTotal:     fmt.Sprintf("=B%d+C%d", excelRow, excelRow),
			MortgageTotal: share.Round(2).StringFixed(2),
			GrandTotal:    fmt.Sprintf("=D%d+E%d", excelRow, excelRow),
		})
	}

	lastDataRow := len(cfg.People) + 1
	shared := sumIfs(cfg.TableName, cfg.SharedLabel)
	rows = append(rows, Row{
		Name:          cfg.SharedLabel,
		Owed:          shared,
		Shared:        shared,
		CardTotal:     fmt.Sprintf("=SUM(D2:D%d)", lastDataRow),
		MortgageTotal: mortgageSum.Round(2).StringFixed(2),
		GrandTotal:    fmt.Sprintf("=SUM(F2:F%d)", lastDataRow),
	})
	return rows
}

// sumIfs builds the charge-sum formula for one assignee over the named
// consolidated table.
func sumIfs(table, assignee string) string {
	return fmt.Sprintf(`=SUMIFS(%s[Monto], %s[De quien], "%s", %s[Tipo], "Cargo")`,
		table, table, assignee, table)
}
