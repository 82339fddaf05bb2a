package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/GermanMF/table-reader-bank/config"
	"github.com/GermanMF/table-reader-bank/model"
)

func testConfig() *config.Config {
	return &config.Config{
		People:        []string{"Ana", "Luis"},
		SharedLabel:   "Los 2",
		MortgageTotal: 26000,
		Splits:        []float64{0.5, 0.5},
		TableName:     "Movimientos",
	}
}

func testStatement() *model.Statement {
	st := &model.Statement{
		MSITitular: []model.MSIRecord{{
			OperationDate:   "17-Ene-2026",
			Description:     "LIVERPOOL MEXICO",
			OriginalAmount:  "5000.00",
			PendingBalance:  "4500.00",
			RequiredPayment: "500.00",
			PaymentNumber:   "02 de 12",
			Rate:            "5.0%",
		}},
		RegularTitular: []model.RegularRecord{{
			TransactionDate: "08-Ene-2026",
			ChargeDate:      "09-Ene-2026",
			Description:     "PAGO RECIBIDO, GRACIAS",
			Amount:          "2000.00",
			Type:            "Abono",
			CardType:        "Titular",
		}},
		RegularAdicional: []model.RegularRecord{{
			TransactionDate: "12-Ene-2026",
			ChargeDate:      "13-Ene-2026",
			Description:     "OXXO CDMX",
			Amount:          "350.50",
			Type:            "Cargo",
			CardType:        "Adicional",
		}},
	}
	st.Consolidated = append(append([]model.RegularRecord{}, st.RegularTitular...), st.RegularAdicional...)
	return st
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	files, err := New(testConfig()).WriteCSV(testStatement(), dir)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "msi_titular.csv"),
		filepath.Join(dir, "no_a_meses_titular.csv"),
		filepath.Join(dir, "no_a_meses_adicional.csv"),
		filepath.Join(dir, "no_a_meses_consolidado.csv"),
		filepath.Join(dir, "resumen.csv"),
	}
	assert.ElementsMatch(t, want, files)

	data, err := os.ReadFile(filepath.Join(dir, "msi_titular.csv"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}), "CSV must start with a UTF-8 BOM")

	content := string(data)
	assert.Contains(t, content, "Fecha de la operación")
	assert.Contains(t, content, "LIVERPOOL MEXICO")
	assert.Contains(t, content, "5000.00")

	data, err = os.ReadFile(filepath.Join(dir, "no_a_meses_consolidado.csv"))
	require.NoError(t, err)
	content = string(data)
	assert.Contains(t, content, "Tipo Tarjeta")
	assert.Contains(t, content, "Titular")
	assert.Contains(t, content, "Adicional")

	data, err = os.ReadFile(filepath.Join(dir, "resumen.csv"))
	require.NoError(t, err)
	content = string(data)
	assert.Contains(t, content, "Nombre")
	assert.Contains(t, content, "=SUMIFS(Movimientos[Monto]")
}

func TestWriteCSVSkipsEmptyDatasets(t *testing.T) {
	dir := t.TempDir()
	st := &model.Statement{
		MSITitular: testStatement().MSITitular,
	}
	files, err := New(testConfig()).WriteCSV(st, dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "msi_titular.csv"), files[0])

	_, err = os.Stat(filepath.Join(dir, "resumen.csv"))
	assert.True(t, os.IsNotExist(err), "resumen.csv requires a consolidated dataset")
}

func TestWriteExcel(t *testing.T) {
	dir := t.TempDir()
	path, err := New(testConfig()).WriteExcel(testStatement(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, WorkbookName), path)

	wb, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer wb.Close()

	sheets := wb.GetSheetList()
	assert.NotContains(t, sheets, "Sheet1")
	assert.Equal(t, []string{
		model.SheetMSITitular,
		model.SheetRegularTitular,
		model.SheetRegularAdicional,
		model.SheetConsolidated,
		SummarySheet,
	}, sheets)

	header, err := wb.GetCellValue(model.SheetMSITitular, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Fecha de la operación", header)

	// Amounts come back as numbers, dates as strings.
	amount, err := wb.GetCellValue(model.SheetMSITitular, "C2")
	require.NoError(t, err)
	assert.Equal(t, "5000", amount)
	date, err := wb.GetCellValue(model.SheetMSITitular, "A2")
	require.NoError(t, err)
	assert.Equal(t, "17-Ene-2026", date)

	// Resumen carries live formulas.
	formula, err := wb.GetCellFormula(SummarySheet, "B2")
	require.NoError(t, err)
	assert.Contains(t, formula, "SUMIFS(Movimientos[Monto]")
	total, err := wb.GetCellFormula(SummarySheet, "D2")
	require.NoError(t, err)
	assert.Equal(t, "B2+C2", total)
}

func TestWriteExcelColumnWidthsCapped(t *testing.T) {
	dir := t.TempDir()
	st := testStatement()
	st.MSITitular[0].Description = string(bytes.Repeat([]byte("X"), 120))

	path, err := New(testConfig()).WriteExcel(st, dir)
	require.NoError(t, err)

	wb, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer wb.Close()

	width, err := wb.GetColWidth(model.SheetMSITitular, "B")
	require.NoError(t, err)
	assert.InDelta(t, 50.0, width, 0.5)

	// A short column fits its content instead.
	width, err = wb.GetColWidth(model.SheetMSITitular, "G")
	require.NoError(t, err)
	assert.Less(t, width, 30.0)
}

func TestWriteExcelNoData(t *testing.T) {
	_, err := New(testConfig()).WriteExcel(&model.Statement{}, t.TempDir())
	require.Error(t, err)
}
