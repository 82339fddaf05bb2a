package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/GermanMF/table-reader-bank/model"
)

// maxColumnWidth caps auto-fitted column widths.
const maxColumnWidth = 50.0

// WriteExcel writes every non-empty dataset plus the Resumen sheet into a
// single workbook in dir and returns the workbook path. Cells starting
// with "=" become live formulas; numeric-looking cells become numbers so
// spreadsheets treat amounts as values.
func (e *Exporter) WriteExcel(st *model.Statement, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	sheets := e.sheets(st)
	if sm := e.summarySheet(st); sm != nil {
		sheets = append(sheets, *sm)
	}
	if len(sheets) == 0 {
		return "", fmt.Errorf("no datasets to export")
	}

	wb := excelize.NewFile()
	defer wb.Close()

	for _, sh := range sheets {
		if _, err := wb.NewSheet(sh.name); err != nil {
			return "", fmt.Errorf("failed to create sheet %q: %w", sh.name, err)
		}
		if err := writeSheet(wb, sh); err != nil {
			return "", err
		}
	}

	// Drop the default sheet and land on the first dataset.
	if err := wb.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("failed to remove default sheet: %w", err)
	}
	idx, err := wb.GetSheetIndex(sheets[0].name)
	if err != nil {
		return "", err
	}
	wb.SetActiveSheet(idx)

	path := filepath.Join(dir, WorkbookName)
	if err := wb.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}

func writeSheet(wb *excelize.File, sh sheet) error {
	for c, name := range sh.header {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := wb.SetCellValue(sh.name, cell, name); err != nil {
			return err
		}
	}

	for r, row := range sh.rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := setCell(wb, sh.name, cell, value); err != nil {
				return err
			}
		}
	}

	return autofitColumns(wb, sh)
}

// setCell writes a formula, a number, or a string depending on the value's
// shape.
func setCell(wb *excelize.File, sheetName, cell, value string) error {
	if strings.HasPrefix(value, "=") {
		return wb.SetCellFormula(sheetName, cell, strings.TrimPrefix(value, "="))
	}
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return wb.SetCellValue(sheetName, cell, n)
	}
	return wb.SetCellValue(sheetName, cell, value)
}

// autofitColumns sets each column's width to its longest content, capped.
func autofitColumns(wb *excelize.File, sh sheet) error {
	for c, name := range sh.header {
		maxLen := len(name)
		for _, row := range sh.rows {
			if c < len(row) && len(row[c]) > maxLen {
				maxLen = len(row[c])
			}
		}
		width := float64(maxLen) + 2
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := wb.SetColWidth(sh.name, col, col, width); err != nil {
			return err
		}
	}
	return nil
}
