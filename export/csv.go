package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/GermanMF/table-reader-bank/model"
	"github.com/GermanMF/table-reader-bank/summary"
)

// utf8BOM prefixes every CSV so Google Sheets decodes accented characters
// correctly on import.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes one CSV per non-empty dataset into dir, plus resumen.csv
// when the consolidated dataset exists. It returns the created file paths.
func (e *Exporter) WriteCSV(st *model.Statement, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var files []string
	write := func(filename string, records interface{}) error {
		path := filepath.Join(dir, filename)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()

		if _, err := f.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := gocsv.Marshal(records, f); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		files = append(files, path)
		return nil
	}

	if len(st.MSITitular) > 0 {
		if err := write(csvFileName(model.SheetMSITitular), &st.MSITitular); err != nil {
			return files, err
		}
	}
	if len(st.MSIAdicional) > 0 {
		if err := write(csvFileName(model.SheetMSIAdicional), &st.MSIAdicional); err != nil {
			return files, err
		}
	}
	if len(st.RegularTitular) > 0 {
		if err := write(csvFileName(model.SheetRegularTitular), &st.RegularTitular); err != nil {
			return files, err
		}
	}
	if len(st.RegularAdicional) > 0 {
		if err := write(csvFileName(model.SheetRegularAdicional), &st.RegularAdicional); err != nil {
			return files, err
		}
	}
	if len(st.Consolidated) > 0 {
		if err := write(csvFileName(model.SheetConsolidated), &st.Consolidated); err != nil {
			return files, err
		}
		rows := summary.Build(e.cfg)
		if err := write("resumen.csv", &rows); err != nil {
			return files, err
		}
	}

	return files, nil
}

// csvFileName maps a sheet name to its CSV file name:
// "MSI Titular" -> "msi_titular.csv".
func csvFileName(sheetName string) string {
	return strings.ToLower(strings.ReplaceAll(sheetName, " ", "_")) + ".csv"
}
