// Command table-reader extracts transaction tables from a Santander
// credit-card statement PDF and exports them to CSV and Excel.
//
// Usage:
//
//	table-reader [flags] <statement.pdf>
//
// Requires a build with the ocr tag and a libtesseract installation with
// the Spanish language model.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tablereader "github.com/GermanMF/table-reader-bank"
	"github.com/GermanMF/table-reader-bank/config"
	"github.com/GermanMF/table-reader-bank/export"
)

func main() {
	var (
		outputDir string
		csvOnly   bool
		excelOnly bool
	)
	flag.StringVar(&outputDir, "output-dir", "./output", "output directory")
	flag.StringVar(&outputDir, "o", "./output", "output directory (shorthand)")
	flag.BoolVar(&csvOnly, "csv-only", false, "export only CSV (skip Excel)")
	flag.BoolVar(&excelOnly, "excel-only", false, "export only Excel (skip CSV)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <statement.pdf>\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	pdfPath := flag.Arg(0)
	if _, err := os.Stat(pdfPath); err != nil {
		logger.Error("statement file not found", "path", pdfPath)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("extracting statement", "path", pdfPath)
	st, warnings, err := tablereader.Open(pdfPath).Statement()
	for _, w := range warnings {
		logger.Warn("extraction warning", "page", w.Page, "message", w.Message)
	}
	if err != nil {
		if errors.Is(err, tablereader.ErrNoRows) {
			logger.Error("no transaction tables found; check the PDF file")
		} else {
			logger.Error("extraction failed", "error", err)
		}
		os.Exit(1)
	}
	logger.Info("extraction complete",
		"msi_titular", len(st.MSITitular),
		"msi_adicional", len(st.MSIAdicional),
		"regular_titular", len(st.RegularTitular),
		"regular_adicional", len(st.RegularAdicional),
	)

	exp := export.New(cfg)
	if !excelOnly {
		files, err := exp.WriteCSV(st, outputDir)
		if err != nil {
			logger.Error("CSV export failed", "error", err)
			os.Exit(1)
		}
		for _, f := range files {
			logger.Info("wrote CSV", "file", f)
		}
	}
	if !csvOnly {
		path, err := exp.WriteExcel(st, outputDir)
		if err != nil {
			logger.Error("Excel export failed", "error", err)
			os.Exit(1)
		}
		logger.Info("wrote workbook", "file", path)
	}

	abs, err := filepath.Abs(outputDir)
	if err != nil {
		abs = outputDir
	}
	logger.Info("done", "output", abs)
}
