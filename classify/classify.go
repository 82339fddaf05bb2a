// Package classify derives a table's (category, card type) from its merged
// header rows and filters out the structural rows (column headers, totals)
// that ruled-line detection reports alongside transaction data.
//
// All matching is case- and diacritic-insensitive: Tesseract frequently
// drops or invents accents on the statement's headings, so "Descripción"
// and "DESCRIPCION" must classify identically.
package classify

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/GermanMF/table-reader-bank/model"
)

// foldCase lowercases text and strips combining marks, so OCR output can be
// compared against plain-ASCII markers.
var foldCase = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// headerKeywords are the column heading words of both table layouts.
// A row matching two or more of them is a column header, not data.
var headerKeywords = []string{
	"fecha", "descripcion", "monto", "saldo", "pago",
	"movimiento", "tasa", "interes", "cargo",
}

// totalKeywords mark summary rows appended below the transaction rows.
var totalKeywords = []string{"total cargos", "total abonos", "total"}

// Classify maps accumulated header text to a table classification.
// Unknown categories signal a continuation candidate: a table that lost its
// heading to a page break and inherits the previous table's classification.
func Classify(header string) model.Classification {
	text := Fold(header)

	var category model.Category
	switch {
	case strings.Contains(text, "meses sin intereses") || strings.Contains(text, "diferidos"):
		category = model.CategoryMSI
	case strings.Contains(text, "no a meses") || strings.Contains(text, "regulares"):
		category = model.CategoryRegular
	default:
		category = model.CategoryUnknown
	}

	card := model.CardTitular
	if strings.Contains(text, "adicional") {
		card = model.CardAdicional
	}

	return model.Classification{Category: category, CardType: card}
}

// IsHeaderRow reports whether a raw row is a column header row: at least
// two of the known heading keywords appear across its fields.
func IsHeaderRow(fields []string) bool {
	text := Fold(strings.Join(fields, " "))
	hits := 0
	for _, kw := range headerKeywords {
		if strings.Contains(text, kw) {
			hits++
		}
	}
	return hits >= 2
}

// IsTotalRow reports whether any field belongs to a total/summary row.
func IsTotalRow(fields []string) bool {
	for _, f := range fields {
		text := Fold(f)
		for _, kw := range totalKeywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
	}
	return false
}

// IsEmptyRow reports whether every field is empty.
func IsEmptyRow(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}
	return true
}

// Fold lowercases s and strips diacritics. Used for all keyword matching.
func Fold(s string) string {
	folded, _, err := transform.String(foldCase, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}
