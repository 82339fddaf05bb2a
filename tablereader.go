// Package tablereader extracts typed transaction records from Santander
// credit-card statement PDFs.
//
// Statements are scanned documents: each page embeds the scan as an image
// while the table rules are vector strokes. The extractor reconstructs the
// ruled grids from those strokes, renders each page at a fixed resolution,
// recognizes every cell with Tesseract, and assembles the results into
// installment ("meses sin intereses") and regular movement datasets per
// cardholder.
//
// Basic usage:
//
//	st, warnings, err := tablereader.Open("estado_de_cuenta.pdf").Statement()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", tablereader.FormatWarnings(warnings))
//	}
//
// With options:
//
//	st, _, err := tablereader.Open("estado_de_cuenta.pdf").
//	    Pages(1, 2, 3).
//	    Language("spa").
//	    Statement()
//
// Cell recognition requires building with the ocr tag and a libtesseract
// installation with the Spanish model. Without the tag, Statement fails
// with ocr.ErrOCRNotEnabled unless a custom cell reader is injected.
package tablereader

// Open prepares an Extractor for the given PDF. The file is not touched
// until a terminal operation such as Statement or PageCount runs.
//
// Example:
//
//	st, warnings, err := tablereader.Open("estado.pdf").Statement()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// Must wraps a call to a function returning (T, error) and panics on a
// non-nil error. Intended for scripts and tests.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustStatement wraps a call to Statement and panics on a non-nil error,
// discarding warnings.
//
// Example:
//
//	st := tablereader.MustStatement(tablereader.Open("estado.pdf").Statement())
func MustStatement[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
