package tablereader

import (
	"fmt"
	"strings"
)

// Warning is a non-fatal problem encountered while processing a page.
// Extraction keeps going; a page whose lines or scan cannot be read simply
// contributes no rows.
type Warning struct {
	// Page is the 1-indexed page number, or 0 for document-level warnings.
	Page    int
	Message string
}

func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single human-readable string,
// one per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
