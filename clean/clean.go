// Package clean normalizes raw OCR output into presentable field values.
//
// Every function here is lossy-but-total: when a value does not match the
// expected shape, the sanitized input is returned verbatim rather than an
// error. The date corrections encode observed misreads of one font/scanner
// combination (a clipped "7" glyph read as "f" or "/", doubled day digits)
// and are calibration heuristics, not general transformations.
package clean

import (
	"regexp"
	"strings"
)

// months is the fixed set of Spanish month abbreviations the statement uses.
const months = `Ene|Feb|Mar|Abr|May|Jun|Jul|Ago|Sep|Oct|Nov|Dic`

var (
	reArtifacts = regexp.MustCompile(`[\[\]|\\]`)
	reNumber    = regexp.MustCompile(`-?[0-9]+\.?[0-9]*`)
	rePercent   = regexp.MustCompile(`[0-9]+\.?[0-9]*%?`)

	// "2f-Ene" -> "27-Ene": clipped 7 glyph misread as the letter f.
	reDayF = regexp.MustCompile(`(?i)\b([0-9])f(-(?:` + months + `))`)
	// "2/-Ene" -> "27-Ene": same glyph, misread as a slash.
	reDaySlash = regexp.MustCompile(`(?i)\b([0-9])/(-(?:` + months + `))`)
	// "298-Ene" -> "29-Ene": doubled or noise trailing digit on the day.
	reDayExtra = regexp.MustCompile(`(?i)\b([0-9]{2})[0-9](-(?:` + months + `))`)

	reDateFull = regexp.MustCompile(`(?i)([0-9]{1,2})-(` + months + `)-([0-9]{4})`)
	reDateDM   = regexp.MustCompile(`(?i)([0-9]{1,2})-(` + months + `)`)
)

// Amount normalizes a monetary value: "$21,098.00" -> "21098.00".
// Currency symbols, thousands separators and spaces are removed, the
// OCR-confused letter O is mapped to zero, and the first signed decimal
// token is extracted. Without a match the sanitized string is returned.
func Amount(raw string) string {
	if raw == "" {
		return ""
	}
	r := strings.NewReplacer("$", "", ",", "", " ", "", "O", "0", "o", "0")
	cleaned := strings.TrimSpace(r.Replace(raw))
	if m := reNumber.FindString(cleaned); m != "" {
		return m
	}
	return cleaned
}

// Percentage normalizes a rate value: extracts the first numeric token
// optionally followed by "%".
func Percentage(raw string) string {
	if raw == "" {
		return ""
	}
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, " ", ""))
	if m := rePercent.FindString(cleaned); m != "" {
		return m
	}
	return cleaned
}

// Description strips border-bleed artifacts and collapses whitespace.
// No semantic correction is applied.
func Description(raw string) string {
	return sanitize(raw)
}

// Date cleans a date cell and repairs the statement's common OCR misreads,
// then extracts a DD-Month-YYYY value (or DD-Month when no year survived).
// The day is zero-padded and the month abbreviation capitalized. When no
// date pattern matches, the sanitized string is returned unchanged.
func Date(raw string) string {
	if raw == "" {
		return ""
	}

	cleaned := sanitize(raw)
	cleaned = reDayF.ReplaceAllString(cleaned, "${1}7${2}")
	cleaned = reDaySlash.ReplaceAllString(cleaned, "${1}7${2}")
	cleaned = reDayExtra.ReplaceAllString(cleaned, "${1}${2}")

	if m := reDateFull.FindStringSubmatch(cleaned); m != nil {
		return padDay(m[1]) + "-" + capitalize(m[2]) + "-" + m[3]
	}
	if m := reDateDM.FindStringSubmatch(cleaned); m != nil {
		return padDay(m[1]) + "-" + capitalize(m[2])
	}
	return cleaned
}

// sanitize removes border characters the cell crop sometimes catches and
// collapses runs of whitespace.
func sanitize(raw string) string {
	cleaned := reArtifacts.ReplaceAllString(raw, " ")
	return strings.Join(strings.Fields(cleaned), " ")
}

func padDay(day string) string {
	if len(day) == 1 {
		return "0" + day
	}
	return day
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
