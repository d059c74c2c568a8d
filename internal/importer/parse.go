package importer

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// parseDecimal runs an ordered list of numeric interpretations and
// short-circuits on the first success: plain decimal with a dot
// separator, then comma/dot separator normalization, then a retry with
// all whitespace (including grouping spaces like NBSP) stripped.
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty value")
	}

	for _, candidate := range []string{
		s,
		normalizeSeparators(s),
		stripSpaces(s),
		normalizeSeparators(stripSpaces(s)),
	} {
		if d, err := decimal.NewFromString(candidate); err == nil {
			return d, nil
		}
	}
	return decimal.Decimal{}, fmt.Errorf("cannot parse %q as a number", s)
}

// normalizeSeparators rewrites comma/dot usage into the plain dot-decimal
// form: "12,34" and "1.234,56" become "12.34" and "1234.56", while
// "1,234.56" and "1,234,567" lose their grouping commas.
func normalizeSeparators(s string) string {
	lastComma := strings.LastIndexByte(s, ',')
	if lastComma == -1 {
		return s
	}
	lastDot := strings.LastIndexByte(s, '.')
	if lastDot > lastComma || strings.Count(s, ",") > 1 {
		// commas group thousands
		return strings.ReplaceAll(s, ",", "")
	}
	// single comma right of any dot: comma is the decimal separator
	s = strings.ReplaceAll(s, ".", "")
	return strings.Replace(s, ",", ".", 1)
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Explicit date layouts, tried in order. Non-padded layouts also accept
// zero-padded input. Month/day/year is tried before day/month/year, so
// an ambiguous slash date resolves the US way and "13/2/2025" still
// lands on the day-first form.
var dateLayouts = []string{
	"2006-01-02", // ISO
	"2.1.2006",   // dotted day.month.year
	"2006-1-2",   // loose ISO
	"1/2/2006",   // slash month/day/year
	"2/1/2006",   // slash day/month/year
}

// General free-form fallbacks after the explicit list fails.
var looseDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"2 January 2006",
}

// parseDate tries the explicit layout list, then the free-form fallbacks.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range looseDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date", s)
}
