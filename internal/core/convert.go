package core

// convert.go provides cell conversion from raw spreadsheet values to the
// canonical typed representation.
//
// These functions handle the messy reality of hand-maintained workbooks:
//   - mixed date formats (ISO and French day-first)
//   - currency symbols, grouping commas, French decimal commas
//   - stray whitespace, non-breaking spaces, surrounding quotes
//
// All To* functions return database/sql Null values with Valid=false for
// empty or unparseable input. The conversion never fails; deciding whether
// a missing value drops the row is the validator's job.

import (
	"database/sql"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// numericRegex validates a candidate number after cleanup. Matches
// integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// TwoDigitYearPivot defines how 2-digit years are interpreted. Years that
// would land more than this many years in the future are assumed to be in
// the previous century.
var TwoDigitYearPivot = 20

// Date layouts split by year format for proper 2-digit year handling.
// Day-first layouts come after ISO because the source locale writes
// 02/01/2006 for January 2nd.
var (
	twoDigitYearLayouts = []string{
		"2/1/06", "02/01/06", "2-1-06", "2.1.06", "02.01.06",
	}
	fourDigitYearLayouts = []string{
		"2006-01-02", "2006/01/02", "2006.01.02",
		"2/1/2006", "02/01/2006", "2-1-2006", "02-01-2006", "2.1.2006", "02.01.2006",
		"2 Jan 2006", "Jan 2, 2006",
		"20060102",
	}
)

// CanonicalDateFormat is the representation every date-like field is
// reformatted to before loading.
const CanonicalDateFormat = "2006-01-02"

// ToText converts a raw cell to a nullable string.
// Empty or whitespace-only input is missing.
func ToText(s string) sql.NullString {
	s = CleanCell(s)
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// ToDate parses a raw cell into the canonical YYYY-MM-DD representation.
// An unparseable date is missing, never an error; the decision to drop
// the row is deferred to validation.
func ToDate(s string) sql.NullString {
	s = CleanCell(s)
	if s == "" {
		return sql.NullString{}
	}

	// 4-digit year layouts first (unambiguous)
	for _, layout := range fourDigitYearLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return sql.NullString{String: t.Format(CanonicalDateFormat), Valid: true}
		}
	}

	// 2-digit year layouts with pivot adjustment
	pivotYear := time.Now().Year() + TwoDigitYearPivot
	for _, layout := range twoDigitYearLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			if t.Year() > pivotYear {
				t = t.AddDate(-100, 0, 0)
			}
			return sql.NullString{String: t.Format(CanonicalDateFormat), Valid: true}
		}
	}

	return sql.NullString{}
}

// ToAmount converts a currency-like cell ("1,720€", "1720,50",
// "$12.30") to a nullable float.
//
// Comma disambiguation: a single comma followed by exactly three digits is
// a grouping separator ("1,720" is 1720), anything else is the French
// decimal comma ("1720,50" is 1720.5). A value that mixes commas and a dot
// treats commas as grouping.
func ToAmount(s string) sql.NullFloat64 {
	s = CleanCell(s)
	if s == "" {
		return sql.NullFloat64{}
	}

	// Strip currency symbols and spacing (incl. non-breaking space used
	// as a French grouping separator)
	for _, sym := range []string{"€", "$", "£", " ", " ", " "} {
		s = strings.ReplaceAll(s, sym, "")
	}

	s = normalizeSeparators(s)

	if !numericRegex.MatchString(s) {
		return sql.NullFloat64{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

// ToQuantity converts an integral cell to a nullable int64.
func ToQuantity(s string) sql.NullInt64 {
	s = CleanCell(s)
	if s == "" {
		return sql.NullInt64{}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: n, Valid: true}
}

// normalizeSeparators rewrites comma usage so the value parses with a
// decimal dot.
func normalizeSeparators(s string) string {
	commas := strings.Count(s, ",")
	if commas == 0 {
		return s
	}

	// Mixed with a dot, or repeated: commas are grouping separators.
	if strings.Contains(s, ".") || commas > 1 {
		return strings.ReplaceAll(s, ",", "")
	}

	// Single comma: exactly three trailing digits means grouping,
	// otherwise it is the decimal separator.
	i := strings.IndexByte(s, ',')
	if len(s)-i-1 == 3 {
		return s[:i] + s[i+1:]
	}
	return s[:i] + "." + s[i+1:]
}

// MakeHeaderIndex builds a HeaderIndex from a header row.
// Keys are lowercased for case-insensitive matching.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		idx[strings.ToLower(CleanCell(h))] = i
	}
	return idx
}

// CleanCell trims whitespace and surrounding quotes left behind by
// spreadsheet editors.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

// cell returns the cleaned value at the named canonical column, or ""
// if the column is absent from the header.
func cell(row []string, idx HeaderIndex, name string) string {
	pos, ok := idx[name]
	if !ok || pos >= len(row) {
		return ""
	}
	return CleanCell(row[pos])
}
