package table

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Pre-compiled regex for numeric validation (avoids recompilation on each call)
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// TwoDigitYearPivot defines how 2-digit years are interpreted. Years that
// would land more than this many years in the future are assumed to be in the
// previous century.
var TwoDigitYearPivot = 20

// Date layouts split by year format for proper 2-digit year handling.
var (
	twoDigitYearLayouts = []string{
		"1/2/06", "01/02/06", "1-2-06", "1.2.06", "01.02.06",
	}
	fourDigitYearLayouts = []string{
		"2006-01-02 15:04:05", "2006-01-02T15:04:05", "1/2/2006 15:04",
		"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006", "1.2.2006", "01.02.2006",
		"2006-01-02", "2006/01/02", "2006.01.02",
		"Jan 2, 2006", "2 Jan 2006",
		"20060102",
	}
)

// ParseNumber coerces a textual number to a numeric value. It tolerates
// currency symbols, comma grouping separators, and accounting-style
// negatives ("(123.45)"). Unparseable input yields the missing value.
func ParseNumber(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Missing()
	}

	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, "£", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if isNegative {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return Missing()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Missing()
	}
	return Number(f)
}

// ParseDate parses a textual date or timestamp. 4-digit-year layouts are
// tried first (unambiguous), then 2-digit-year layouts with the pivot
// adjustment. Unparseable input yields the missing value.
func ParseDate(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Missing()
	}

	for _, layout := range fourDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Time(t)
		}
	}

	// Go's time.Parse interprets 2-digit years as 00-68 → 2000-2068,
	// 69-99 → 1969-1999. Apply a consistent pivot instead: if the parsed
	// year is past currentYear+pivot, it belongs to the previous century.
	pivotYear := time.Now().Year() + TwoDigitYearPivot
	for _, layout := range twoDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Year() > pivotYear {
				t = t.AddDate(-100, 0, 0)
			}
			return Time(t)
		}
	}

	return Missing()
}
