// Package normalize coerces ragged spreadsheet cells into the canonical shapes
// used by the rest of the tool: integer currency amounts, YYYY-MM period tokens
// and calendar dates.
//
// None of the functions here return errors. A cell that cannot be coerced
// becomes 0 (currency), the zero time (dates) or keeps its original text
// (periods), so every row stays usable downstream.
package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/unicode/norm"
)

// PeriodLayout is the canonical period format
const PeriodLayout = "2006-01"

// Excel serial numbers outside this range are treated as plain numbers
const (
	minExcelSerial = 20000 // 1954-10-03
	maxExcelSerial = 80000 // 2119-01-10
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
	"2006/01/02 15:04:05",
	"2006.01.02",
	"2006.1.2",
	"2006. 1. 2.",
	"2006. 1. 2",
	"2006년 1월 2일",
	"20060102",
	"1/2/2006",
	"2006-01",
	"2006-1",
	"2006/01",
	"2006.01",
	"2006. 1.",
	"2006년 1월",
	"200601",
}

var displayPrinter = message.NewPrinter(language.English)

// CleanNumeric converts a currency cell into an integer amount. Strings keep
// only digits, '.' and '-' before parsing; fractions are truncated toward zero.
// Anything that cannot be parsed (including nil, NaN and Inf) becomes 0.
func CleanNumeric(v any) int64 {
	switch x := v.(type) {
	case nil:
		return 0
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case string:
		return parseNumeric(x)
	default:
		return parseNumeric(fmt.Sprint(x))
	}
}

func fromFloat(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(f)
}

func parseNumeric(s string) int64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return 0
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	return d.IntPart()
}

// ParseDate parses the date formats found in the business spreadsheets,
// including Excel serial numbers. The result is a calendar date at UTC midnight.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncate(t), true
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial >= minExcelSerial && serial <= maxExcelSerial {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return truncate(t), true
			}
		}
	}

	return time.Time{}, false
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NormalizePeriod formats a parseable date as YYYY-MM and returns anything
// else unchanged, so rows with free-text periods (e.g. "미정") stay attributable.
func NormalizePeriod(s string) string {
	if t, ok := ParseDate(s); ok {
		return t.Format(PeriodLayout)
	}
	return s
}

// FormatCurrency renders an amount with thousands separators, e.g. 1,500,000
func FormatCurrency(n int64) string {
	return displayPrinter.Sprintf("%d", n)
}

// Fold prepares text for keyword matching: NFC-composed and lower-cased, so
// decomposed Hangul from some exports still matches composed keywords.
func Fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}
