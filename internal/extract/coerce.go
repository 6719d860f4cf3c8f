package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/visual-poker/pokerxl/internal/sheet"
)

var nonNumeric = regexp.MustCompile(`[^\d,.\-]`)

// Coerce turns any cell into a decimal. It never fails: empty cells, dates and
// text that does not parse all yield zero.
//
// Text is first parsed as-is. Failing that, everything except digits, comma,
// dot and minus is dropped and every comma becomes a dot, so "12,5" reads as
// 12.5 while "R$ 1.234,56" becomes "1.234.56" and reads as zero. Values outside
// the float64 range never parse, so "1e400" falls through to "1400".
func Coerce(c sheet.Cell) decimal.Decimal {
	switch c.Kind {
	case sheet.KindNumber, sheet.KindBool:
		return c.Number
	case sheet.KindText:
		return coerceText(c.Text)
	default:
		return decimal.Zero
	}
}

func coerceText(s string) decimal.Decimal {
	if d, ok := parseFinite(strings.TrimSpace(s)); ok {
		return d
	}

	s = nonNumeric.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ",", ".")
	if d, ok := parseFinite(s); ok {
		return d
	}
	return decimal.Zero
}

// parseFinite parses s as a float64 and rejects overflow, NaN and Inf.
func parseFinite(s string) (decimal.Decimal, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}
