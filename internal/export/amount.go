package export

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a decimal written as a JSON float. Whole values keep a ".0"
// fraction and very large or very small magnitudes switch to exponent form,
// so 75 is written as 75.0 and 1e16 as 1e+16.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(formatFloat(a.InexactFloat64())), nil
}

func formatFloat(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
