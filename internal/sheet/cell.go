package sheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies what a spreadsheet cell holds.
type Kind int

const (
	KindEmpty Kind = iota
	KindNumber
	KindText
	KindBool
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// Cell is a single typed value read from a worksheet.
type Cell struct {
	Kind   Kind
	Text   string          // set for KindText
	Number decimal.Decimal // set for KindNumber and KindBool (1 or 0)
	Time   time.Time       // set for KindDate
}

// Empty returns a cell with no value.
func Empty() Cell { return Cell{} }

// Text returns a text cell. An empty string is an empty cell.
func Text(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: KindText, Text: s}
}

// Number returns a numeric cell.
func Number(d decimal.Decimal) Cell {
	return Cell{Kind: KindNumber, Number: d}
}

// Float returns a numeric cell from a float64.
func Float(f float64) Cell {
	return Number(decimal.NewFromFloat(f))
}

// Bool returns a boolean cell.
func Bool(b bool) Cell {
	if b {
		return Cell{Kind: KindBool, Number: decimal.NewFromInt(1)}
	}
	return Cell{Kind: KindBool, Number: decimal.Zero}
}

// Date returns a date-typed cell.
func Date(t time.Time) Cell {
	return Cell{Kind: KindDate, Time: t}
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool { return c.Kind == KindEmpty }

// String renders the cell the way it reads as plain text.
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return c.Number.String()
	case KindBool:
		if c.Number.IsZero() {
			return "False"
		}
		return "True"
	case KindDate:
		return c.Time.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}
