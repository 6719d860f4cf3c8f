package model

import (
	"github.com/shopspring/decimal"
)

// DateLayout is the day-first layout session dates are stored in.
const DateLayout = "02/01/2006"

// Session is one dated row of the makeup spreadsheet.
type Session struct {
	Date    string          // DD/MM/YYYY
	Gains   decimal.Decimal // negative = loss
	Games   int64
	Rake    decimal.Decimal
	Balance decimal.Decimal // running makeup at this row; not used for totals
}

// IsPositive reports whether the session closed with a profit.
func (s Session) IsPositive() bool {
	return s.Gains.IsPositive()
}

// Extraction is everything read from one spreadsheet.
type Extraction struct {
	PlayerName    string
	CurrentMakeup decimal.Decimal // authoritative final balance, read from the header
	Sessions      []Session       // sheet row order
}
