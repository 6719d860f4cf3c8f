package extract

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/visual-poker/pokerxl/internal/sheet"
)

// Header holds the values read from the fixed header cells.
type Header struct {
	PlayerName    string
	CurrentMakeup decimal.Decimal
}

// ReadHeader reads the player name (A3) and current makeup (I3) from the raw
// sheet, before any rows are skipped.
func ReadHeader(s *sheet.Sheet) (Header, error) {
	if !s.Contains(headerRow, colPlayerName) || !s.Contains(headerRow, colCurrentMakeup) {
		return Header{}, fmt.Errorf("%w: header needs at least %d rows and %d columns, sheet %q has %d rows and %d columns",
			ErrFileStructure, headerRow+1, colCurrentMakeup+1, s.Name, s.Rows(), s.Cols())
	}

	return Header{
		PlayerName:    strings.TrimSpace(s.Cell(headerRow, colPlayerName).String()),
		CurrentMakeup: Coerce(s.Cell(headerRow, colCurrentMakeup)),
	}, nil
}
