package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/visual-poker/pokerxl/internal/model"
	"github.com/visual-poker/pokerxl/internal/sheet"
)

// datePrefix matches a day-first date at the start of a text cell.
var datePrefix = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`)

// SkippedRow records a data row whose date cell was present but unreadable.
type SkippedRow struct {
	Row   int // 1-based row number in the spreadsheet
	Value string
}

// Stats describes one pass over the data region.
type Stats struct {
	Scanned int // rows examined, including skipped ones
	Valid   int
	Skipped []SkippedRow
}

// Sessions converts the data region (the sheet with HeaderRows already
// skipped) into sessions. The scan ends at the first row with an empty date
// cell; a row with a non-empty date that does not read as DD/MM/YYYY is
// skipped and the scan goes on.
func Sessions(data *sheet.Sheet) ([]model.Session, Stats, error) {
	var (
		sessions []model.Session
		stats    Stats
	)

	for r := 0; r < data.Rows(); r++ {
		dateCell := data.Cell(r, colDate)
		if dateCell.IsEmpty() {
			break
		}
		stats.Scanned++

		date, ok := sessionDate(dateCell)
		if !ok {
			stats.Skipped = append(stats.Skipped, SkippedRow{
				Row:   r + HeaderRows + 1,
				Value: dateCell.String(),
			})
			continue
		}

		sessions = append(sessions, model.Session{
			Date:    date,
			Gains:   Coerce(data.Cell(r, colGains)),
			Games:   Coerce(data.Cell(r, colGames)).IntPart(),
			Rake:    Coerce(data.Cell(r, colRake)),
			Balance: Coerce(data.Cell(r, colBalance)),
		})
	}
	stats.Valid = len(sessions)

	if len(sessions) == 0 {
		return nil, stats, fmt.Errorf("%w in sheet %q (%d rows examined)", ErrNoSessions, data.Name, stats.Scanned)
	}
	return sessions, stats, nil
}

func sessionDate(c sheet.Cell) (string, bool) {
	if c.Kind == sheet.KindDate {
		return c.Time.Format(model.DateLayout), true
	}
	s := strings.TrimSpace(c.String())
	if !datePrefix.MatchString(s) {
		return "", false
	}
	return s, true
}
