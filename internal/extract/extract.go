package extract

import (
	"github.com/visual-poker/pokerxl/internal/model"
	"github.com/visual-poker/pokerxl/internal/sheet"
)

// Extract reads the header and all sessions from a raw sheet.
func Extract(s *sheet.Sheet) (*model.Extraction, Stats, error) {
	h, err := ReadHeader(s)
	if err != nil {
		return nil, Stats{}, err
	}

	sessions, stats, err := Sessions(s.Skip(HeaderRows))
	if err != nil {
		return nil, stats, err
	}

	return &model.Extraction{
		PlayerName:    h.PlayerName,
		CurrentMakeup: h.CurrentMakeup,
		Sessions:      sessions,
	}, stats, nil
}
