// Package summary aggregates session totals and flags implausible results.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/visual-poker/pokerxl/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Summary holds the aggregates shown before export. None of it is written out.
type Summary struct {
	Sessions         int
	TotalGains       decimal.Decimal
	TotalGames       int64
	TotalRake        decimal.Decimal
	FinalBalance     decimal.Decimal // always the header makeup, never a row balance
	PositiveSessions int
	WinRate          decimal.Decimal // percentage, 0..100
	AvgPerGame       decimal.Decimal
	AvgPerSession    decimal.Decimal
}

// Summarize aggregates sessions. currentMakeup is taken as the final balance
// as-is.
func Summarize(sessions []model.Session, currentMakeup decimal.Decimal) Summary {
	s := Summary{
		Sessions:      len(sessions),
		TotalGains:    decimal.Zero,
		TotalRake:     decimal.Zero,
		FinalBalance:  currentMakeup,
		WinRate:       decimal.Zero,
		AvgPerGame:    decimal.Zero,
		AvgPerSession: decimal.Zero,
	}

	for _, sess := range sessions {
		s.TotalGains = s.TotalGains.Add(sess.Gains)
		s.TotalGames += sess.Games
		s.TotalRake = s.TotalRake.Add(sess.Rake)
		if sess.IsPositive() {
			s.PositiveSessions++
		}
	}

	if s.Sessions > 0 {
		n := decimal.NewFromInt(int64(s.Sessions))
		s.WinRate = decimal.NewFromInt(int64(s.PositiveSessions)).Div(n).Mul(hundred)
		s.AvgPerSession = s.TotalGains.Div(n)
	}
	if s.TotalGames > 0 {
		s.AvgPerGame = s.TotalGains.Div(decimal.NewFromInt(s.TotalGames))
	}
	return s
}

// Extraction summarizes a full extraction.
func Extraction(ex *model.Extraction) Summary {
	return Summarize(ex.Sessions, ex.CurrentMakeup)
}
