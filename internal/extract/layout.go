// Package extract reads the player header and the session rows out of a
// makeup spreadsheet.
package extract

import "errors"

// Fixed cell layout of the makeup spreadsheet, zero-indexed.
const (
	// HeaderRows is the number of rows above the first session row.
	HeaderRows = 7

	headerRow        = 2 // row 3 in the sheet
	colPlayerName    = 0 // A3
	colCurrentMakeup = 8 // I3

	colDate    = 0 // A
	colGains   = 2 // C
	colGames   = 3 // D
	colRake    = 5 // F
	colBalance = 8 // I
)

var (
	// ErrFileStructure means the sheet is too small to hold the header cells.
	ErrFileStructure = errors.New("unexpected spreadsheet structure")
	// ErrNoSessions means no row produced a valid session.
	ErrNoSessions = errors.New("no valid sessions found")
)
