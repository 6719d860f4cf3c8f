// Package sheet holds an in-memory, typed copy of one worksheet.
package sheet

// Sheet is a rectangular grid of cells. Rows may be ragged; cells past the end
// of a short row but inside the grid width read as empty.
type Sheet struct {
	Name  string
	rows  [][]Cell
	width int
}

// New builds a Sheet from rows of cells. The width is the longest row.
func New(name string, rows [][]Cell) *Sheet {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	return &Sheet{Name: name, rows: rows, width: width}
}

// Rows returns the number of rows in the grid.
func (s *Sheet) Rows() int { return len(s.rows) }

// Cols returns the grid width.
func (s *Sheet) Cols() int { return s.width }

// Contains reports whether (row, col) lies inside the grid.
func (s *Sheet) Contains(row, col int) bool {
	return row >= 0 && col >= 0 && row < len(s.rows) && col < s.width
}

// Cell returns the cell at (row, col), zero-indexed. Out of range is empty.
func (s *Sheet) Cell(row, col int) Cell {
	if row < 0 || row >= len(s.rows) || col < 0 {
		return Cell{}
	}
	r := s.rows[row]
	if col >= len(r) {
		return Cell{}
	}
	return r[col]
}

// Skip returns a view of the sheet without its first n rows. The width is kept.
func (s *Sheet) Skip(n int) *Sheet {
	if n > len(s.rows) {
		n = len(s.rows)
	}
	if n < 0 {
		n = 0
	}
	return &Sheet{Name: s.Name, rows: s.rows[n:], width: s.width}
}
