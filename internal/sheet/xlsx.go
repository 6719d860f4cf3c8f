package sheet

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ErrNotFound is returned by Open when the workbook file does not exist.
var ErrNotFound = errors.New("workbook not found")

// ErrNoSheets is returned when a workbook has no worksheet to read.
var ErrNoSheets = errors.New("workbook has no sheets")

// Open reads the first worksheet of the .xlsx file at path.
func Open(path string) (*Sheet, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	s, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Read reads the first worksheet of an .xlsx stream.
func Read(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	return load(f)
}

func load(f *excelize.File) (*Sheet, error) {
	name := f.GetSheetName(0)
	if name == "" {
		return nil, ErrNoSheets
	}

	raw, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", name, err)
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	l := &loader{f: f, sheet: name, date1904: date1904, dateStyles: make(map[int]bool)}
	rows := make([][]Cell, len(raw))
	for r, values := range raw {
		cells := make([]Cell, len(values))
		for c, v := range values {
			cell, err := l.cell(r, c, v)
			if err != nil {
				return nil, err
			}
			cells[c] = cell
		}
		rows[r] = cells
	}
	return New(name, rows), nil
}

type loader struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool // style index -> has a date number format
}

func (l *loader) cell(row, col int, raw string) (Cell, error) {
	if raw == "" {
		return Cell{}, nil
	}

	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return Cell{}, fmt.Errorf("cell (%d, %d): %w", row, col, err)
	}

	typ, err := l.f.GetCellType(l.sheet, axis)
	if err != nil {
		return Cell{}, fmt.Errorf("cell %s type: %w", axis, err)
	}

	switch typ {
	case excelize.CellTypeBool:
		return Bool(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return Date(t), nil
		}
		return Text(raw), nil
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		return l.number(axis, raw)
	default:
		// Shared and inline strings, cached formula strings, error values.
		return Text(raw), nil
	}
}

// number reads a numeric cell. Values outside the float64 range are kept as
// text so later coercion treats them like any other malformed input.
func (l *loader) number(axis, raw string) (Cell, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return Text(raw), nil
	}

	isDate, err := l.hasDateFormat(axis)
	if err != nil {
		return Cell{}, err
	}
	if isDate {
		if t, err := excelize.ExcelDateToTime(f, l.date1904); err == nil {
			return Date(t), nil
		}
	}
	return Number(decimal.NewFromFloat(f)), nil
}

func (l *loader) hasDateFormat(axis string) (bool, error) {
	idx, err := l.f.GetCellStyle(l.sheet, axis)
	if err != nil {
		return false, fmt.Errorf("cell %s style: %w", axis, err)
	}
	if isDate, ok := l.dateStyles[idx]; ok {
		return isDate, nil
	}

	style, err := l.f.GetStyle(idx)
	if err != nil {
		return false, fmt.Errorf("style %d: %w", idx, err)
	}
	isDate := style != nil && (builtinDateFormat(style.NumFmt) ||
		(style.CustomNumFmt != nil && IsDateFormatCode(*style.CustomNumFmt)))
	l.dateStyles[idx] = isDate
	return isDate, nil
}

// builtinDateFormat reports whether a built-in number format id renders a date or time.
func builtinDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

var (
	quotedLiteral = regexp.MustCompile(`"[^"]*"`)
	bracketed     = regexp.MustCompile(`\[[^\]]*\]`)
	escapedChar   = regexp.MustCompile(`\\.`)
	dateToken     = regexp.MustCompile(`[dmyhsDMYHS]`)
)

// IsDateFormatCode reports whether a custom number format code renders a date or time.
func IsDateFormatCode(code string) bool {
	if code == "" || strings.EqualFold(code, "general") || code == "@" {
		return false
	}
	// Only the positive section decides.
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}
	code = quotedLiteral.ReplaceAllString(code, "")
	code = bracketed.ReplaceAllString(code, "")
	code = escapedChar.ReplaceAllString(code, "")
	return dateToken.MatchString(code)
}

func parseISODate(raw string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
