package convert

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visual-poker/pokerxl/internal/export"
	"github.com/visual-poker/pokerxl/internal/extract"
	"github.com/visual-poker/pokerxl/internal/sheet"
	"github.com/visual-poker/pokerxl/internal/summary"
)

// memWriter keeps written documents in memory.
type memWriter struct {
	docs []export.Document
	err  error
}

func (m *memWriter) Write(doc export.Document) error {
	if m.err != nil {
		return m.err
	}
	m.docs = append(m.docs, doc)
	return nil
}

type dataRow struct {
	date          sheet.Cell
	gains, games  float64
	rake, balance float64
}

func buildSheet(player string, makeup float64, rows ...dataRow) *sheet.Sheet {
	grid := make([][]sheet.Cell, extract.HeaderRows)
	for i := range grid {
		grid[i] = make([]sheet.Cell, 9)
	}
	grid[2][0] = sheet.Text(player)
	grid[2][8] = sheet.Float(makeup)
	for _, r := range rows {
		cells := make([]sheet.Cell, 9)
		cells[0] = r.date
		cells[2] = sheet.Float(r.gains)
		cells[3] = sheet.Float(r.games)
		cells[5] = sheet.Float(r.rake)
		cells[8] = sheet.Float(r.balance)
		grid = append(grid, cells)
	}
	return sheet.New("Planilha1", grid)
}

func threeRowSheet() *sheet.Sheet {
	return buildSheet("Ana Souza", 75.0,
		dataRow{sheet.Text("01/01/2024"), 100, 10, 5, 100},
		dataRow{sheet.Text("02/01/2024"), -50, 8, 5, 50},
		dataRow{sheet.Text("03/01/2024"), 25, 12, 5, 9999},
	)
}

func newService(out Writer, confirm ConfirmFunc) (*Service, *logtest.Hook) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return NewService(out, confirm, log), hook
}

func TestRun_EndToEnd(t *testing.T) {
	out := &memWriter{}
	var seen *Result
	svc, _ := newService(out, func(res *Result) (bool, error) {
		seen = res
		return true, nil
	})

	res, err := svc.Run(threeRowSheet())
	require.NoError(t, err)
	require.NotNil(t, seen, "confirm must see the result before writing")
	assert.True(t, res.Saved)

	assert.Equal(t, 3, res.Summary.Sessions)
	assert.Equal(t, int64(30), res.Summary.TotalGames)
	assert.True(t, decimal.NewFromInt(15).Equal(res.Summary.TotalRake))
	assert.True(t, decimal.NewFromInt(75).Equal(res.Summary.TotalGains))
	assert.Equal(t, "66.7", res.Summary.WinRate.StringFixed(1))

	require.Len(t, out.docs, 1)
	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, out.docs[0]))
	assert.Contains(t, buf.String(), `"makeupAtual": 75.0`)
	assert.Contains(t, buf.String(), `"jogador": "Ana Souza"`)
	assert.Len(t, out.docs[0].Sessions, 3)
}

func TestRun_FinalBalanceIsHeaderMakeup(t *testing.T) {
	out := &memWriter{}
	svc, _ := newService(out, Always(true))

	res, err := svc.Run(threeRowSheet())
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(75).Equal(res.Summary.FinalBalance))
	assert.True(t, decimal.NewFromInt(75).Equal(out.docs[0].CurrentMakeup.Decimal))
}

func TestRun_WarningsDoNotBlockSave(t *testing.T) {
	out := &memWriter{}
	svc, hook := newService(out, Always(true))

	res, err := svc.Run(threeRowSheet())
	require.NoError(t, err)
	_, rakeWarned := summary.Find(res.Warnings, summary.CheckRake)
	assert.True(t, rakeWarned)
	assert.True(t, res.Saved)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Data["check"] == summary.CheckRake {
			warned = true
		}
	}
	assert.True(t, warned, "rake warning should be logged")
}

func TestRun_Declined(t *testing.T) {
	out := &memWriter{}
	svc, _ := newService(out, Always(false))

	res, err := svc.Run(threeRowSheet())
	require.NoError(t, err)
	assert.False(t, res.Saved)
	assert.Empty(t, out.docs)
}

func TestRun_NoSessions(t *testing.T) {
	out := &memWriter{}
	called := false
	svc, _ := newService(out, func(*Result) (bool, error) {
		called = true
		return true, nil
	})

	_, err := svc.Run(buildSheet("Ana", 0, dataRow{date: sheet.Text("nope")}))
	require.Error(t, err)
	assert.ErrorIs(t, err, extract.ErrNoSessions)
	assert.False(t, called)
	assert.Empty(t, out.docs)
}

func TestRun_FileStructure(t *testing.T) {
	out := &memWriter{}
	svc, _ := newService(out, Always(true))

	_, err := svc.Run(sheet.New("tiny", [][]sheet.Cell{{sheet.Text("x")}}))
	require.Error(t, err)
	assert.ErrorIs(t, err, extract.ErrFileStructure)
	assert.Empty(t, out.docs)
}

func TestRun_SkippedRowsLogged(t *testing.T) {
	svc, hook := newService(&memWriter{}, Always(false))

	s := buildSheet("Ana", 0,
		dataRow{sheet.Text("01/01/2024"), 1, 1, 1, 1},
		dataRow{sheet.Text("32-13-2024"), 1, 1, 1, 1},
	)
	res, err := svc.Run(s)
	require.NoError(t, err)
	require.Len(t, res.Stats.Skipped, 1)

	var found bool
	for _, e := range hook.AllEntries() {
		if e.Message == "skipping row with unreadable date" {
			found = true
			assert.Equal(t, 9, e.Data["row"])
			assert.Equal(t, "32-13-2024", e.Data["value"])
		}
	}
	assert.True(t, found)
}

func TestRun_ConfirmError(t *testing.T) {
	out := &memWriter{}
	svc, _ := newService(out, func(*Result) (bool, error) {
		return false, errors.New("tty gone")
	})

	res, err := svc.Run(threeRowSheet())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
	require.NotNil(t, res)
	assert.False(t, res.Saved)
	assert.Empty(t, out.docs)
}

func TestRun_WriteError(t *testing.T) {
	out := &memWriter{err: errors.New("read-only")}
	svc, _ := newService(out, Always(true))

	res, err := svc.Run(threeRowSheet())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving document")
	assert.False(t, res.Saved)
}
