package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visual-poker/pokerxl/internal/extract"
	"github.com/visual-poker/pokerxl/internal/model"
	"github.com/visual-poker/pokerxl/internal/sheet"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func fixture() *model.Extraction {
	return &model.Extraction{
		PlayerName:    "João <Ana>",
		CurrentMakeup: dec("75"),
		Sessions: []model.Session{
			{Date: "01/01/2024", Gains: dec("100"), Games: 10, Rake: dec("5"), Balance: dec("100")},
			{Date: "02/01/2024", Gains: dec("-50.5"), Games: 8, Rake: dec("5.25"), Balance: dec("49.5")},
		},
	}
}

func TestEncode_Shape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, NewDocument(fixture())))

	want := `{
  "jogador": "João <Ana>",
  "makeupAtual": 75.0,
  "sessoes": [
    {
      "Data": "01/01/2024",
      "Ganhos": 100.0,
      "Jogos": 10,
      "Rake": 5.0,
      "Saldo": 100.0
    },
    {
      "Data": "02/01/2024",
      "Ganhos": -50.5,
      "Jogos": 8,
      "Rake": 5.25,
      "Saldo": 49.5
    }
  ]
}`
	assert.Equal(t, want, buf.String())
}

func TestEncode_NumbersAreNative(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, NewDocument(fixture())))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.InDelta(t, 75.0, doc["makeupAtual"], 1e-9)

	sessions := doc["sessoes"].([]any)
	require.Len(t, sessions, 2)
	first := sessions[0].(map[string]any)
	assert.InDelta(t, 10.0, first["Jogos"], 1e-9)
	assert.Equal(t, "01/01/2024", first["Data"])
}

func TestNewDocument_EmptySessionsIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, NewDocument(&model.Extraction{PlayerName: "x"})))
	assert.Contains(t, buf.String(), `"sessoes": []`)
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{75, "75.0"},
		{-50, "-50.0"},
		{1.23456, "1.23456"},
		{0.1, "0.1"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1234567.89, "1234567.89"},
		{1e16, "1e+16"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatFloat(tt.in), "formatFloat(%v)", tt.in)
	}
}

func TestFileWriter_CreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app", "data.json")
	require.NoError(t, FileWriter{Path: path}.Write(NewDocument(fixture())))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"makeupAtual": 75.0`)
}

func TestEncode_ExtremeCellValues(t *testing.T) {
	ex := &model.Extraction{
		PlayerName:    "Ana",
		CurrentMakeup: extract.Coerce(sheet.Text("1e400")),
		Sessions: []model.Session{{
			Date:    "01/01/2024",
			Gains:   extract.Coerce(sheet.Text("-1e999999")),
			Rake:    extract.Coerce(sheet.Text("1e-400")),
			Balance: extract.Coerce(sheet.Text("1e20000000")),
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, NewDocument(ex)))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.InDelta(t, 1400.0, doc["makeupAtual"], 1e-9)
}
