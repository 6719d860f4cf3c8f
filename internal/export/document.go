// Package export builds and writes the JSON document consumed by the
// dashboard. Field names are a fixed contract.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/visual-poker/pokerxl/internal/model"
)

// Document is the root of data.json.
type Document struct {
	Player        string    `json:"jogador"`
	CurrentMakeup Amount    `json:"makeupAtual"`
	Sessions      []Session `json:"sessoes"`
}

// Session is one entry of the "sessoes" array.
type Session struct {
	Date    string `json:"Data"`
	Gains   Amount `json:"Ganhos"`
	Games   int64  `json:"Jogos"`
	Rake    Amount `json:"Rake"`
	Balance Amount `json:"Saldo"`
}

// NewDocument converts an extraction into its output shape.
func NewDocument(ex *model.Extraction) Document {
	sessions := make([]Session, 0, len(ex.Sessions))
	for _, s := range ex.Sessions {
		sessions = append(sessions, Session{
			Date:    s.Date,
			Gains:   NewAmount(s.Gains),
			Games:   s.Games,
			Rake:    NewAmount(s.Rake),
			Balance: NewAmount(s.Balance),
		})
	}
	return Document{
		Player:        ex.PlayerName,
		CurrentMakeup: NewAmount(ex.CurrentMakeup),
		Sessions:      sessions,
	}
}

// Encode writes doc as two-space indented JSON without HTML escaping and
// without a trailing newline.
func Encode(w io.Writer, doc Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if _, err := w.Write(bytes.TrimRight(buf.Bytes(), "\n")); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// FileWriter writes documents to a fixed path.
type FileWriter struct {
	Path string
}

// Write encodes doc to w.Path, creating the parent directory when needed.
func (w FileWriter) Write(doc Document) error {
	if dir := filepath.Dir(w.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return err
	}
	if err := os.WriteFile(w.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", w.Path, err)
	}
	return nil
}
