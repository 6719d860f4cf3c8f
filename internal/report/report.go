// Package report renders the pre-export summary shown to the user.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/visual-poker/pokerxl/internal/convert"
	"github.com/visual-poker/pokerxl/internal/model"
	"github.com/visual-poker/pokerxl/internal/summary"
)

// PreviewRows is how many sessions the preview table shows.
const PreviewRows = 5

var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorYellow = lipgloss.Color("#fabd2f")
	colorRed    = lipgloss.Color("#fb4934")
	colorDim    = lipgloss.Color("#928374")
	colorHeader = lipgloss.Color("#fe8019")

	styleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	styleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	styleRed    = lipgloss.NewStyle().Foreground(colorRed)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
)

var printer = message.NewPrinter(language.English)

// Money formats d as "R$ 1,234.56".
func Money(d decimal.Decimal) string {
	return printer.Sprintf("R$ %.2f", d.InexactFloat64())
}

// Count formats n with thousands separators.
func Count(n int64) string {
	return printer.Sprintf("%d", n)
}

// Format renders the summary, the per-check results and a short preview of
// the first sessions.
func Format(res *convert.Result) string {
	var b strings.Builder

	ex := res.Extraction
	s := res.Summary

	b.WriteString(styleHeader.Render("PLAYER") + "  " + ex.PlayerName + "\n\n")

	b.WriteString(styleHeader.Render("SUMMARY") + "\n")
	writeField(&b, "Sessions", Count(int64(s.Sessions)))
	writeField(&b, "Gross profit", signed(s.TotalGains))
	writeField(&b, "Games", Count(s.TotalGames))
	writeField(&b, "Rake", Money(s.TotalRake))
	writeField(&b, "Current makeup", Money(s.FinalBalance))
	if n := len(res.Stats.Skipped); n > 0 {
		writeField(&b, "Skipped rows", styleYellow.Render(fmt.Sprintf("%d", n)))
	}
	b.WriteString("\n")

	b.WriteString(styleHeader.Render("STATISTICS") + "\n")
	writeField(&b, "Positive sessions", fmt.Sprintf("%d (%s%%)", s.PositiveSessions, s.WinRate.StringFixed(1)))
	writeField(&b, "Average per game", signed(s.AvgPerGame))
	writeField(&b, "Average per session", signed(s.AvgPerSession))
	b.WriteString("\n")

	b.WriteString(styleHeader.Render("CHECKS") + "\n")
	b.WriteString(formatChecks(s, res.Warnings))
	b.WriteString("\n")

	b.WriteString(styleHeader.Render("FIRST SESSIONS") + "\n")
	b.WriteString(previewTable(ex.Sessions))

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", styleDim.Render(fmt.Sprintf("%-20s", label)), value)
}

func signed(d decimal.Decimal) string {
	switch {
	case d.IsPositive():
		return styleGreen.Render(Money(d))
	case d.IsNegative():
		return styleRed.Render(Money(d))
	default:
		return Money(d)
	}
}

func formatChecks(s summary.Summary, warns []summary.Warning) string {
	var b strings.Builder
	checks := []struct {
		check summary.Check
		ok    string
	}{
		{summary.CheckGames, "Games: " + Count(s.TotalGames)},
		{summary.CheckRake, "Rake: " + Money(s.TotalRake)},
		{summary.CheckProfit, "Profit: " + Money(s.TotalGains)},
	}
	for _, c := range checks {
		if w, failed := summary.Find(warns, c.check); failed {
			b.WriteString("  " + styleRed.Render("✗ "+w.Message) + "\n")
			continue
		}
		b.WriteString("  " + styleGreen.Render("✓") + " " + c.ok + "\n")
	}
	return b.String()
}

func previewTable(sessions []model.Session) string {
	n := len(sessions)
	if n > PreviewRows {
		n = PreviewRows
	}
	rows := make([][]string, 0, n)
	for _, s := range sessions[:n] {
		rows = append(rows, []string{
			s.Date,
			signed(s.Gains),
			Count(s.Games),
			Money(s.Rake),
			Money(s.Balance),
		})
	}
	out := renderTable([]string{"Date", "Gains", "Games", "Rake", "Balance"}, rows)
	if more := len(sessions) - n; more > 0 {
		out += styleDim.Render(fmt.Sprintf("  … %d more", more)) + "\n"
	}
	return out
}

// renderTable pads columns to their widest visible cell.
func renderTable(headers []string, rows [][]string) string {
	const colGap = 2

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		b.WriteString("  ")
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(style(cell))
			if i < len(headers)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return styleHeader.Render(s) })
	sep := make([]string, len(headers))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	writeRow(sep, func(s string) string { return styleDim.Render(s) })
	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}
