package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zerolag/zerolag/pkg/zerolag/collector"
	"github.com/zerolag/zerolag/pkg/zerolag/report"
	"github.com/zerolag/zerolag/pkg/zerolag/scoring"
)

// scanCompleteMsg carries the finished report back into the event loop.
type scanCompleteMsg struct {
	doc *report.Report
	err error
}

// exportDoneMsg is sent after the report files have been written.
type exportDoneMsg struct {
	dir string
	err error
}

func lipglossSpinnerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(primaryColor)
}

// startScan collects a snapshot and scores it off the UI goroutine.
func (m Model) startScan() tea.Cmd {
	mode := m.mode
	opts := m.opts.Collector

	return func() tea.Msg {
		ctx, cancel := scanContext()
		defer cancel()

		logger.Info("scan started", "mode", mode)

		snap := collector.New(opts).Collect(ctx)
		profile := scoring.ProfileFor(mode)
		result := scoring.Score(snap, profile)
		recs := scoring.Recommend(snap, profile)

		doc := report.New(snap, result, recs)
		logger.Info("scan finished", "score", result.Score, "band", result.Band)

		return scanCompleteMsg{doc: doc}
	}
}

// exportReports writes the JSON, Markdown, and PDF files for the
// current results.
func (m Model) exportReports() tea.Cmd {
	doc := m.results.doc
	dir := m.opts.OutputDir

	return func() tea.Msg {
		paths, err := report.WriteFiles(dir, doc)
		if err != nil {
			logger.Error("export failed", "error", err)
			return exportDoneMsg{err: err}
		}
		logger.Info("reports exported", "dir", dir, "files", len(paths))
		return exportDoneMsg{dir: dir}
	}
}

func (m Model) scanningView() string {
	title := titleStyle.Render("zerolag")
	line := fmt.Sprintf("%s Scanning host (%s profile)...", m.spinner.View(), m.mode)
	hint := mutedTextStyle.Render("q to quit")

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", line, "", hint)
	box := outerBoxStyle.Render(content)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
