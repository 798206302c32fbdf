package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zerolag/zerolag/pkg/zerolag/report"
	"github.com/zerolag/zerolag/pkg/zerolag/types"
)

// resultsModel renders the finished report and handles scrolling.
type resultsModel struct {
	doc *report.Report
	err error

	offset int
	width  int
	height int
}

func newResultsModel(doc *report.Report, err error, width, height int) resultsModel {
	return resultsModel{doc: doc, err: err, width: width, height: height}
}

func (r *resultsModel) setSize(width, height int) {
	r.width = width
	r.height = height
}

func (r *resultsModel) pageSize() int {
	if r.height > 8 {
		return r.height - 8
	}
	return 10
}

func (r *resultsModel) scroll(delta int) {
	r.offset += delta
	if r.offset < 0 {
		r.offset = 0
	}
}

func (r *resultsModel) scrollTop() {
	r.offset = 0
}

func (r *resultsModel) view(mode types.Mode, exportDir string, exportErr error) string {
	if r.err != nil {
		return outerBoxStyle.Render(errorTextStyle.Render("scan failed: " + r.err.Error()))
	}
	if r.doc == nil {
		return outerBoxStyle.Render(mutedTextStyle.Render("no results"))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("zerolag"))
	b.WriteString(mutedTextStyle.Render(fmt.Sprintf("  %s profile · %s", mode, r.doc.System.Timestamp)))
	b.WriteString("\n\n")

	score := r.doc.Score
	b.WriteString(fmt.Sprintf("Score: %s / 100  %s\n",
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d", score.Score)),
		bandStyle(score.Band).Render(string(score.Band))))
	b.WriteString("\n")

	if len(score.Breakdown) > 0 {
		b.WriteString(titleStyle.Render("Penalties"))
		b.WriteString("\n")
		for _, p := range score.Breakdown {
			b.WriteString(fmt.Sprintf("  %-8s %6.1f  %s\n", p.Tag, p.Penalty, mutedTextStyle.Render(p.Reason)))
		}
	} else {
		b.WriteString(successTextStyle.Render("No penalties. Everything looks healthy."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Recommendations"))
	b.WriteString("\n")
	for _, rec := range r.doc.Recommendations {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			priorityStyle(rec.Priority).Render("["+rec.Priority.String()+"]"),
			rec.Title))
		b.WriteString(mutedTextStyle.Render("    " + rec.Why))
		b.WriteString("\n")
		b.WriteString(mutedTextStyle.Render("    ↳ " + rec.Action))
		b.WriteString("\n")
	}

	body := clipLines(b.String(), r.offset, r.pageSize())

	var status string
	switch {
	case exportErr != nil:
		status = errorTextStyle.Render("export failed: " + exportErr.Error())
	case exportDir != "":
		status = successTextStyle.Render("Reports written to " + exportDir)
	}

	help := helpStyle.Render("r rescan · m toggle mode · e export · ↑/↓ scroll · q quit")

	sections := []string{body}
	if status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// clipLines returns at most max lines starting at offset, so long
// reports stay scrollable on short terminals.
func clipLines(s string, offset, max int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if offset >= len(lines) {
		offset = len(lines) - 1
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + max
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}
