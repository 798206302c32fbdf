package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zerolag/zerolag/pkg/zerolag/report"
	"github.com/zerolag/zerolag/pkg/zerolag/scoring"
)

// Console summary styles.
var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#7D56F4"))

	bandStyles = map[scoring.Band]lipgloss.Style{
		scoring.BandExcellent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#28A745")),
		scoring.BandGood:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D9FF")),
		scoring.BandFair:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFC107")),
		scoring.BandPoor:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DC3545")),
	}

	priorityStyles = map[scoring.Priority]lipgloss.Style{
		scoring.PriorityHigh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DC3545")),
		scoring.PriorityMedium: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E67E22")),
		scoring.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#2E86C1")),
	}

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// renderSummary renders the scan outcome for the console.
func renderSummary(doc *report.Report) string {
	var b strings.Builder

	band := bandStyles[doc.Score.Band]
	fmt.Fprintf(&b, "\n%s  %s\n",
		summaryTitleStyle.Render("ZeroLag scan complete"),
		mutedStyle.Render(fmt.Sprintf("(%s mode)", doc.Mode)))
	fmt.Fprintf(&b, "Performance Score: %s\n\n",
		band.Render(fmt.Sprintf("%d / 100  %s", doc.Score.Score, doc.Score.Band)))

	if len(doc.Score.Breakdown) > 0 {
		fmt.Fprintf(&b, "%s\n", summaryTitleStyle.Render("Penalties"))
		for _, p := range doc.Score.Breakdown {
			fmt.Fprintf(&b, "  %-8s -%.1f  %s\n", p.Tag, p.Penalty, p.Reason)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s\n", summaryTitleStyle.Render("Recommendations"))
	for _, rec := range doc.Recommendations {
		style := priorityStyles[rec.Priority]
		fmt.Fprintf(&b, "  %s %s\n", style.Render("["+rec.Priority.String()+"]"), rec.Title)
		fmt.Fprintf(&b, "      %s\n", mutedStyle.Render(rec.Action))
	}
	return b.String()
}
