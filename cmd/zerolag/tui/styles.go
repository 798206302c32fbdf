// Package tui provides the interactive terminal front end for zerolag.
// It uses Charmbracelet's Bubble Tea, Lip Gloss, and Bubbles, and offers
// the same two operations as the CLI: run a scan and export the reports.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zerolag/zerolag/pkg/zerolag/scoring"
)

// Color palette for the TUI.
var (
	primaryColor = lipgloss.Color("#7D56F4")
	accentColor  = lipgloss.Color("#00D9FF")

	successColor = lipgloss.Color("#28A745")
	warningColor = lipgloss.Color("#FFC107")
	dangerColor  = lipgloss.Color("#DC3545")
	infoColor    = lipgloss.Color("#2E86C1")

	mutedColor  = lipgloss.Color("#666666")
	borderColor = lipgloss.Color("#333333")
)

var (
	// outerBoxStyle is the main container style.
	outerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	// titleStyle for main titles.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// mutedTextStyle for less important text.
	mutedTextStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// errorTextStyle for error messages.
	errorTextStyle = lipgloss.NewStyle().
			Foreground(dangerColor)

	// successTextStyle for success messages.
	successTextStyle = lipgloss.NewStyle().
				Foreground(successColor)

	// helpStyle for the key hint footer.
	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderTop(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(borderColor)
)

// bandStyle returns the style for a score band.
func bandStyle(b scoring.Band) lipgloss.Style {
	switch b {
	case scoring.BandExcellent:
		return lipgloss.NewStyle().Bold(true).Foreground(successColor)
	case scoring.BandGood:
		return lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	case scoring.BandFair:
		return lipgloss.NewStyle().Bold(true).Foreground(warningColor)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(dangerColor)
	}
}

// priorityStyle returns the style for a recommendation priority.
func priorityStyle(p scoring.Priority) lipgloss.Style {
	switch p {
	case scoring.PriorityHigh:
		return lipgloss.NewStyle().Bold(true).Foreground(dangerColor)
	case scoring.PriorityMedium:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E67E22"))
	default:
		return lipgloss.NewStyle().Foreground(infoColor)
	}
}
