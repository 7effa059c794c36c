package ui

import "github.com/charmbracelet/lipgloss"

// ANSI palette so the table degrades cleanly on basic terminals.
var (
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Background(lipgloss.Color("4"))
	sortHdrStyle  = headerStyle.Reverse(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	pausedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	critStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)
)

// busyStyle colors a %busy cell by load.
func busyStyle(pct float64) lipgloss.Style {
	switch {
	case pct > 80:
		return critStyle
	case pct > 50:
		return warnStyle
	default:
		return okStyle
	}
}
