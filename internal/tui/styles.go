package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	priorityHighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	priorityMediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	priorityLowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	boxChecked   = "☑"
	boxUnchecked = "☐"
)

// priorityBadge renders a colored marker for the given priority level.
func priorityBadge(priority string) string {
	switch priority {
	case "high":
		return priorityHighStyle.Render("!!!")
	case "medium":
		return priorityMediumStyle.Render(" !!")
	default:
		return priorityLowStyle.Render("  !")
	}
}
