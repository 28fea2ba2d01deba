package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#06B6D4") // Cyan
	Success   = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Danger    = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray
	Fg        = lipgloss.Color("#F9FAFB") // Light
	Border    = lipgloss.Color("#374151") // Border gray
	Selected  = lipgloss.Color("#4F46E5") // Indigo
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	ActivePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Primary).
				Padding(0, 1)

	ItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	SelectedItemStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Selected).
				Foreground(Fg)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	TrackedBadge   = lipgloss.NewStyle().Foreground(Success).Render("●")
	UntrackedBadge = lipgloss.NewStyle().Foreground(Muted).Render("○")

	infoPrefix  = lipgloss.NewStyle().Bold(true).Foreground(Secondary).Render("INFO:")
	warnPrefix  = lipgloss.NewStyle().Bold(true).Foreground(Warning).Render("WARN:")
	errorPrefix = lipgloss.NewStyle().Bold(true).Foreground(Danger).Render("ERROR:")
)

// Info prints an informational message to stdout.
func Info(format string, args ...any) {
	fmt.Printf("%s %s\n", infoPrefix, fmt.Sprintf(format, args...))
}

// Warn prints a warning to stdout.
func Warn(format string, args ...any) {
	fmt.Printf("%s %s\n", warnPrefix, fmt.Sprintf(format, args...))
}

// Error prints an error to stderr.
func Error(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorPrefix, fmt.Sprintf(format, args...))
}
