package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/numedit/internal/ui"
	"github.com/muurk/numedit/internal/version"
)

// AppName is shown in the title bar
const AppName = "NUMEDIT"

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

var (
	// TitleStyle is for the title bar
	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Bold(true).
			MarginBottom(1)

	// ModeStyle is for notation names in the mode strip
	ModeStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			PaddingRight(1)

	// ActiveModeStyle highlights the current notation
	ActiveModeStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor).
			Bold(true).
			Underline(true).
			PaddingRight(1)

	// FieldStyle frames the edit field
	FieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.PrimaryColor).
			Padding(0, 1).
			MarginTop(1).
			MarginBottom(1)

	// StatusInfoStyle is for neutral status messages
	StatusInfoStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor)

	// StatusOKStyle is for successful actions
	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ui.SuccessColor)

	// StatusErrorStyle is for rejected edits and steps
	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ui.ErrorColor).
				Bold(true)

	// HelpStyle is for the key help footer
	HelpStyle = lipgloss.NewStyle().
			MarginTop(1)
)
