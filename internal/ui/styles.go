package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette shared by the CLI boxes and the interactive editor.
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // borders, active notation
	SuccessColor = lipgloss.Color("#43BF6D")
	ErrorColor   = lipgloss.Color("#FF5555")
	WarningColor = lipgloss.Color("#FFA500") // rejected steps
	MutedColor   = lipgloss.Color("#626262")
	TextColor    = lipgloss.Color("#FFFFFF")
)

// Width limits for boxed output.
const (
	MinTerminalWidth = 60
	MaxContentWidth  = 100
)

// Markers prefix result titles and mark the current row of a list.
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "⚠"
	CurrentMarker = "▸"
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// Header styles
var (
	HeaderTitleStyle      = fg(TextColor).Bold(true).PaddingLeft(2)
	HeaderCommandStyle    = fg(MutedColor).PaddingLeft(2)
	HeaderParamKeyStyle   = fg(MutedColor).PaddingLeft(2)
	HeaderParamValueStyle = fg(TextColor)
)

// Result box styles
var (
	SuccessTitleStyle = fg(SuccessColor).Bold(true)
	WarningTitleStyle = fg(WarningColor).Bold(true)
	ErrorTitleStyle   = fg(ErrorColor).Bold(true)
	ErrorMessageStyle = fg(ErrorColor)
	ResultKeyStyle    = fg(MutedColor)
	ResultValueStyle  = fg(TextColor)
	HintTitleStyle    = fg(MutedColor).Bold(true)
	HintItemStyle     = fg(MutedColor)
)

// Conversion table and meter styles
var (
	TableHeaderStyle   = fg(MutedColor).Bold(true)
	TableNotationStyle = fg(MutedColor)
	TableValueStyle    = fg(TextColor)
	// TableCurrentStyle highlights the row of the active notation
	TableCurrentStyle = fg(PrimaryColor).Bold(true)
	MeterLabelStyle   = fg(MutedColor)
)

// GetTerminalWidth returns the width of stdout, kept between
// MinTerminalWidth and MaxContentWidth. Non-terminals get the minimum.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth
	}
	return min(max(width, MinTerminalWidth), MaxContentWidth)
}

// IsTerminal reports whether stdin and stdout are both interactive terminals.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// RenderHorizontalDivider repeats char width times in the primary colour.
func RenderHorizontalDivider(width int, char string) string {
	return fg(PrimaryColor).Render(strings.Repeat(char, width))
}

func clampWidth(width int) int {
	return max(width, MinTerminalWidth)
}
