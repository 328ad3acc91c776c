package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Param is one labelled value in a header or result box.
// Slices of Param keep the order the caller chose.
type Param struct {
	Key   string
	Value string
}

// Header is the banner a command prints before its output: an upper-cased
// title, the command line that produced it and the parameters in effect.
type Header struct {
	Title   string
	Command string
	Params  []Param
	Width   int
}

// NewHeader creates a header sized to the current terminal.
func NewHeader(title, command string, params ...Param) *Header {
	return &Header{Title: title, Command: command, Params: params, Width: GetTerminalWidth()}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := clampWidth(h.Width)

	sections := []string{
		HeaderTitleStyle.Render(strings.ToUpper(h.Title)),
		HeaderCommandStyle.Render(h.Command),
	}
	if len(h.Params) > 0 {
		sections = append(sections,
			RenderHorizontalDivider(max(width-6, 10), "─"),
			renderParams(h.Params, HeaderParamKeyStyle, HeaderParamValueStyle))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}

// renderParams lays params out one per line with the values aligned.
// Keys are measured in display cells so wide glyphs line up too.
func renderParams(params []Param, keyStyle, valueStyle lipgloss.Style) string {
	keyWidth := 0
	for _, p := range params {
		keyWidth = max(keyWidth, runewidth.StringWidth(p.Key)+1)
	}

	lines := make([]string, len(params))
	for i, p := range params {
		key := keyStyle.Render(runewidth.FillRight(p.Key+":", keyWidth))
		lines[i] = key + " " + valueStyle.Render(p.Value)
	}
	return strings.Join(lines, "\n")
}
