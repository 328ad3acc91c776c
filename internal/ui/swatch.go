package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const swatchCells = 6

// RenderSwatch renders a block of colour c followed by its hex code and
// HSL coordinates. The hex code inside the block is drawn black or white,
// whichever reads better on c.
func RenderSwatch(c colorful.Color) string {
	hex := c.Clamped().Hex()

	fg := lipgloss.Color("#FFFFFF")
	if IsLight(c) {
		fg = lipgloss.Color("#000000")
	}
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(fg).
		Padding(0, 1).
		Width(swatchCells + len(hex)).
		Render(hex)

	h, s, l := c.Hsl()
	info := MeterLabelStyle.Render(fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100))
	return block + " " + info
}

// IsLight reports whether c is light enough to need dark text on top.
func IsLight(c colorful.Color) bool {
	l, _, _ := c.Lab()
	return l > 0.6
}
