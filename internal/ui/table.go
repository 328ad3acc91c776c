package ui

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// ConversionRow is one notation's rendering of a value.
type ConversionRow struct {
	Notation string
	Text     string
	Current  bool // the notation the value was entered in
}

// ConversionTable lists a value in several notations, with an optional
// colour swatch for its 24-bit colour view.
type ConversionTable struct {
	Rows   []ConversionRow
	Swatch *colorful.Color
	Width  int
}

// NewConversionTable creates a table for the given rows
func NewConversionTable(rows ...ConversionRow) *ConversionTable {
	return &ConversionTable{
		Rows:  rows,
		Width: GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (t *ConversionTable) SetWidth(width int) *ConversionTable {
	t.Width = width
	return t
}

// WithSwatch adds a colour swatch line under the table
func (t *ConversionTable) WithSwatch(c colorful.Color) *ConversionTable {
	t.Swatch = &c
	return t
}

// Render returns the styled table as a string.
// Columns are padded by display width so wide glyphs in decorations line up.
func (t *ConversionTable) Render() string {
	width := clampWidth(t.Width)

	nameWidth := runewidth.StringWidth("NOTATION")
	for _, r := range t.Rows {
		if w := runewidth.StringWidth(r.Notation); w > nameWidth {
			nameWidth = w
		}
	}

	// marker, two spaces, name column, two spaces
	valueWidth := width - 4 - nameWidth - 2
	if valueWidth < 10 {
		valueWidth = 10
	}

	var lines []string
	lines = append(lines, TableHeaderStyle.Render("  "+runewidth.FillRight("NOTATION", nameWidth)+"  VALUE"))

	for _, r := range t.Rows {
		marker := " "
		nameStyle, valueStyle := TableNotationStyle, TableValueStyle
		if r.Current {
			marker = CurrentMarker
			nameStyle, valueStyle = TableCurrentStyle, TableCurrentStyle
		}

		text := r.Text
		if text == "" {
			text = "-"
		}
		text = runewidth.Truncate(text, valueWidth, "…")

		lines = append(lines, marker+" "+
			nameStyle.Render(runewidth.FillRight(r.Notation, nameWidth))+"  "+
			valueStyle.Render(text))
	}

	if t.Swatch != nil {
		lines = append(lines, "", "  "+RenderSwatch(*t.Swatch))
	}

	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer
func (t *ConversionTable) String() string {
	return t.Render()
}
