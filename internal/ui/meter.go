package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/numedit/internal/numeric"
)

// Meter shows where a value sits between a minimum and a maximum.
type Meter struct {
	Min   numeric.Value
	Max   numeric.Value
	Value numeric.Value
	Width int
	bar   progress.Model
}

// NewMeter creates a meter for value within [min, max]
func NewMeter(value, lo, hi numeric.Value) *Meter {
	m := &Meter{Min: lo, Max: hi, Value: value}
	return m.SetWidth(GetTerminalWidth())
}

// SetWidth sets the terminal width for responsive rendering
func (m *Meter) SetWidth(width int) *Meter {
	m.Width = width
	// Leave room for the bound labels
	barWidth := width - 30
	if barWidth < 20 {
		barWidth = 20
	}
	if barWidth > 50 {
		barWidth = 50
	}
	m.bar = progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	return m
}

// Bounded reports whether both limits are set, which the meter needs.
func (m *Meter) Bounded() bool {
	return !m.Min.IsNone() && !m.Max.IsNone() && m.Min.Cmp(m.Max) < 0
}

// Fraction returns the value's position between the limits in [0, 1].
// None sits at the minimum.
func (m *Meter) Fraction() float64 {
	if !m.Bounded() {
		return 0
	}
	lo, hi := m.Min.Float64(), m.Max.Float64()
	f := (m.Value.OrZero().Float64() - lo) / (hi - lo)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Render returns "min [bar] max", or "" when the value is unbounded.
func (m *Meter) Render() string {
	if !m.Bounded() {
		return ""
	}
	return lipgloss.NewStyle().
		PaddingLeft(2).
		Render(fmt.Sprintf("%s %s %s",
			MeterLabelStyle.Render(m.Min.String()),
			m.bar.ViewAs(m.Fraction()),
			MeterLabelStyle.Render(m.Max.String())))
}

// String implements fmt.Stringer
func (m *Meter) String() string {
	return m.Render()
}
