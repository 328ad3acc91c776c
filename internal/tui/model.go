package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/numedit/internal/editor"
	"github.com/muurk/numedit/internal/logging"
	"github.com/muurk/numedit/internal/notation"
	"github.com/muurk/numedit/internal/stepper"
	"github.com/muurk/numedit/internal/ui"
)

// statusKind selects how the status line is styled
type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusError
)

// Options configures the editor screen.
type Options struct {
	// Title is shown after the application name, usually the preset name.
	Title string
	// ShowSwatch adds a colour swatch under the table in colour mode.
	ShowSwatch bool
	// Clipboard receives copied text. Defaults to the system clipboard.
	Clipboard func(string) error
}

// Model is the bubbletea model for a single numeric edit field.
type Model struct {
	control *editor.Control
	input   textinput.Model
	opts    Options

	keys keyMap
	help help.Model

	status     string
	statusKind statusKind

	Width    int
	Height   int
	Quitting bool
}

// New creates an editor screen around c. The field starts focused with the
// control's current text and the cursor at the end.
func New(c *editor.Control, opts Options) Model {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "empty"
	input.Focus()

	m := Model{
		control: c,
		input:   input,
		opts:    opts,
		keys:    defaultKeyMap(),
		help:    help.New(),
		Width:   ui.GetTerminalWidth(),
	}
	m.refresh(-1)
	return m
}

// Run starts a full-screen program for c and blocks until the user quits.
func Run(c *editor.Control, opts Options) error {
	program := tea.NewProgram(New(c, opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Control returns the control being edited
func (m Model) Control() *editor.Control {
	return m.control
}

// Text returns the current contents of the edit field
func (m Model) Text() string {
	return m.input.Value()
}

// Cursor returns the rune offset of the cursor in the edit field
func (m Model) Cursor() int {
	return m.input.Position()
}

// Status returns the status line message
func (m Model) Status() string {
	return m.status
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.StepUp):
			m.step(stepper.Up)
			return m, nil

		case key.Matches(msg, m.keys.StepDown):
			m.step(stepper.Down)
			return m, nil

		case key.Matches(msg, m.keys.Cycle):
			m.cycle()
			return m, nil

		case key.Matches(msg, m.keys.Commit):
			if err := m.commitPending(); err != nil {
				m.setStatus(statusError, err.Error())
				return m, nil
			}
			m.refresh(-1)
			m.setStatus(statusOK, "committed")
			return m, nil

		case key.Matches(msg, m.keys.Revert):
			m.refresh(-1)
			m.setStatus(statusInfo, "edit discarded")
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			m.control.Clear()
			m.refresh(-1)
			m.setStatus(statusInfo, "value cleared")
			return m, nil

		case key.Matches(msg, m.keys.Copy):
			m.copy()
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commitPending commits the field if it differs from the control's text.
// Rejected text is replaced by the last valid rendering.
func (m *Model) commitPending() error {
	text := m.input.Value()
	if text == m.control.DisplayText() {
		return nil
	}
	if err := m.control.Commit(text); err != nil {
		m.refresh(-1)
		return err
	}
	return nil
}

func (m *Model) step(d stepper.Direction) {
	pos := m.input.Position()
	if err := m.commitPending(); err != nil {
		m.setStatus(statusError, err.Error())
		return
	}

	_, outcome := m.control.StepValueAt(d, pos)
	m.refresh(pos)

	switch {
	case outcome.Rejected():
		m.setStatus(statusError, outcome.String())
	case outcome == stepper.NoOp:
		m.setStatus(statusInfo, outcome.String())
	default:
		m.setStatus(statusInfo, "")
	}
}

func (m *Model) cycle() {
	if err := m.commitPending(); err != nil {
		m.setStatus(statusError, err.Error())
		return
	}
	mode := m.control.CycleMode()
	m.refresh(-1)
	m.setStatus(statusInfo, mode.String())
}

func (m *Model) copy() {
	text, ok := m.control.FormattedString()
	if !ok {
		m.setStatus(statusInfo, "nothing to copy")
		return
	}
	if err := m.opts.Clipboard(text); err != nil {
		logging.Warn("Clipboard write failed", zap.Error(err))
		m.setStatus(statusError, fmt.Sprintf("copy failed: %v", err))
		return
	}
	m.setStatus(statusOK, "copied "+text)
}

// refresh replaces the field with the control's text. A negative cursor
// moves to the end; textinput clamps anything past it.
func (m *Model) refresh(cursor int) {
	m.input.SetValue(m.control.DisplayText())
	if cursor < 0 {
		m.input.CursorEnd()
		return
	}
	m.input.SetCursor(cursor)
}

func (m *Model) setStatus(kind statusKind, msg string) {
	m.statusKind = kind
	m.status = msg
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	title := AppName + " " + AppVersion()
	if m.opts.Title != "" {
		title += " · " + m.opts.Title
	}
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.renderModes())
	b.WriteString("\n")
	b.WriteString(FieldStyle.Render(m.input.View()))
	b.WriteString("\n")

	table := ui.NewConversionTable(ConversionRows(m.control)...).SetWidth(m.Width)
	if m.opts.ShowSwatch && m.control.Mode() == notation.ColorHex && !m.control.Value().IsNone() {
		table.WithSwatch(notation.Color(m.control.Value()))
	}
	b.WriteString(table.Render())
	b.WriteString("\n")

	bounds := m.control.Bounds()
	if meter := ui.NewMeter(m.control.Value(), bounds.Min, bounds.Max).SetWidth(m.Width); meter.Bounded() {
		b.WriteString("\n")
		b.WriteString(meter.Render())
		b.WriteString("\n")
	}

	if line := m.renderStatus(); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderModes() string {
	var parts []string
	for _, mode := range notation.Modes() {
		style := ModeStyle
		if mode == m.control.Mode() {
			style = ActiveModeStyle
		}
		parts = append(parts, style.Render(mode.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	switch m.statusKind {
	case statusError:
		return StatusErrorStyle.Render(ui.FailureMarker + " " + m.status)
	case statusOK:
		return StatusOKStyle.Render(ui.SuccessMarker + " " + m.status)
	default:
		return StatusInfoStyle.Render(m.status)
	}
}

// ConversionRows renders the control's value in every notation, marking the
// control's own. Decorations are left out; base prefixes are shown.
func ConversionRows(c *editor.Control) []ui.ConversionRow {
	opts := c.Options()
	opts.Prefix, opts.Suffix = "", ""
	opts.ShowBasePrefix = true

	v := c.Value()
	rows := make([]ui.ConversionRow, 0, len(notation.Modes()))
	for _, mode := range notation.Modes() {
		rows = append(rows, ui.ConversionRow{
			Notation: mode.String(),
			Text:     notation.Encode(v, mode, opts),
			Current:  mode == c.Mode(),
		})
	}
	return rows
}
