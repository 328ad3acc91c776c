package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/numedit/internal/editor"
	"github.com/muurk/numedit/internal/notation"
	"github.com/muurk/numedit/internal/numeric"
	"github.com/muurk/numedit/internal/ui"
)

func newModel(t *testing.T, v numeric.Value, mutate func(*editor.Settings)) Model {
	t.Helper()
	s := editor.DefaultSettings()
	if mutate != nil {
		mutate(&s)
	}
	return New(editor.NewWithSettings(v, s), Options{
		Clipboard: func(string) error { return errors.New("no clipboard in tests") },
	})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok, "Update returned %T", updated)
	}
	return m
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewShowsValue(t *testing.T) {
	m := newModel(t, numeric.FromInt64(42), nil)

	assert.Equal(t, "42", m.Text())
	assert.Equal(t, 2, m.Cursor())
	assert.Empty(t, m.Status())
}

func TestStepDecimal(t *testing.T) {
	m := newModel(t, numeric.FromInt64(5), nil)

	m = send(t, m, keyMsg(tea.KeyUp), keyMsg(tea.KeyUp))
	assert.Equal(t, "7", m.Text())
	assert.True(t, m.Control().Value().Equal(numeric.FromInt64(7)))

	m = send(t, m, keyMsg(tea.KeyDown))
	assert.Equal(t, "6", m.Text())
}

func TestStepRejectedKeepsValue(t *testing.T) {
	m := newModel(t, numeric.FromInt64(98), func(s *editor.Settings) {
		s.Bounds.Max = numeric.FromInt64(100)
		s.Bounds.Increment = numeric.FromInt64(5)
	})

	m = send(t, m, keyMsg(tea.KeyUp))
	assert.Equal(t, "98", m.Text())
	assert.Equal(t, "rejected: above maximum", m.Status())
	assert.Contains(t, m.View(), "rejected: above maximum")
}

func TestStepIPv4FollowsCursor(t *testing.T) {
	ip := func(s *editor.Settings) { s.Mode = notation.IPv4 }

	tests := []struct {
		name   string
		start  string
		cursor int
		key    tea.KeyType
		want   string
	}{
		{"Last octet up", "192.168.1.5", 10, tea.KeyUp, "192.168.1.6"},
		{"First octet down", "192.168.1.5", 1, tea.KeyDown, "191.168.1.5"},
		{"Separator steps next field", "192.168.1.5", 3, tea.KeyUp, "192.169.1.5"},
		{"Wraps at 255", "10.0.0.255", 7, tea.KeyUp, "10.0.0.0"},
		{"Wraps below 0", "0.0.0.0", 0, tea.KeyDown, "255.0.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := notation.Decode(tt.start, notation.IPv4)
			require.NoError(t, err)

			m := newModel(t, v, ip)
			m.input.SetCursor(tt.cursor)
			m = send(t, m, keyMsg(tt.key))

			assert.Equal(t, tt.want, m.Text())
			assert.Equal(t, tt.cursor, m.Cursor())
		})
	}
}

func TestStepIPv4Repeated(t *testing.T) {
	v, err := notation.Decode("10.10.10.10", notation.IPv4)
	require.NoError(t, err)

	m := newModel(t, v, func(s *editor.Settings) { s.Mode = notation.IPv4 })
	m.input.SetCursor(1)
	m = send(t, m, keyMsg(tea.KeyUp))
	m.input.SetCursor(9)
	m = send(t, m, keyMsg(tea.KeyUp))

	assert.Equal(t, "11.10.10.11", m.Text())
}

func TestCommit(t *testing.T) {
	m := newModel(t, numeric.FromInt64(1), func(s *editor.Settings) { s.Mode = notation.Hexadecimal })

	m.input.SetValue("0xff")
	m = send(t, m, keyMsg(tea.KeyEnter))

	assert.Equal(t, "FF", m.Text())
	assert.True(t, m.Control().Value().Equal(numeric.FromInt64(255)))
	assert.Equal(t, "committed", m.Status())
}

func TestCommitInvalidRestoresText(t *testing.T) {
	m := newModel(t, numeric.FromInt64(5), nil)

	m.input.SetValue("12a")
	m = send(t, m, keyMsg(tea.KeyEnter))

	assert.Equal(t, "5", m.Text())
	assert.True(t, m.Control().Value().Equal(numeric.FromInt64(5)))
	assert.NotEmpty(t, m.Status())
}

func TestTypingThenStepCommitsFirst(t *testing.T) {
	m := newModel(t, numeric.FromInt64(5), nil)

	m.input.SetValue("40")
	m = send(t, m, keyMsg(tea.KeyUp))

	assert.Equal(t, "41", m.Text())
}

func TestTypedRunesReachField(t *testing.T) {
	m := newModel(t, numeric.FromInt64(5), nil)

	m = send(t, m, runes("0"), keyMsg(tea.KeyEnter))

	assert.Equal(t, "50", m.Text())
	assert.True(t, m.Control().Value().Equal(numeric.FromInt64(50)))
}

func TestCycleMode(t *testing.T) {
	m := newModel(t, numeric.FromInt64(255), nil)

	want := []string{"FF", "11111111", "377", "0000FF", "0.0.0.255", "255"}
	for _, w := range want {
		m = send(t, m, keyMsg(tea.KeyTab))
		assert.Equal(t, w, m.Text())
	}
}

func TestCycleCommitsPendingEdit(t *testing.T) {
	m := newModel(t, numeric.FromInt64(255), nil)

	m.input.SetValue("10")
	m = send(t, m, keyMsg(tea.KeyTab))

	assert.Equal(t, notation.Hexadecimal, m.Control().Mode())
	assert.Equal(t, "A", m.Text())
}

func TestCycleWithInvalidEditStays(t *testing.T) {
	m := newModel(t, numeric.FromInt64(255), nil)

	m.input.SetValue("zz")
	m = send(t, m, keyMsg(tea.KeyTab))

	assert.Equal(t, notation.Decimal, m.Control().Mode())
	assert.Equal(t, "255", m.Text())
	assert.NotEmpty(t, m.Status())
}

func TestRevertAndClear(t *testing.T) {
	m := newModel(t, numeric.FromInt64(5), nil)

	m.input.SetValue("999")
	m = send(t, m, keyMsg(tea.KeyEsc))
	assert.Equal(t, "5", m.Text())
	assert.Equal(t, "edit discarded", m.Status())

	m = send(t, m, keyMsg(tea.KeyCtrlK))
	assert.Equal(t, "", m.Text())
	assert.True(t, m.Control().Value().IsNone())
}

func TestCopy(t *testing.T) {
	var copied []string
	s := editor.DefaultSettings()
	s.Options.Prefix = "€"
	c := editor.NewWithSettings(numeric.MustParse("99.99"), s)
	m := New(c, Options{Clipboard: func(text string) error {
		copied = append(copied, text)
		return nil
	}})

	m = send(t, m, keyMsg(tea.KeyCtrlY))

	assert.Equal(t, []string{"€99.99"}, copied)
	assert.Equal(t, "copied €99.99", m.Status())
}

func TestCopyEmptyAndFailure(t *testing.T) {
	m := newModel(t, numeric.None(), nil)
	m = send(t, m, keyMsg(tea.KeyCtrlY))
	assert.Equal(t, "nothing to copy", m.Status())

	m = newModel(t, numeric.FromInt64(1), nil)
	m = send(t, m, keyMsg(tea.KeyCtrlY))
	assert.True(t, strings.HasPrefix(m.Status(), "copy failed"))
}

func TestHelpToggle(t *testing.T) {
	m := newModel(t, numeric.FromInt64(1), nil)
	assert.False(t, m.help.ShowAll)

	m = send(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Equal(t, "1", m.Text(), "? must not reach the field")

	m = send(t, m, runes("?"))
	assert.False(t, m.help.ShowAll)
}

func TestQuit(t *testing.T) {
	m := newModel(t, numeric.FromInt64(1), nil)

	updated, cmd := m.Update(keyMsg(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, updated.(Model).Quitting)
	assert.Empty(t, updated.(Model).View())
}

func TestWindowSize(t *testing.T) {
	m := newModel(t, numeric.FromInt64(1), nil)
	m = send(t, m, tea.WindowSizeMsg{Width: 72, Height: 30})

	assert.Equal(t, 72, m.Width)
	assert.Equal(t, 30, m.Height)
}

func TestViewListsNotations(t *testing.T) {
	m := newModel(t, numeric.FromInt64(255), nil)
	view := m.View()

	for _, mode := range notation.Modes() {
		assert.Contains(t, view, mode.String())
	}
	assert.Contains(t, view, "0xFF")
	assert.Contains(t, view, "0b11111111")
	assert.Contains(t, view, "#0000FF")
}

func TestViewShowsMeterWhenBounded(t *testing.T) {
	m := newModel(t, numeric.FromInt64(50), func(s *editor.Settings) {
		s.Bounds.Min = numeric.FromInt64(0)
		s.Bounds.Max = numeric.FromInt64(100)
	})

	meter := ui.NewMeter(numeric.FromInt64(50), numeric.FromInt64(0), numeric.FromInt64(100)).SetWidth(m.Width)
	require.True(t, meter.Bounded())
	assert.Contains(t, m.View(), meter.Render())

	unbounded := newModel(t, numeric.FromInt64(50), nil)
	assert.NotContains(t, unbounded.View(), meter.Render())
}

func TestConversionRows(t *testing.T) {
	s := editor.DefaultSettings()
	s.Mode = notation.Octal
	s.Options = notation.Options{Prefix: "mode ", Case: notation.Lower}
	c := editor.NewWithSettings(numeric.FromInt64(493), s)

	rows := ConversionRows(c)
	require.Len(t, rows, len(notation.Modes()))

	byName := map[string]string{}
	for _, r := range rows {
		byName[r.Notation] = r.Text
		assert.Equal(t, r.Notation == "octal", r.Current)
	}
	assert.Equal(t, "493", byName["decimal"])
	assert.Equal(t, "0x1ed", byName["hex"])
	assert.Equal(t, "0o755", byName["octal"])
	assert.Equal(t, "#0001ed", byName["color"])
	assert.Equal(t, "0.0.1.237", byName["ipv4"])
}
