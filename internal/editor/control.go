package editor

import (
	"strings"

	"github.com/muurk/numedit/internal/logging"
	"github.com/muurk/numedit/internal/notation"
	"github.com/muurk/numedit/internal/numeric"
	"github.com/muurk/numedit/internal/stepper"
)

// Control is one numeric edit field: a canonical value with its bounds, the
// notation it is shown in and the decorations around it.
//
// Control is not safe for concurrent use. The owning event loop must
// serialise calls.
type Control struct {
	store   *numeric.Store
	mode    notation.Mode
	options notation.Options
}

// New creates a decimal control holding initial.
func New(initial numeric.Value) *Control {
	return NewWithSettings(initial, DefaultSettings())
}

// NewWithSettings creates a control holding initial with the given settings.
func NewWithSettings(initial numeric.Value, s Settings) *Control {
	c := &Control{store: numeric.NewStore(initial)}
	c.store.SetBounds(s.Bounds)
	c.mode = s.Mode
	c.options = s.Options
	return c
}

// Settings returns the control's current settings.
func (c *Control) Settings() Settings {
	return Settings{
		Mode:    c.mode,
		Options: c.options,
		Bounds:  c.store.Bounds(),
	}
}

// Apply replaces mode, options and bounds at once. The value is kept.
func (c *Control) Apply(s Settings) {
	c.SetMode(s.Mode)
	c.SetOptions(s.Options)
	c.SetBounds(s.Bounds)
}

// Value returns the canonical value.
func (c *Control) Value() numeric.Value {
	return c.store.Value()
}

// Bounds returns the limits applied to spinner steps.
func (c *Control) Bounds() numeric.Bounds {
	return c.store.Bounds()
}

// Mode returns the notation the value is shown in.
func (c *Control) Mode() notation.Mode {
	return c.mode
}

// Options returns the display decorations.
func (c *Control) Options() notation.Options {
	return c.options
}

// DisplayText renders the value for the edit field. It is the only place
// text is derived from state; callers invoke it after every change.
func (c *Control) DisplayText() string {
	return notation.Display(c.Value(), c.mode, c.options)
}

// SetValue assigns v without checking the bounds.
func (c *Control) SetValue(v numeric.Value) {
	c.assign("assign", v)
}

// Clear drops the value so the control holds no number.
func (c *Control) Clear() {
	c.assign("clear", numeric.None())
}

// Commit decodes user text in the current notation and assigns the result.
// Empty text clears the value. On failure the value is unchanged and the
// *notation.FormatError is returned so the caller can restore DisplayText.
func (c *Control) Commit(text string) error {
	if strings.TrimSpace(notation.Unwrap(text, c.mode, c.options)) == "" {
		c.assign("clear", numeric.None())
		return nil
	}

	v, err := notation.Parse(text, c.mode, c.options)
	if err != nil {
		logging.LogRejectedEdit(c.mode.String(), text, err)
		return err
	}
	c.assign("commit", v)
	return nil
}

// StepValue moves the value one increment in direction d, refusing steps
// that would cross a bound.
func (c *Control) StepValue(d stepper.Direction) (numeric.Value, stepper.Outcome) {
	current := c.Value()
	next, outcome := stepper.Increment(current, d, c.store.Bounds())
	switch {
	case outcome == stepper.Applied:
		c.assign("step", next)
	case outcome.Rejected():
		logging.LogRejectedStep(d.String(), current.String(), outcome.String())
	}
	return c.Value(), outcome
}

// StepValueAt is StepValue with the cursor position in DisplayText. In IPv4
// mode it steps the octet under the cursor with wraparound and ignores the
// bounds; in every other mode the cursor is not used.
func (c *Control) StepValueAt(d stepper.Direction, cursor int) (numeric.Value, stepper.Outcome) {
	if c.mode != notation.IPv4 {
		return c.StepValue(d)
	}

	next, _ := stepper.StepField(c.Value(), notation.BodyOffset(cursor, c.options), d)
	c.assign("field-step", next)
	return next, stepper.Applied
}

// SetBounds replaces the step limits. The value is not re-checked.
func (c *Control) SetBounds(b numeric.Bounds) {
	c.store.SetBounds(b)
}

// SetMode switches notation. The value is untouched.
func (c *Control) SetMode(m notation.Mode) {
	if m == c.mode {
		return
	}
	logging.LogSettingChange("mode", c.mode.String(), m.String())
	c.mode = m
}

// CycleMode switches to the next notation and returns it.
func (c *Control) CycleMode() notation.Mode {
	c.SetMode(c.mode.Next())
	return c.mode
}

// SetOptions replaces all display decorations.
func (c *Control) SetOptions(o notation.Options) {
	c.options = o
}

// SetPrefix changes the literal text shown before the numeral.
func (c *Control) SetPrefix(prefix string) {
	logging.LogSettingChange("prefix", c.options.Prefix, prefix)
	c.options.Prefix = prefix
}

// SetSuffix changes the literal text shown after the numeral.
func (c *Control) SetSuffix(suffix string) {
	logging.LogSettingChange("suffix", c.options.Suffix, suffix)
	c.options.Suffix = suffix
}

func (c *Control) assign(source string, v numeric.Value) {
	old := c.store.Set(v)
	if !old.Equal(v) {
		logging.LogValueChange(source, old.String(), v.String())
	}
}

func (c *Control) project(mode notation.Mode, includePrefix bool) (string, bool) {
	v := c.Value()
	if v.IsNone() {
		return "", false
	}
	return notation.Encode(v, mode, notation.Options{ShowBasePrefix: includePrefix, Case: c.options.Case}), true
}

// HexString renders the value in base 16 in the control's letter case.
func (c *Control) HexString(includePrefix bool) (string, bool) {
	return c.project(notation.Hexadecimal, includePrefix)
}

// BinaryString renders the value in base 2.
func (c *Control) BinaryString(includePrefix bool) (string, bool) {
	return c.project(notation.Binary, includePrefix)
}

// OctalString renders the value in base 8.
func (c *Control) OctalString(includePrefix bool) (string, bool) {
	return c.project(notation.Octal, includePrefix)
}

// ColorHexString renders the low 24 bits as six hex digits.
func (c *Control) ColorHexString(includePrefix bool) (string, bool) {
	return c.project(notation.ColorHex, includePrefix)
}

// IPv4String renders the low 32 bits as a dotted quad.
func (c *Control) IPv4String() (string, bool) {
	return c.project(notation.IPv4, false)
}

// FormattedString is DisplayText with an explicit no-value result.
func (c *Control) FormattedString() (string, bool) {
	if c.Value().IsNone() {
		return "", false
	}
	return c.DisplayText(), true
}
