package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/muurk/numedit/internal/config"
	"github.com/muurk/numedit/internal/editor"
	"github.com/muurk/numedit/internal/logging"
	"github.com/muurk/numedit/internal/notation"
	"github.com/muurk/numedit/internal/numeric"
)

// displayFlags override the display settings and bounds of the selected preset.
// Only flags the user actually set are applied.
type displayFlags struct {
	mode       notation.Mode
	prefix     string
	suffix     string
	showPrefix bool
	lowercase  bool
	grouping   bool
	groupSep   string
	min        string
	max        string
	increment  string
}

var (
	display        displayFlags
	displayFlagSet = display.flagSet()
)

func (d *displayFlags) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("display", pflag.ContinueOnError)
	fs.VarP(&d.mode, "mode", "m", "Notation (decimal, hex, binary, octal, color, ipv4)")
	fs.StringVar(&d.prefix, "prefix", "", "Literal text shown before the numeral")
	fs.StringVar(&d.suffix, "suffix", "", "Literal text shown after the numeral")
	fs.BoolVar(&d.showPrefix, "show-prefix", false, "Show the base prefix (0x, 0b, 0o, #)")
	fs.BoolVar(&d.lowercase, "lowercase", false, "Lowercase hex digits")
	fs.BoolVar(&d.grouping, "grouping", false, "Group decimal digits in threes")
	fs.StringVar(&d.groupSep, "group-separator", "", "Glyph between digit groups (default \",\")")
	fs.StringVar(&d.min, "min", "", "Lowest value a step may reach (decimal, empty for none)")
	fs.StringVar(&d.max, "max", "", "Highest value a step may reach (decimal, empty for none)")
	fs.StringVar(&d.increment, "increment", "", "Step size (decimal, default 1)")
	return fs
}

// apply overlays every flag changed in fs onto s.
func (d *displayFlags) apply(fs *pflag.FlagSet, s *editor.Settings) error {
	if fs.Changed("mode") {
		s.Mode = d.mode
	}
	if fs.Changed("prefix") {
		s.Options.Prefix = d.prefix
	}
	if fs.Changed("suffix") {
		s.Options.Suffix = d.suffix
	}
	if fs.Changed("show-prefix") {
		s.Options.ShowBasePrefix = d.showPrefix
	}
	if fs.Changed("lowercase") {
		s.Options.Case = notation.Upper
		if d.lowercase {
			s.Options.Case = notation.Lower
		}
	}
	if fs.Changed("grouping") {
		s.Options.Grouping = d.grouping
	}
	if fs.Changed("group-separator") {
		if err := config.ValidateGroupSeparator(d.groupSep); err != nil {
			return err
		}
		s.Options.GroupSeparator = d.groupSep
	}

	limits := []struct {
		name   string
		text   string
		target *numeric.Value
	}{
		{"min", d.min, &s.Bounds.Min},
		{"max", d.max, &s.Bounds.Max},
		{"increment", d.increment, &s.Bounds.Increment},
	}
	for _, l := range limits {
		if !fs.Changed(l.name) {
			continue
		}
		v, err := parseLimit(l.name, l.text)
		if err != nil {
			return err
		}
		*l.target = v
	}

	if s.Bounds.Increment.IsNone() {
		s.Bounds.Increment = numeric.FromInt64(1)
	}
	if !s.Bounds.Min.IsNone() && !s.Bounds.Max.IsNone() && s.Bounds.Max.Cmp(s.Bounds.Min) < 0 {
		return config.NewValidationError("max", "must not be less than min")
	}
	return nil
}

// parseLimit reads a bound flag. Empty text clears the bound.
func parseLimit(name, text string) (numeric.Value, error) {
	if text == "" {
		return numeric.None(), nil
	}
	if err := config.ValidateDecimal(name, text); err != nil {
		return numeric.None(), err
	}
	return numeric.MustParse(text), nil
}

// selectedPreset returns the preset named by --preset, or the configured
// default preset. It returns nil when neither is set.
func selectedPreset(r *config.Registry) (*config.Preset, string, error) {
	if presetName != "" {
		p := r.GetPreset(presetName)
		if p == nil {
			return nil, "", fmt.Errorf("unknown preset %q (see 'numedit preset list')", presetName)
		}
		return p, presetName, nil
	}
	if p := r.DefaultPreset(); p != nil {
		return p, r.Preferences.DefaultPreset, nil
	}
	return nil, "", nil
}

// session is everything a command needs to build a control.
type session struct {
	registry *config.Registry
	preset   string
	settings editor.Settings
	initial  numeric.Value
}

// resolveSession loads the registry, starts from the selected preset and
// overlays the display flags set in fs.
func resolveSession(fs *pflag.FlagSet) (*session, error) {
	registry, err := config.LoadRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	s := &session{
		registry: registry,
		settings: editor.DefaultSettings(),
	}

	p, name, err := selectedPreset(registry)
	if err != nil {
		return nil, err
	}
	if p != nil {
		logging.Info("Preset loaded", zap.String("name", name), zap.String("mode", p.Mode))
		s.preset = name
		if s.settings, err = p.Settings(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		if s.initial, err = p.InitialValue(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}

	if err := display.apply(fs, &s.settings); err != nil {
		return nil, err
	}
	return s, nil
}

// showSwatch reports whether conversion output should include a colour swatch.
func (s *session) showSwatch() bool {
	return s.registry.Preferences == nil || s.registry.Preferences.ShowSwatch
}

// control builds an editor control holding the preset's initial value.
func (s *session) control() *editor.Control {
	return editor.NewWithSettings(s.initial, s.settings)
}
