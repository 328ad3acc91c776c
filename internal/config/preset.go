package config

import (
	"errors"
	"fmt"

	"github.com/muurk/numedit/internal/editor"
	"github.com/muurk/numedit/internal/notation"
	"github.com/muurk/numedit/internal/numeric"
)

// Settings validates p and converts it to editor settings.
func (p *Preset) Settings() (editor.Settings, error) {
	if errs := ValidatePreset(p); len(errs) > 0 {
		return editor.Settings{}, errors.Join(errs...)
	}

	mode, _ := notation.ParseMode(p.Mode)
	s := editor.Settings{
		Mode: mode,
		Options: notation.Options{
			Prefix:         p.Prefix,
			Suffix:         p.Suffix,
			ShowBasePrefix: p.ShowBasePrefix,
			Grouping:       p.Grouping,
			GroupSeparator: p.GroupSeparator,
		},
		Bounds: numeric.DefaultBounds(),
	}
	if p.Lowercase {
		s.Options.Case = notation.Lower
	}
	if p.Min != "" {
		s.Bounds.Min = numeric.MustParse(p.Min)
	}
	if p.Max != "" {
		s.Bounds.Max = numeric.MustParse(p.Max)
	}
	if p.Increment != "" {
		s.Bounds.Increment = numeric.MustParse(p.Increment)
	}
	return s, nil
}

// InitialValue returns the preset's starting value, or None if it has none.
func (p *Preset) InitialValue() (numeric.Value, error) {
	if p.Initial == "" {
		return numeric.None(), nil
	}
	v, err := numeric.Parse(p.Initial)
	if err != nil {
		return numeric.None(), fmt.Errorf("initial value: %w", err)
	}
	return v, nil
}

// FromSettings builds a preset that reproduces s.
func FromSettings(s editor.Settings, description string) *Preset {
	p := &Preset{
		Description:    description,
		Mode:           s.Mode.String(),
		Prefix:         s.Options.Prefix,
		Suffix:         s.Options.Suffix,
		ShowBasePrefix: s.Options.ShowBasePrefix,
		Lowercase:      s.Options.Case == notation.Lower,
		Grouping:       s.Options.Grouping,
		GroupSeparator: s.Options.GroupSeparator,
		Min:            s.Bounds.Min.String(),
		Max:            s.Bounds.Max.String(),
		Increment:      s.Bounds.Increment.String(),
	}
	// An empty increment loads as 1, so a missing one is written as 0,
	// which steps nothing.
	if s.Bounds.Increment.IsNone() {
		p.Increment = "0"
	}
	return p
}
