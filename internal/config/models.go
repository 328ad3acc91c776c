package config

import (
	"fmt"
	"sort"
)

// Registry represents the entire user configuration file.
// This stores named editor presets and application preferences.
type Registry struct {
	Version     int                `yaml:"version"`
	Presets     map[string]*Preset `yaml:"presets,omitempty"` // Keyed by preset name
	Preferences *Preferences       `yaml:"preferences,omitempty"`
}

// Preset is a named set of editor settings.
// Bounds are decimal literals so they survive YAML without float rounding.
type Preset struct {
	Description    string `yaml:"description,omitempty"`
	Mode           string `yaml:"mode"`                       // Notation name (decimal, hex, binary, octal, color, ipv4)
	Prefix         string `yaml:"prefix,omitempty"`           // Literal text before the numeral (e.g., "€")
	Suffix         string `yaml:"suffix,omitempty"`           // Literal text after the numeral (e.g., "%")
	ShowBasePrefix bool   `yaml:"show_base_prefix,omitempty"` // Emit 0x, 0b, 0o or #
	Lowercase      bool   `yaml:"lowercase,omitempty"`        // Lowercase hex digits
	Grouping       bool   `yaml:"grouping,omitempty"`         // Group decimal digits in threes
	GroupSeparator string `yaml:"group_separator,omitempty"`  // Defaults to ","
	Min            string `yaml:"min,omitempty"`              // Empty means unbounded
	Max            string `yaml:"max,omitempty"`              // Empty means unbounded
	Increment      string `yaml:"increment,omitempty"`        // Empty means 1
	Initial        string `yaml:"initial,omitempty"`          // Starting value for the editor
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultPreset string `yaml:"default_preset,omitempty"` // Preset used when --preset is not given
	ShowSwatch    bool   `yaml:"show_swatch"`              // Show a colour swatch in conversion tables
}

func defaultPreferences() *Preferences {
	return &Preferences{
		ShowSwatch: true,
	}
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Presets:     make(map[string]*Preset),
		Preferences: defaultPreferences(),
	}
}

// GetPreset looks a preset up by name. User presets shadow built-in ones.
// Returns nil if no preset has that name.
func (r *Registry) GetPreset(name string) *Preset {
	if p, ok := r.Presets[name]; ok {
		return p
	}
	return Builtin(name)
}

// IsUserPreset reports whether name is defined in the configuration file.
func (r *Registry) IsUserPreset(name string) bool {
	_, ok := r.Presets[name]
	return ok
}

// SetPreset validates p and stores it under name, replacing any user preset
// of the same name.
func (r *Registry) SetPreset(name string, p *Preset) error {
	if err := ValidatePresetName(name); err != nil {
		return err
	}
	if errs := ValidatePreset(p); len(errs) > 0 {
		return fmt.Errorf("preset %q: %w", name, errs[0])
	}

	if r.Presets == nil {
		r.Presets = make(map[string]*Preset)
	}
	r.Presets[name] = p
	return nil
}

// DeletePreset removes a user preset. Built-in presets cannot be deleted.
// Returns false if there was no user preset with that name.
func (r *Registry) DeletePreset(name string) bool {
	if _, ok := r.Presets[name]; !ok {
		return false
	}
	delete(r.Presets, name)
	if r.Preferences != nil && r.Preferences.DefaultPreset == name && Builtin(name) == nil {
		r.Preferences.DefaultPreset = ""
	}
	return true
}

// PresetNames returns built-in and user preset names, sorted, without duplicates.
func (r *Registry) PresetNames() []string {
	seen := make(map[string]bool)
	var names []string
	for name := range builtinPresets {
		seen[name] = true
		names = append(names, name)
	}
	for name := range r.Presets {
		if !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// DefaultPreset returns the preferred preset, or nil if none is set.
func (r *Registry) DefaultPreset() *Preset {
	if r.Preferences == nil || r.Preferences.DefaultPreset == "" {
		return nil
	}
	return r.GetPreset(r.Preferences.DefaultPreset)
}
