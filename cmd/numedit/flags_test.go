package main

import (
	"strings"
	"testing"

	"github.com/muurk/numedit/internal/config"
	"github.com/muurk/numedit/internal/editor"
	"github.com/muurk/numedit/internal/notation"
	"github.com/muurk/numedit/internal/numeric"
)

func TestDisplayFlagsApply(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, s editor.Settings)
	}{
		{
			name: "No flags keeps settings",
			args: nil,
			check: func(t *testing.T, s editor.Settings) {
				if s.Mode != notation.Octal || s.Options.Prefix != "p" {
					t.Errorf("settings changed: %+v", s)
				}
			},
		},
		{
			name: "Mode alias",
			args: []string{"--mode", "hex"},
			check: func(t *testing.T, s editor.Settings) {
				if s.Mode != notation.Hexadecimal {
					t.Errorf("Mode = %s, want hex", s.Mode)
				}
			},
		},
		{
			name: "Decorations and case",
			args: []string{"--prefix", "", "--suffix", "%", "--lowercase", "--show-prefix"},
			check: func(t *testing.T, s editor.Settings) {
				if s.Options.Prefix != "" || s.Options.Suffix != "%" {
					t.Errorf("decorations = %q %q", s.Options.Prefix, s.Options.Suffix)
				}
				if s.Options.Case != notation.Lower || !s.Options.ShowBasePrefix {
					t.Errorf("options = %+v", s.Options)
				}
			},
		},
		{
			name: "Bounds",
			args: []string{"--min", "-5", "--max", "10.5", "--increment", "0.25"},
			check: func(t *testing.T, s editor.Settings) {
				if !s.Bounds.Min.Equal(numeric.FromInt64(-5)) {
					t.Errorf("Min = %s", s.Bounds.Min)
				}
				if !s.Bounds.Max.Equal(numeric.MustParse("10.5")) {
					t.Errorf("Max = %s", s.Bounds.Max)
				}
				if !s.Bounds.Increment.Equal(numeric.MustParse("0.25")) {
					t.Errorf("Increment = %s", s.Bounds.Increment)
				}
			},
		},
		{
			name: "Empty bound clears it",
			args: []string{"--max", ""},
			check: func(t *testing.T, s editor.Settings) {
				if !s.Bounds.Max.IsNone() {
					t.Errorf("Max = %s, want none", s.Bounds.Max)
				}
			},
		},
		{
			name: "Empty increment falls back to one",
			args: []string{"--increment", ""},
			check: func(t *testing.T, s editor.Settings) {
				if !s.Bounds.Increment.Equal(numeric.FromInt64(1)) {
					t.Errorf("Increment = %s, want 1", s.Bounds.Increment)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d displayFlags
			fs := d.flagSet()
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			s := editor.DefaultSettings()
			s.Mode = notation.Octal
			s.Options.Prefix = "p"
			s.Bounds.Max = numeric.FromInt64(100)
			if err := d.apply(fs, &s); err != nil {
				t.Fatalf("apply() error = %v", err)
			}
			tt.check(t, s)
		})
	}
}

func TestDisplayFlagsApplyErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"Bad decimal", []string{"--min", "ten"}},
		{"Max below min", []string{"--min", "10", "--max", "1"}},
		{"Digit separator", []string{"--group-separator", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d displayFlags
			fs := d.flagSet()
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			s := editor.DefaultSettings()
			err := d.apply(fs, &s)
			if err == nil {
				t.Fatal("apply() should fail")
			}
			if !config.IsValidationError(err) {
				t.Errorf("error = %T %v, want *ValidationError", err, err)
			}
		})
	}
}

func TestModeFlagRejectsUnknown(t *testing.T) {
	var d displayFlags
	if err := d.flagSet().Parse([]string{"--mode", "roman"}); err == nil {
		t.Error("Parse() should reject an unknown notation")
	}
}

func TestSelectedPreset(t *testing.T) {
	r := config.NewRegistry()
	defer func(old string) { presetName = old }(presetName)

	presetName = ""
	if p, name, err := selectedPreset(r); p != nil || name != "" || err != nil {
		t.Errorf("selectedPreset() = (%v, %q, %v), want nothing", p, name, err)
	}

	r.Preferences.DefaultPreset = "percent"
	if p, name, err := selectedPreset(r); err != nil || p == nil || name != "percent" {
		t.Errorf("selectedPreset() = (%v, %q, %v), want percent", p, name, err)
	}

	presetName = "rgb"
	if p, name, err := selectedPreset(r); err != nil || p == nil || name != "rgb" || p.Mode != "color" {
		t.Errorf("selectedPreset() = (%v, %q, %v), want rgb", p, name, err)
	}

	presetName = "nope"
	if _, _, err := selectedPreset(r); err == nil {
		t.Error("selectedPreset() should fail for an unknown preset")
	}
}

func TestDecodeHints(t *testing.T) {
	tests := []struct {
		text string
		mode notation.Mode
		want string
	}{
		{"10.0.0", notation.IPv4, "four dot-separated fields"},
		{"10.0.0.300", notation.IPv4, "between 0 and 255"},
		{"0xZZ", notation.Hexadecimal, "hex notation"},
		{"#GGG", notation.ColorHex, "--short-color"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := notation.Decode(tt.text, tt.mode)
			if err == nil {
				t.Fatalf("Decode(%q) should fail", tt.text)
			}
			hints := strings.Join(decodeHints(err, tt.mode), "\n")
			if !strings.Contains(hints, tt.want) {
				t.Errorf("hints %q do not mention %q", hints, tt.want)
			}
		})
	}

	if hints := decodeHints(nil, notation.Decimal); hints != nil {
		t.Errorf("decodeHints(nil) = %v, want nil", hints)
	}
}

func TestBoundsSummary(t *testing.T) {
	got := boundsSummary(&config.Preset{Min: "0", Increment: "0.01"})
	if got != "[0, +∞] step 0.01" {
		t.Errorf("boundsSummary() = %q", got)
	}
	got = boundsSummary(&config.Preset{})
	if got != "[-∞, +∞] step 1" {
		t.Errorf("boundsSummary() = %q", got)
	}
}
