package config

import (
	"strings"
	"testing"
)

func TestValidatePresetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Simple", "percent", false},
		{"Dashes and digits", "unix-perms_2", false},
		{"Empty", "", true},
		{"Space", "my preset", true},
		{"Slash", "a/b", true},
		{"Too long", strings.Repeat("a", 33), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePresetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePresetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePreset(t *testing.T) {
	tests := []struct {
		name       string
		preset     *Preset
		wantErrors int
		wantField  string
	}{
		{"Valid", &Preset{Mode: "decimal", Min: "0", Max: "100", Increment: "0.5"}, 0, ""},
		{"Valid unbounded", &Preset{Mode: "ipv4"}, 0, ""},
		{"Nil", nil, 1, ""},
		{"Bad mode", &Preset{Mode: "roman"}, 1, "mode"},
		{"Bad min", &Preset{Mode: "decimal", Min: "1e3"}, 1, "min"},
		{"Max below min", &Preset{Mode: "decimal", Min: "10", Max: "5"}, 1, "max"},
		{"Negative increment", &Preset{Mode: "decimal", Increment: "-1"}, 1, "increment"},
		{"Bad initial", &Preset{Mode: "hex", Initial: "0xFF"}, 1, "initial"},
		{"Separator digit", &Preset{Mode: "decimal", Grouping: true, GroupSeparator: "0"}, 1, "group_separator"},
		{"Separator point", &Preset{Mode: "decimal", Grouping: true, GroupSeparator: "."}, 1, "group_separator"},
		{"Several", &Preset{Mode: "x", Min: "a", Max: "b"}, 3, "mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePreset(tt.preset)
			if len(errs) != tt.wantErrors {
				t.Fatalf("ValidatePreset() returned %d errors, want %d: %v", len(errs), tt.wantErrors, errs)
			}
			if tt.wantField == "" {
				return
			}
			ve, ok := errs[0].(*ValidationError)
			if !ok {
				t.Fatalf("Expected *ValidationError, got %T", errs[0])
			}
			if ve.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("max", "too small")
	if got := err.Error(); got != "Validation Error: max: too small" {
		t.Errorf("Error() = %q", got)
	}
	if got := NewValidationError("", "missing").Error(); got != "Validation Error: missing" {
		t.Errorf("Error() = %q", got)
	}
}
