package notation

import (
	"testing"

	"github.com/muurk/numedit/internal/numeric"
)

func TestDisplay(t *testing.T) {
	tests := []struct {
		name  string
		value numeric.Value
		mode  Mode
		opts  Options
		want  string
	}{
		{"Currency", numeric.MustParse("99.99"), Decimal, Options{Prefix: "€"}, "€99.99"},
		{"Percent", numeric.FromInt64(75), Decimal, Options{Suffix: "%"}, "75%"},
		{"Spaced suffix", numeric.FromInt64(12), Decimal, Options{Suffix: " kg"}, "12 kg"},
		{"Hex with both", numeric.FromInt64(255), Hexadecimal, Options{Prefix: "[", Suffix: "]", ShowBasePrefix: true}, "[0xFF]"},
		{"Grouped", numeric.FromInt64(1234567), Decimal, Options{Prefix: "$", Grouping: true}, "$1,234,567"},
		{"None has no decorations", numeric.None(), Decimal, Options{Prefix: "€", Suffix: "%"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Display(tt.value, tt.mode, tt.opts); got != tt.want {
				t.Errorf("Display() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDecorated(t *testing.T) {
	tests := []struct {
		name string
		text string
		mode Mode
		opts Options
		want string
	}{
		{"Currency prefix", "€99.99", Decimal, Options{Prefix: "€"}, "99.99"},
		{"Currency without prefix", "99.99", Decimal, Options{Prefix: "€"}, "99.99"},
		{"Percent suffix", "75%", Decimal, Options{Suffix: "%"}, "75"},
		{"Spaced suffix", "12 kg", Decimal, Options{Suffix: " kg"}, "12"},
		{"Padded", "  €5  ", Decimal, Options{Prefix: "€"}, "5"},
		{"Grouped", "1,234,567", Decimal, Options{Grouping: true}, "1234567"},
		{"Grouped custom glyph", "1 234 567", Decimal, Options{Grouping: true, GroupSeparator: " "}, "1234567"},
		{"Hex in brackets", "[0xff]", Hexadecimal, Options{Prefix: "[", Suffix: "]"}, "255"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text, tt.mode, tt.opts)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.text, err)
			}
			if got.String() != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseDecoratedErrors(t *testing.T) {
	// Grouping separators are only stripped in decimal, and only when grouping is on.
	if _, err := Parse("1,234", Decimal, Options{}); !IsMalformedNumeral(err) {
		t.Errorf("Parse(1,234) without grouping error = %v, want MalformedNumeral", err)
	}
	if _, err := Parse("€abc", Decimal, Options{Prefix: "€"}); !IsMalformedNumeral(err) {
		t.Errorf("Parse(€abc) error = %v, want MalformedNumeral", err)
	}
}

func TestDecorationRoundTrip(t *testing.T) {
	opts := []Options{
		{Prefix: "€"},
		{Suffix: "%"},
		{Prefix: "~", Suffix: " units", Grouping: true},
		{Prefix: "<", Suffix: ">", ShowBasePrefix: true, Case: Lower},
	}
	values := []numeric.Value{
		numeric.FromInt64(0),
		numeric.FromInt64(42),
		numeric.FromInt64(1234567),
		numeric.FromUint64(4294967295),
	}

	for _, o := range opts {
		for _, mode := range Modes() {
			for _, v := range values {
				if mode == ColorHex && v.Uint32() > colorMask {
					continue
				}
				text := Display(v, mode, o)
				got, err := Parse(text, mode, o)
				if err != nil {
					t.Fatalf("Parse(Display(%s)) in %s with %+v: error = %v", v, mode, o, err)
				}
				if !got.Equal(v) {
					t.Errorf("Parse(%q) in %s = %s, want %s", text, mode, got, v)
				}
			}
		}
	}
}

// Cycling through every notation must leave the value alone; only the text changes.
func TestModeCycleKeepsValue(t *testing.T) {
	v := numeric.FromInt64(493)
	mode := Decimal
	for i := 0; i < len(Modes())*2; i++ {
		text := Display(v, mode, Options{ShowBasePrefix: true})
		if text == "" {
			t.Fatalf("Display() in %s is empty", mode)
		}
		mode = mode.Next()
	}
	if mode != Decimal {
		t.Errorf("mode after two full cycles = %s, want decimal", mode)
	}
	if !v.Equal(numeric.FromInt64(493)) {
		t.Errorf("value changed to %s", v)
	}
}

func TestBodyOffset(t *testing.T) {
	tests := []struct {
		cursor int
		prefix string
		want   int
	}{
		{0, "", 0},
		{5, "", 5},
		{3, "€", 2},
		{1, "€", 0},
		{0, "IP: ", 0},
		{7, "IP: ", 3},
		{-1, "", -1},
		{-1, "IP: ", -1},
	}

	for _, tt := range tests {
		if got := BodyOffset(tt.cursor, Options{Prefix: tt.prefix}); got != tt.want {
			t.Errorf("BodyOffset(%d, %q) = %d, want %d", tt.cursor, tt.prefix, got, tt.want)
		}
	}
}
