package notation

import (
	"fmt"
	"strings"
)

// Mode selects how a value is rendered. It carries no value semantics:
// switching modes never changes the number being displayed.
type Mode int

const (
	// Decimal renders the full signed value, optionally grouped.
	Decimal Mode = iota
	// Hexadecimal renders the integral magnitude in base 16 ("0x" prefix).
	Hexadecimal
	// Binary renders the integral magnitude in base 2 ("0b" prefix).
	Binary
	// Octal renders the integral magnitude in base 8 ("0o" prefix).
	Octal
	// ColorHex renders the low 24 bits as six hex digits ("#" prefix).
	ColorHex
	// IPv4 renders the low 32 bits as a dotted quad.
	IPv4

	modeCount = iota
)

var modeNames = [modeCount]string{
	Decimal:     "decimal",
	Hexadecimal: "hex",
	Binary:      "binary",
	Octal:       "octal",
	ColorHex:    "color",
	IPv4:        "ipv4",
}

var modeAliases = map[string]Mode{
	"dec":         Decimal,
	"decimal":     Decimal,
	"hex":         Hexadecimal,
	"hexadecimal": Hexadecimal,
	"bin":         Binary,
	"binary":      Binary,
	"oct":         Octal,
	"octal":       Octal,
	"color":       ColorHex,
	"colour":      ColorHex,
	"colorhex":    ColorHex,
	"ip":          IPv4,
	"ipv4":        IPv4,
	"ipaddress":   IPv4,
}

// Modes returns every notation in cycling order.
func Modes() []Mode {
	modes := make([]Mode, modeCount)
	for i := range modes {
		modes[i] = Mode(i)
	}
	return modes
}

// Valid reports whether m is one of the defined notations.
func (m Mode) Valid() bool {
	return m >= 0 && m < modeCount
}

// String returns the canonical flag name of the notation.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Next returns the notation after m, wrapping from IPv4 back to Decimal.
func (m Mode) Next() Mode {
	if !m.Valid() {
		return Decimal
	}
	return (m + 1) % modeCount
}

// ParseMode resolves a notation name or alias, case-insensitively.
func ParseMode(s string) (Mode, error) {
	if m, ok := modeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return Decimal, fmt.Errorf("unknown notation %q (want one of %s)", s, strings.Join(modeNames[:], ", "))
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value.
func (m Mode) Type() string {
	return "notation"
}
