package notation

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/muurk/numedit/internal/numeric"
)

// codec is the pure encode/decode pair for one notation.
// encode receives a value that is never None; decode receives text that has
// been trimmed and had its base prefix removed.
type codec struct {
	basePrefix string
	encode     func(v numeric.Value, o Options) string
	decode     func(body string) (numeric.Value, *FormatError)
}

// codecs is indexed by Mode. It is built once and never modified.
var codecs = [modeCount]codec{
	Decimal: {
		encode: encodeDecimal,
		decode: decodeDecimal,
	},
	Hexadecimal: {
		basePrefix: "0x",
		encode:     func(v numeric.Value, o Options) string { return applyCase(v.IntegralMagnitude().Text(16), o.Case) },
		decode:     func(body string) (numeric.Value, *FormatError) { return decodeBase(body, 16, Hexadecimal) },
	},
	Binary: {
		basePrefix: "0b",
		encode:     func(v numeric.Value, _ Options) string { return v.IntegralMagnitude().Text(2) },
		decode:     func(body string) (numeric.Value, *FormatError) { return decodeBase(body, 2, Binary) },
	},
	Octal: {
		basePrefix: "0o",
		encode:     func(v numeric.Value, _ Options) string { return v.IntegralMagnitude().Text(8) },
		decode:     func(body string) (numeric.Value, *FormatError) { return decodeBase(body, 8, Octal) },
	},
	ColorHex: {
		basePrefix: "#",
		encode:     encodeColorHex,
		decode:     func(body string) (numeric.Value, *FormatError) { return decodeBase(body, 16, ColorHex) },
	},
	IPv4: {
		encode: func(v numeric.Value, _ Options) string { return FormatIPv4(v.Uint32()) },
		decode: decodeIPv4,
	},
}

func lookup(mode Mode) codec {
	if !mode.Valid() {
		return codecs[Decimal]
	}
	return codecs[mode]
}

// BasePrefix returns the canonical prefix of a notation, or "" if it has none.
func BasePrefix(mode Mode) string {
	return lookup(mode).basePrefix
}

// Encode renders v in the given notation. It never fails: None renders as "",
// and values too wide for ColorHex or IPv4 are masked to their low bits.
// Prefix and suffix from o are not applied; see Display.
func Encode(v numeric.Value, mode Mode, o Options) string {
	if v.IsNone() {
		return ""
	}
	c := lookup(mode)
	body := c.encode(v, o)
	if o.ShowBasePrefix && c.basePrefix != "" {
		return c.basePrefix + body
	}
	return body
}

// Decode parses text written in the given notation. Surrounding whitespace
// and a case-insensitive base prefix are accepted. Failures are *FormatError.
func Decode(text string, mode Mode) (numeric.Value, error) {
	if !mode.Valid() {
		return numeric.None(), newMalformed(mode, text, "unknown notation")
	}

	c := codecs[mode]
	body := strings.TrimSpace(text)
	if c.basePrefix != "" && hasPrefixFold(body, c.basePrefix) {
		body = body[len(c.basePrefix):]
	}

	v, ferr := c.decode(body)
	if ferr != nil {
		return numeric.None(), ferr
	}
	return v, nil
}

// Valid reports whether text decodes in the given notation.
func Valid(text string, mode Mode) bool {
	_, err := Decode(text, mode)
	return err == nil
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func applyCase(digits string, c LetterCase) string {
	if c == Lower {
		return strings.ToLower(digits)
	}
	return strings.ToUpper(digits)
}

func encodeDecimal(v numeric.Value, o Options) string {
	neg, intDigits, fracDigits := v.Parts()

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if o.Grouping {
		b.WriteString(group(intDigits, o.separator()))
	} else {
		b.WriteString(intDigits)
	}
	if fracDigits != "" {
		b.WriteByte('.')
		b.WriteString(fracDigits)
	}
	return b.String()
}

func decodeDecimal(body string) (numeric.Value, *FormatError) {
	v, err := numeric.Parse(body)
	if err != nil {
		return numeric.None(), newMalformed(Decimal, body, err.Error())
	}
	return v, nil
}

// GroupPositions returns the offsets in a run of n integer digits before
// which a group separator belongs, counting threes from the right.
func GroupPositions(n int) []int {
	var positions []int
	for p := n % 3; p < n; p += 3 {
		if p > 0 {
			positions = append(positions, p)
		}
	}
	return positions
}

func group(digits, sep string) string {
	positions := GroupPositions(len(digits))
	if len(positions) == 0 {
		return digits
	}

	var b strings.Builder
	last := 0
	for _, p := range positions {
		b.WriteString(digits[last:p])
		b.WriteString(sep)
		last = p
	}
	b.WriteString(digits[last:])
	return b.String()
}

const colorMask = 0xFFFFFF

func encodeColorHex(v numeric.Value, o Options) string {
	n := v.Uint32() & colorMask
	return applyCase(fmt.Sprintf("%06x", n), o.Case)
}

func decodeBase(body string, base int, mode Mode) (numeric.Value, *FormatError) {
	if body == "" {
		return numeric.None(), newMalformed(mode, body, "no digits")
	}
	for i := 0; i < len(body); i++ {
		if digitValue(body[i]) >= base {
			return numeric.None(), newMalformed(mode, body,
				fmt.Sprintf("%q is not a base-%d digit", body[i], base))
		}
	}

	n, ok := new(big.Int).SetString(body, base)
	if !ok {
		return numeric.None(), newMalformed(mode, body, fmt.Sprintf("not a base-%d numeral", base))
	}
	return numeric.FromBig(n), nil
}

// digitValue maps an ASCII digit or letter to its value, or 99 for anything else.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return 99
	}
}

// FormatIPv4 renders n as four decimal octets, most significant first.
func FormatIPv4(n uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", (n>>24)&0xFF, (n>>16)&0xFF, (n>>8)&0xFF, n&0xFF)
}

// ParseOctet parses one dotted-quad field. Leading zeros are accepted.
func ParseOctet(field string) (uint8, error) {
	n, ferr := parseOctet(field)
	if ferr != nil {
		return 0, ferr
	}
	return n, nil
}

func parseOctet(field string) (uint8, *FormatError) {
	if field == "" {
		return 0, newMalformed(IPv4, field, "empty field")
	}
	for i := 0; i < len(field); i++ {
		if field[i] < '0' || field[i] > '9' {
			return 0, newMalformed(IPv4, field, "field is not a decimal number")
		}
	}

	trimmed := strings.TrimLeft(field, "0")
	if trimmed == "" {
		return 0, nil
	}
	if len(trimmed) > 3 {
		return 0, newOctetOutOfRange(field)
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n > 255 {
		return 0, newOctetOutOfRange(field)
	}
	return uint8(n), nil
}

func decodeIPv4(body string) (numeric.Value, *FormatError) {
	fields := strings.Split(body, ".")
	if len(fields) != 4 {
		return numeric.None(), newWrongFieldCount(body, len(fields))
	}

	var n uint32
	for _, field := range fields {
		octet, ferr := parseOctet(field)
		if ferr != nil {
			return numeric.None(), ferr
		}
		n = n<<8 | uint32(octet)
	}
	return numeric.FromUint64(uint64(n)), nil
}
