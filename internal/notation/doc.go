// Package notation converts numeric values to and from text in six notations.
//
// # Notations
//
// Mode is a closed set dispatched through a fixed table of pure functions:
//
//	Decimal      -1234.5, 1,234.5 with grouping
//	Hexadecimal  FF, 0xff
//	Binary       1010, 0b1010
//	Octal        755, 0o755
//	ColorHex     0000FF, #0000ff (always six digits)
//	IPv4         192.168.1.1
//
// Every notation but Decimal works on the integral magnitude of the value:
// fractions are truncated and the sign is dropped. ColorHex keeps the low 24
// bits and IPv4 the low 32.
//
// # Encoding and decoding
//
// Encode never fails. Decode returns a *FormatError with one of three kinds:
//
//	MalformedNumeral  a character outside the base, or no digits
//	WrongFieldCount   a dotted quad without exactly four fields
//	OctetOutOfRange   a dotted-quad field above 255
//
// Decode is lenient about form: surrounding whitespace, a base prefix in any
// case, mixed-case digits and unpadded colour hex are all accepted.
//
// # Decoration
//
// Display and Parse wrap the codec with the literal prefix and suffix from
// Options. Changing decorations or the notation never touches the value they
// render; only the caller decides when to commit parsed text.
//
//	text := notation.Display(v, notation.Hexadecimal, notation.Options{ShowBasePrefix: true})
//	v, err := notation.Parse(text, notation.Hexadecimal, opts)
//	if fe, ok := notation.AsFormatError(err); ok {
//	    // keep the previous text
//	}
package notation
