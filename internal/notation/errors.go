package notation

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why text could not be decoded.
type ErrorKind int

const (
	// MalformedNumeral means a character is not a digit of the notation's base,
	// or there were no digits at all.
	MalformedNumeral ErrorKind = iota
	// WrongFieldCount means a dotted quad did not have exactly four fields.
	WrongFieldCount
	// OctetOutOfRange means a dotted-quad field was above 255.
	OctetOutOfRange
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case MalformedNumeral:
		return "Malformed Numeral"
	case WrongFieldCount:
		return "Wrong Field Count"
	case OctetOutOfRange:
		return "Octet Out Of Range"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// FormatError reports text that does not decode in a notation.
// Callers are expected to discard the edit and keep the last valid text.
type FormatError struct {
	Kind    ErrorKind // Category of failure
	Mode    Mode      // Notation the text was decoded in
	Text    string    // Offending substring (a single field for IPv4)
	Message string    // Human-readable detail
}

// Error implements the error interface
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s (%s %q)", e.Kind, e.Message, e.Mode, e.Text)
}

func newMalformed(mode Mode, text, message string) *FormatError {
	return &FormatError{Kind: MalformedNumeral, Mode: mode, Text: text, Message: message}
}

func newWrongFieldCount(text string, got int) *FormatError {
	return &FormatError{
		Kind:    WrongFieldCount,
		Mode:    IPv4,
		Text:    text,
		Message: fmt.Sprintf("expected 4 dot-separated fields, got %d", got),
	}
}

func newOctetOutOfRange(field string) *FormatError {
	return &FormatError{
		Kind:    OctetOutOfRange,
		Mode:    IPv4,
		Text:    field,
		Message: "field must be 0-255",
	}
}

// AsFormatError unwraps err to a *FormatError if it is one.
func AsFormatError(err error) (*FormatError, bool) {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// IsMalformedNumeral checks if an error is a malformed-numeral decode failure
func IsMalformedNumeral(err error) bool {
	fe, ok := AsFormatError(err)
	return ok && fe.Kind == MalformedNumeral
}

// IsWrongFieldCount checks if an error is a dotted-quad field count failure
func IsWrongFieldCount(err error) bool {
	fe, ok := AsFormatError(err)
	return ok && fe.Kind == WrongFieldCount
}

// IsOctetOutOfRange checks if an error is a dotted-quad range failure
func IsOctetOutOfRange(err error) bool {
	fe, ok := AsFormatError(err)
	return ok && fe.Kind == OctetOutOfRange
}
