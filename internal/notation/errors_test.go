package notation

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFormatErrorMessage(t *testing.T) {
	err := newOctetOutOfRange("300")
	msg := err.Error()
	for _, want := range []string{"Octet Out Of Range", "ipv4", `"300"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestFormatErrorPredicates(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		malformed bool
		count     bool
		octet     bool
	}{
		{"Malformed", newMalformed(Hexadecimal, "G", "bad digit"), true, false, false},
		{"Field count", newWrongFieldCount("1.2.3", 3), false, true, false},
		{"Octet", newOctetOutOfRange("256"), false, false, true},
		{"Wrapped", fmt.Errorf("commit: %w", newOctetOutOfRange("999")), false, false, true},
		{"Foreign", errors.New("other"), false, false, false},
		{"Nil", nil, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMalformedNumeral(tt.err); got != tt.malformed {
				t.Errorf("IsMalformedNumeral() = %v, want %v", got, tt.malformed)
			}
			if got := IsWrongFieldCount(tt.err); got != tt.count {
				t.Errorf("IsWrongFieldCount() = %v, want %v", got, tt.count)
			}
			if got := IsOctetOutOfRange(tt.err); got != tt.octet {
				t.Errorf("IsOctetOutOfRange() = %v, want %v", got, tt.octet)
			}
		})
	}
}

func TestErrorKindString(t *testing.T) {
	if got := ErrorKind(9).String(); got != "ErrorKind(9)" {
		t.Errorf("String() = %q", got)
	}
}
