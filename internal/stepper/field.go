package stepper

import (
	"github.com/muurk/numedit/internal/notation"
	"github.com/muurk/numedit/internal/numeric"
)

const fieldSeparator = '.'

// Segment is one field of rendered dotted text. Start and End are byte
// offsets with End exclusive, so the separator after a field sits at End.
type Segment struct {
	Start int
	End   int
	Text  string
}

// Segments splits dotted text into its fields and records where each one
// sits. An empty text yields a single empty segment.
func Segments(text string) []Segment {
	var segs []Segment
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == fieldSeparator {
			segs = append(segs, Segment{Start: start, End: i, Text: text[start:i]})
			start = i + 1
		}
	}
	return append(segs, Segment{Start: start, End: len(text), Text: text[start:]})
}

// Locate returns the index of the segment a cursor offset addresses.
//
// A cursor inside a field, or just before its first character, addresses that
// field. A cursor on a separator addresses the field after it. A cursor at or
// past the end of the text, or a negative one, addresses the last field.
func Locate(segs []Segment, cursor int) int {
	last := len(segs) - 1
	if cursor < 0 {
		return last
	}
	for i, s := range segs {
		if cursor >= s.Start && cursor < s.End {
			return i
		}
		if cursor < s.Start {
			// on the separator before s
			return i
		}
	}
	return last
}

// StepField moves the octet under cursor of v's dotted-quad rendering by one
// in direction d, wrapping 255 to 0 and 0 to 255. The other three octets are
// left as they were. It returns the new value and the index of the octet it
// changed.
//
// The bounds of the owning control are not consulted. None is treated as
// 0.0.0.0, and values wider than 32 bits are masked first.
func StepField(v numeric.Value, cursor int, d Direction) (numeric.Value, int) {
	text := notation.Encode(v.OrZero(), notation.IPv4, notation.Options{})
	segs := Segments(text)
	target := Locate(segs, cursor)

	var n uint32
	for i, s := range segs {
		octet, err := notation.ParseOctet(s.Text)
		if err != nil {
			return v, target
		}
		if i == target {
			octet = wrapOctet(int(octet) + int(d))
		}
		n = n<<8 | uint32(octet)
	}
	return numeric.FromUint64(uint64(n)), target
}

// FieldAt reports which octet of rendered dotted text a cursor addresses.
func FieldAt(text string, cursor int) int {
	return Locate(Segments(text), cursor)
}

func wrapOctet(n int) uint8 {
	return uint8(((n % 256) + 256) % 256)
}
