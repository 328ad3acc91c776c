// Package numeric holds the canonical number behind a numeral editor.
//
// A Value is an optional, signed, arbitrary-precision decimal backed by
// gopkg.in/inf.v0. "No value" is a legal state: the zero Value holds no
// number, and every rendering of it is empty.
//
// # Values
//
// Values are immutable and compare by magnitude, not representation:
//
//	a := numeric.MustParse("1.00")
//	b := numeric.FromInt64(1)
//	a.Equal(b) // true
//	a.String() // "1.00"
//
// Fixed-width notations (hex, colour, dotted quad) work on the integral
// magnitude of a value: IntegralMagnitude truncates toward zero and drops the
// sign, and Uint32 additionally masks to the low 32 bits.
//
// # Store
//
// Store is the single mutable slot owned by one control. Direct assignment
// through Store.Set is never bounds-checked; Bounds are consulted only by the
// stepper package.
package numeric
