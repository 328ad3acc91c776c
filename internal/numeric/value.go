package numeric

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"gopkg.in/inf.v0"
)

// Value is an optional signed decimal of arbitrary precision.
//
// The zero Value holds no number. Values are immutable: every operation
// returns a new Value and never aliases the receiver's storage.
type Value struct {
	dec *inf.Dec
}

// None returns a Value holding no number.
func None() Value {
	return Value{}
}

// FromInt64 returns a Value holding n.
func FromInt64(n int64) Value {
	return Value{dec: inf.NewDec(n, 0)}
}

// FromUint64 returns a Value holding n.
func FromUint64(n uint64) Value {
	return Value{dec: inf.NewDecBig(new(big.Int).SetUint64(n), 0)}
}

// FromBig returns a Value holding the integer n. A nil n yields None.
func FromBig(n *big.Int) Value {
	if n == nil {
		return None()
	}
	return Value{dec: inf.NewDecBig(new(big.Int).Set(n), 0)}
}

// FromDec returns a Value holding a copy of d. A nil d yields None.
func FromDec(d *inf.Dec) Value {
	if d == nil {
		return None()
	}
	return Value{dec: new(inf.Dec).Set(d)}
}

// Parse reads a plain decimal literal: an optional sign, at least one digit,
// and an optional fractional part introduced by a single '.'.
// Surrounding whitespace is ignored. Exponents and grouping are rejected.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return None(), fmt.Errorf("empty decimal literal")
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart, fracPart, hasPoint := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return None(), fmt.Errorf("decimal literal has no digits")
	}
	if hasPoint && fracPart == "" {
		return None(), fmt.Errorf("decimal literal %q ends with a decimal point", s)
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return None(), fmt.Errorf("invalid decimal literal %q", s)
	}
	if intPart == "" {
		intPart = "0"
	}

	unscaled, ok := new(big.Int).SetString(intPart+fracPart, 10)
	if !ok {
		return None(), fmt.Errorf("invalid decimal literal %q", s)
	}
	if neg {
		unscaled.Neg(unscaled)
	}
	return Value{dec: inf.NewDecBig(unscaled, inf.Scale(len(fracPart)))}, nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for constants and tests.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsNone reports whether v holds no number.
func (v Value) IsNone() bool {
	return v.dec == nil
}

// Dec returns a copy of the underlying decimal, or nil for None.
func (v Value) Dec() *inf.Dec {
	if v.dec == nil {
		return nil
	}
	return new(inf.Dec).Set(v.dec)
}

// OrZero returns v, or zero when v holds no number.
func (v Value) OrZero() Value {
	if v.dec == nil {
		return FromInt64(0)
	}
	return v
}

// Add returns v + w. None operands are treated as zero.
// The scale of the result is the greater of the two operand scales, so the
// sum is exact.
func (v Value) Add(w Value) Value {
	a, b := v.OrZero(), w.OrZero()
	return Value{dec: new(inf.Dec).Add(a.dec, b.dec)}
}

// Neg returns -v. None stays None.
func (v Value) Neg() Value {
	if v.dec == nil {
		return v
	}
	return Value{dec: new(inf.Dec).Neg(v.dec)}
}

// Sign returns -1, 0 or +1. None reports 0.
func (v Value) Sign() int {
	if v.dec == nil {
		return 0
	}
	return v.dec.Sign()
}

// Cmp compares two numbers. None compares as zero; use IsNone to tell them apart.
func (v Value) Cmp(w Value) int {
	return v.OrZero().dec.Cmp(w.OrZero().dec)
}

// Equal reports whether v and w are both None, or both hold the same number
// regardless of scale (1.0 equals 1).
func (v Value) Equal(w Value) bool {
	if v.IsNone() || w.IsNone() {
		return v.IsNone() == w.IsNone()
	}
	return v.dec.Cmp(w.dec) == 0
}

// Parts splits v into its sign and the digit strings on each side of the
// decimal point. intDigits is never empty; fracDigits is empty for integers.
// None yields ("", "") with neg false.
func (v Value) Parts() (neg bool, intDigits, fracDigits string) {
	if v.dec == nil {
		return false, "", ""
	}

	unscaled := v.dec.UnscaledBig()
	neg = unscaled.Sign() < 0
	digits := new(big.Int).Abs(unscaled).String()

	scale := int(v.dec.Scale())
	if scale <= 0 {
		if digits != "0" {
			digits += strings.Repeat("0", -scale)
		}
		return neg, digits, ""
	}

	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	split := len(digits) - scale
	return neg, digits[:split], digits[split:]
}

// String renders v as a plain decimal literal keeping its scale
// ("1.00" stays "1.00"). None renders as "".
func (v Value) String() string {
	if v.dec == nil {
		return ""
	}
	neg, intDigits, fracDigits := v.Parts()
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(intDigits)
	if fracDigits != "" {
		b.WriteByte('.')
		b.WriteString(fracDigits)
	}
	return b.String()
}

// IntegralMagnitude truncates v toward zero and drops the sign.
// None yields zero.
func (v Value) IntegralMagnitude() *big.Int {
	if v.dec == nil {
		return new(big.Int)
	}

	mag := new(big.Int).Abs(v.dec.UnscaledBig())
	scale := int64(v.dec.Scale())
	switch {
	case scale > 0:
		mag.Quo(mag, pow10(scale))
	case scale < 0:
		mag.Mul(mag, pow10(-scale))
	}
	return mag
}

// Uint32 returns the integral magnitude masked to its low 32 bits.
func (v Value) Uint32() uint32 {
	mag := v.IntegralMagnitude()
	return uint32(new(big.Int).And(mag, mask32).Uint64())
}

// Int64 returns v truncated toward zero, and whether it fits in an int64.
// None reports (0, false).
func (v Value) Int64() (int64, bool) {
	if v.dec == nil {
		return 0, false
	}
	mag := v.IntegralMagnitude()
	if v.Sign() < 0 {
		mag.Neg(mag)
	}
	if !mag.IsInt64() {
		return 0, false
	}
	return mag.Int64(), true
}

// Float64 returns the nearest float64 to v, for display only. None is 0.
func (v Value) Float64() float64 {
	if v.dec == nil {
		return 0
	}
	f, _ := strconv.ParseFloat(v.String(), 64)
	return f
}

var mask32 = new(big.Int).SetUint64(0xFFFFFFFF)

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}
