package numeric

// Bounds constrains stepper-driven changes of a stored value.
// A None Min or Max means that side is unbounded. A None or zero Increment
// turns stepping into a no-op.
type Bounds struct {
	Min       Value
	Max       Value
	Increment Value
}

// DefaultBounds returns unbounded limits with an increment of 1.
func DefaultBounds() Bounds {
	return Bounds{Increment: FromInt64(1)}
}

// AboveMax reports whether v exceeds a set maximum.
func (b Bounds) AboveMax(v Value) bool {
	return !b.Max.IsNone() && v.Cmp(b.Max) > 0
}

// BelowMin reports whether v is under a set minimum.
func (b Bounds) BelowMin(v Value) bool {
	return !b.Min.IsNone() && v.Cmp(b.Min) < 0
}

// Contains reports whether v lies within both set limits.
func (b Bounds) Contains(v Value) bool {
	return !b.AboveMax(v) && !b.BelowMin(v)
}

// Store holds the canonical value of one control together with its bounds.
//
// Store performs no locking; the owning control serialises access.
type Store struct {
	value  Value
	bounds Bounds
}

// NewStore creates a store holding initial with default bounds.
func NewStore(initial Value) *Store {
	return &Store{
		value:  initial,
		bounds: DefaultBounds(),
	}
}

// Value returns the current value.
func (s *Store) Value() Value {
	return s.value
}

// Set assigns v without consulting the bounds and returns the previous value.
func (s *Store) Set(v Value) Value {
	old := s.value
	s.value = v
	return old
}

// Clear drops the value back to None and returns the previous value.
func (s *Store) Clear() Value {
	return s.Set(None())
}

// Bounds returns the current bounds.
func (s *Store) Bounds() Bounds {
	return s.bounds
}

// SetBounds replaces the bounds. The stored value is left untouched even when
// it falls outside the new limits.
func (s *Store) SetBounds(b Bounds) {
	s.bounds = b
}
