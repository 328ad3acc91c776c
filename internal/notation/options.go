package notation

// LetterCase selects the case of hex digits a-f.
type LetterCase int

const (
	Upper LetterCase = iota
	Lower
)

// DefaultGroupSeparator is used when grouping is on and no glyph was supplied.
const DefaultGroupSeparator = ","

// Options are the cosmetic settings applied around codec output.
// None of them affect the stored value.
type Options struct {
	Prefix         string     // literal text shown before the numeral
	Suffix         string     // literal text shown after the numeral
	ShowBasePrefix bool       // emit "0x", "0b", "0o" or "#"
	Case           LetterCase // case of hex digits
	Grouping       bool       // group decimal digits in threes
	GroupSeparator string     // glyph inserted between groups
}

func (o Options) separator() string {
	if o.GroupSeparator == "" {
		return DefaultGroupSeparator
	}
	return o.GroupSeparator
}
