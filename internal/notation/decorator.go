package notation

import (
	"strings"

	"github.com/muurk/numedit/internal/numeric"
)

// Wrap surrounds codec output with the configured prefix and suffix.
func Wrap(body string, o Options) string {
	return o.Prefix + body + o.Suffix
}

// Unwrap strips the configured prefix and suffix from user text by literal
// match, then removes decimal group separators when grouping is on.
// Text without the decorations passes through unchanged.
func Unwrap(text string, mode Mode, o Options) string {
	t := strings.TrimSpace(text)
	if p := strings.TrimSpace(o.Prefix); p != "" {
		t = strings.TrimPrefix(t, p)
	}
	if s := strings.TrimSpace(o.Suffix); s != "" {
		t = strings.TrimSuffix(t, s)
	}
	if mode == Decimal && o.Grouping {
		t = strings.ReplaceAll(t, o.separator(), "")
	}
	return strings.TrimSpace(t)
}

// Display renders v for an edit field: codec output wrapped in the prefix
// and suffix. None renders as "" without decorations.
func Display(v numeric.Value, mode Mode, o Options) string {
	if v.IsNone() {
		return ""
	}
	return Wrap(Encode(v, mode, o), o)
}

// Parse reverses Display: decorations are removed and the remainder decoded.
func Parse(text string, mode Mode, o Options) (numeric.Value, error) {
	return Decode(Unwrap(text, mode, o), mode)
}

// BodyOffset converts a rune offset into decorated text to a rune offset into
// the codec output inside it. Offsets inside the prefix map to 0. A negative
// cursor means "no position" and is returned unchanged.
func BodyOffset(cursor int, o Options) int {
	if cursor < 0 {
		return cursor
	}
	return max(cursor-len([]rune(o.Prefix)), 0)
}
