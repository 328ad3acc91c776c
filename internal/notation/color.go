package notation

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/muurk/numedit/internal/numeric"
)

// Color returns the 24-bit colour view of v. Bits above the low 24 are dropped
// as in ColorHex rendering; None is black.
func Color(v numeric.Value) colorful.Color {
	n := v.Uint32() & colorMask
	return colorful.Color{
		R: float64((n>>16)&0xFF) / 255.0,
		G: float64((n>>8)&0xFF) / 255.0,
		B: float64(n&0xFF) / 255.0,
	}
}

// ExpandShortColor expands the three-digit colour shorthand "#RGB" to
// "#RRGGBB". Any other text is returned unchanged. Decode does not apply this
// on its own: "ABC" decodes as 0xABC, not 0xAABBCC.
func ExpandShortColor(text string) string {
	t := strings.TrimSpace(text)
	hash := strings.HasPrefix(t, "#")
	body := strings.TrimPrefix(t, "#")
	if len(body) != 3 {
		return text
	}
	for i := 0; i < 3; i++ {
		if digitValue(body[i]) >= 16 {
			return text
		}
	}

	expanded := string([]byte{body[0], body[0], body[1], body[1], body[2], body[2]})
	if hash {
		return "#" + expanded
	}
	return expanded
}
