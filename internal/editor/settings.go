package editor

import (
	"github.com/muurk/numedit/internal/notation"
	"github.com/muurk/numedit/internal/numeric"
)

// Settings bundles everything about a control except its value.
type Settings struct {
	Mode    notation.Mode
	Options notation.Options
	Bounds  numeric.Bounds
}

// DefaultSettings returns decimal notation, no decorations, unbounded
// limits and an increment of 1.
func DefaultSettings() Settings {
	return Settings{
		Mode:   notation.Decimal,
		Bounds: numeric.DefaultBounds(),
	}
}
