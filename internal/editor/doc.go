// Package editor ties the numeric value, notation codecs and steppers into a
// single edit control.
//
// A Control owns one mutable tuple of value, bounds, notation and display
// options. Everything else in the engine is pure; Control is where changes
// happen and where they are logged.
//
// # Rendering
//
// DisplayText is the one function that turns state into text. Setters never
// re-render on their own: the caller asks for DisplayText after it changes
// anything.
//
//	c := editor.New(numeric.FromInt64(255))
//	c.SetMode(notation.Hexadecimal)
//	c.DisplayText() // "FF"
//
// # Edits
//
// Commit decodes committed text. A *notation.FormatError leaves the value
// alone, and the caller is expected to put DisplayText back into the field.
//
// StepValue applies the bounded spinner policy. StepValueAt does the same
// except in IPv4 mode, where it steps the octet under the cursor and wraps.
//
// # Projections
//
// HexString, BinaryString, OctalString, ColorHexString, IPv4String and
// FormattedString render the value in a fixed notation regardless of the
// current mode. Each reports false when the control holds no value.
package editor
