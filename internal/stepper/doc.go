// Package stepper implements the two spinner policies of the editor.
//
// # Bounded stepping
//
// Step and Increment add a delta to the current value and refuse the whole
// step if it would cross the bound in the direction of travel:
//
//	v, out := stepper.Step(numeric.FromInt64(98), numeric.FromInt64(5), bounds) // max 100
//	// v == 98, out == RejectedAboveMax
//
// Stepping up only consults the maximum and stepping down only the minimum,
// so a value already outside its bounds can still be stepped back towards them.
//
// # Field stepping
//
// StepField changes a single octet of a dotted-quad value, chosen by the
// cursor position in its rendered text, and wraps within 0-255. It always
// succeeds and ignores the control's bounds.
package stepper
