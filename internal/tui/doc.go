// Package tui implements the interactive editor screen for numedit.
//
// The screen is a single bubbletea model around an *editor.Control. The edit
// field is a bubbles textinput; everything else on screen is derived from the
// control after each message.
//
// # Key Bindings
//
//	↑ / ↓      step by the increment, or the octet under the cursor in ipv4
//	tab        next notation (pending text is committed first)
//	enter      commit the field
//	esc        discard the edit and show the last committed text
//	ctrl+k     clear the value
//	ctrl+y     copy the formatted value to the clipboard
//	?          toggle the full help
//	ctrl+c     quit
//
// Text that does not parse is never stored. The field falls back to the
// rendering of the last valid value and the status line shows why.
//
// # Usage Example
//
//	c := editor.NewWithSettings(numeric.FromInt64(255), settings)
//	if err := tui.Run(c, tui.Options{ShowSwatch: true}); err != nil {
//	    log.Fatal(err)
//	}
package tui
