package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prints warnings in a warning box and asks the user to type answer.
// It returns true only if the line read from in matches answer after
// trimming; EOF counts as a refusal.
func Confirm(in io.Reader, out io.Writer, title string, warnings []string, answer string) bool {
	box := NewWarningResult(title)
	box.Notes = warnings
	fmt.Fprintf(out, "%s\n\n", box.Render())
	fmt.Fprint(out, WarningTitleStyle.Render(fmt.Sprintf("To proceed, type %q and press Enter: ", answer)))

	line, err := bufio.NewReader(in).ReadString('\n')
	fmt.Fprintln(out)
	if err != nil && line == "" {
		return false
	}
	if strings.TrimSpace(line) == answer {
		return true
	}

	fmt.Fprintf(out, "%s\n\n", HintItemStyle.Render("  Operation cancelled."))
	return false
}
