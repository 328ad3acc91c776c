package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType selects the frame of a result box.
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// resultFrame is the per-type look of a result box.
type resultFrame struct {
	marker string
	label  string
	title  lipgloss.Style
	border lipgloss.Color
}

var resultFrames = map[ResultType]resultFrame{
	ResultSuccess: {SuccessMarker, "SUCCESS", SuccessTitleStyle, SuccessColor},
	ResultFailure: {FailureMarker, "FAILED", ErrorTitleStyle, ErrorColor},
	ResultWarning: {WarningMarker, "WARNING", WarningTitleStyle, WarningColor},
}

// Result is the box a command prints when it finishes. Failures carry the
// error and optional hints; the other types carry ordered details and
// free-form notes.
type Result struct {
	Type    ResultType
	Title   string
	Details []Param
	Notes   []string
	Error   error
	Hints   []string
	Width   int
}

func newResult(t ResultType, title string) *Result {
	return &Result{Type: t, Title: title, Width: GetTerminalWidth()}
}

// NewSuccessResult creates a success box listing details in order.
func NewSuccessResult(title string, details ...Param) *Result {
	r := newResult(ResultSuccess, title)
	r.Details = details
	return r
}

// NewFailureResult creates a failure box for err with optional hints.
func NewFailureResult(title string, err error, hints []string) *Result {
	r := newResult(ResultFailure, title)
	r.Error = err
	r.Hints = hints
	return r
}

// NewWarningResult creates a warning box, used when a command completed but
// left something undone (a rejected step, for instance).
func NewWarningResult(title string, details ...Param) *Result {
	r := newResult(ResultWarning, title)
	r.Details = details
	return r
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail key-value pair
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Param{Key: key, Value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	frame, ok := resultFrames[r.Type]
	if !ok {
		frame = resultFrames[ResultSuccess]
	}
	width := clampWidth(r.Width)

	body := []string{
		"",
		frame.title.Render("   " + frame.marker + "  " + frame.label + "  ─  " + r.Title),
		"",
	}
	if r.Error != nil {
		body = append(body, ErrorMessageStyle.Render("   Error: "+r.Error.Error()), "")
	}
	if len(r.Notes) > 0 {
		for _, note := range r.Notes {
			body = append(body, ResultValueStyle.Render("   • "+note))
		}
		body = append(body, "")
	}
	if len(r.Details) > 0 {
		body = append(body, indent(renderParams(r.Details, ResultKeyStyle, ResultValueStyle), "   "), "")
	}
	if len(r.Hints) > 0 {
		body = append(body, renderHints(r.Hints, width), "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(frame.border).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(body, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}

// renderHints draws the bulleted hint list in its own muted box.
func renderHints(hints []string, width int) string {
	lines := make([]string, 0, len(hints)+2)
	lines = append(lines, HintTitleStyle.Render("Hints:"), "")
	for _, hint := range hints {
		lines = append(lines, HintItemStyle.Render("  • "+hint))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(max(width-12, 40)).
		Padding(0, 1).
		MarginLeft(3).
		Render(strings.Join(lines, "\n"))
}

func indent(block, pad string) string {
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
