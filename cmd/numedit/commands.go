package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muurk/numedit/internal/editor"
	"github.com/muurk/numedit/internal/notation"
	"github.com/muurk/numedit/internal/numeric"
	"github.com/muurk/numedit/internal/stepper"
	"github.com/muurk/numedit/internal/tui"
	"github.com/muurk/numedit/internal/ui"
)

// Command flags
var (
	shortColor bool
	stepUp     bool
	stepDown   bool
	stepTimes  int
	stepCursor int
	showMeter  bool
)

func init() {
	for _, cmd := range []*cobra.Command{encodeCmd, decodeCmd, convertCmd, stepCmd, editCmd} {
		cmd.Flags().AddFlagSet(displayFlagSet)
	}

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(editCmd)
}

// encodeCmd renders a decimal value in the chosen notation
var encodeCmd = &cobra.Command{
	Use:   "encode <decimal>",
	Short: "Render a decimal value in a notation",
	Long: `Render a decimal value in the chosen notation, wrapped in the configured
prefix and suffix.

Every notation except decimal shows the integral magnitude of the value: the
fraction is dropped and so is the sign. Colour hex keeps the low 24 bits and
IPv4 the low 32.`,
	Example: `  numedit encode 493 --mode octal --show-prefix     # 0o755
  numedit encode 16734003 --mode color --show-prefix  # #FF5733
  numedit encode 1234567.5 --grouping                 # 1,234,567.5
  numedit encode 99.99 --preset currency              # €99.99`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	s, err := resolveSession(cmd.Flags())
	if err != nil {
		return err
	}

	v, err := numeric.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid decimal value: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), notation.Display(v, s.settings.Mode, s.settings.Options))
	return nil
}

// decodeCmd reads text in a notation and prints its decimal value
var decodeCmd = &cobra.Command{
	Use:   "decode <text>",
	Short: "Read text in a notation and print the decimal value",
	Long: `Decode text written in the chosen notation and print the exact decimal value.

Base prefixes are optional and case-insensitive. The configured prefix and
suffix are stripped if present. Text that does not decode is reported with
the reason and the offending part.`,
	Example: `  numedit decode FF --mode hex              # 255
  numedit decode 0b1010 --mode binary      # 10
  numedit decode '#F53' --mode color --short-color
  numedit decode 10.0.0.1 --mode ipv4      # 167772161`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().BoolVar(&shortColor, "short-color", false, "Expand #RGB shorthand to #RRGGBB in color mode")
	convertCmd.Flags().BoolVar(&shortColor, "short-color", false, "Expand #RGB shorthand to #RRGGBB in color mode")
}

func runDecode(cmd *cobra.Command, args []string) error {
	s, err := resolveSession(cmd.Flags())
	if err != nil {
		return err
	}

	v, err := decodeArg(s, args[0])
	if err != nil {
		ui.NewPrinter(cmd.ErrOrStderr()).PrintError("Decode failed", err, decodeHints(err, s.settings.Mode))
		return fmt.Errorf("cannot decode %q as %s", args[0], s.settings.Mode)
	}

	fmt.Fprintln(cmd.OutOrStdout(), v.String())
	return nil
}

// decodeArg parses user text with the session's notation and decorations.
func decodeArg(s *session, text string) (numeric.Value, error) {
	if shortColor && s.settings.Mode == notation.ColorHex {
		text = notation.ExpandShortColor(text)
	}
	return notation.Parse(text, s.settings.Mode, s.settings.Options)
}

// decodeHints suggests fixes for a decode failure
func decodeHints(err error, mode notation.Mode) []string {
	switch {
	case notation.IsWrongFieldCount(err):
		return []string{
			"An IPv4 address has exactly four dot-separated fields",
			"Example: 192.168.1.1",
		}
	case notation.IsOctetOutOfRange(err):
		return []string{
			"Each IPv4 field must be between 0 and 255",
		}
	case notation.IsMalformedNumeral(err):
		hints := []string{
			fmt.Sprintf("Check the text is written in %s notation", mode),
			"Use --mode to pick another notation",
		}
		if mode == notation.ColorHex {
			hints = append(hints, "Use --short-color to accept #RGB shorthand")
		}
		return hints
	}
	return nil
}

// convertCmd shows a value in every notation
var convertCmd = &cobra.Command{
	Use:   "convert <text>",
	Short: "Show a value in every notation",
	Long: `Decode text in the chosen notation and list the value in every notation.

In color mode a swatch of the colour is shown under the table unless
show_swatch is turned off in the configuration file.`,
	Example: `  numedit convert 255
  numedit convert '#FF5733' --mode color
  numedit convert 192.168.1.1 --mode ipv4`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	s, err := resolveSession(cmd.Flags())
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	v, err := decodeArg(s, args[0])
	if err != nil {
		printer.PrintError("Conversion failed", err, decodeHints(err, s.settings.Mode))
		return fmt.Errorf("cannot decode %q as %s", args[0], s.settings.Mode)
	}

	c := editor.NewWithSettings(v, s.settings)
	printer.PrintHeader("CONVERSION", "numedit convert "+args[0],
		ui.Param{Key: "Mode", Value: s.settings.Mode.String()},
		ui.Param{Key: "Value", Value: v.String()},
	)

	table := ui.NewConversionTable(tui.ConversionRows(c)...).SetWidth(printer.Width())
	if s.showSwatch() && s.settings.Mode == notation.ColorHex {
		table.WithSwatch(notation.Color(v))
	}
	printer.PrintTable(table)
	return nil
}

// stepCmd applies spinner steps to a value
var stepCmd = &cobra.Command{
	Use:   "step <text>",
	Short: "Step a value up or down within its bounds",
	Long: `Step a value by its increment, the way an up/down spinner would.

A step that would cross --min or --max is rejected and the value is left
unchanged. In ipv4 mode with --cursor, the octet under the cursor is stepped
instead and wraps from 255 to 0. Cursor positions count characters of the
displayed text including any prefix.`,
	Example: `  numedit step 98 --max 100 --increment 5 --up      # rejected, stays 98
  numedit step 0.75 --increment 0.25 --up --times 2 # 1.25
  numedit step 192.168.1.255 --mode ipv4 --cursor 11 --up  # 192.168.1.0`,
	Args: cobra.ExactArgs(1),
	RunE: runStep,
}

func init() {
	stepCmd.Flags().BoolVar(&stepUp, "up", false, "Step up")
	stepCmd.Flags().BoolVar(&stepDown, "down", false, "Step down")
	stepCmd.Flags().IntVarP(&stepTimes, "times", "n", 1, "Number of steps")
	stepCmd.Flags().IntVar(&stepCursor, "cursor", -1, "Cursor offset for ipv4 field stepping")
	stepCmd.Flags().BoolVar(&showMeter, "meter", false, "Show where the result sits between min and max")
	stepCmd.MarkFlagsMutuallyExclusive("up", "down")
	stepCmd.MarkFlagsOneRequired("up", "down")
}

func runStep(cmd *cobra.Command, args []string) error {
	s, err := resolveSession(cmd.Flags())
	if err != nil {
		return err
	}
	if stepTimes < 1 {
		return fmt.Errorf("--times must be at least 1")
	}

	c := editor.NewWithSettings(numeric.None(), s.settings)
	if err := c.Commit(args[0]); err != nil {
		ui.NewPrinter(cmd.ErrOrStderr()).PrintError("Step failed", err, decodeHints(err, s.settings.Mode))
		return fmt.Errorf("cannot decode %q as %s", args[0], s.settings.Mode)
	}

	dir := stepper.Up
	if stepDown {
		dir = stepper.Down
	}

	outcome := stepper.NoOp
	for i := 0; i < stepTimes; i++ {
		if stepCursor >= 0 {
			_, outcome = c.StepValueAt(dir, stepCursor)
		} else {
			_, outcome = c.StepValue(dir)
		}
		if outcome != stepper.Applied {
			break
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), c.DisplayText())

	if outcome.Rejected() {
		b := c.Bounds()
		ui.NewPrinter(cmd.ErrOrStderr()).PrintWarning("Step rejected",
			ui.Param{Key: "Outcome", Value: outcome.String()},
			ui.Param{Key: "Min", Value: orDash(b.Min)},
			ui.Param{Key: "Max", Value: orDash(b.Max)},
			ui.Param{Key: "Increment", Value: orDash(b.Increment)},
		)
	}

	if showMeter {
		b := c.Bounds()
		meter := ui.NewMeter(c.Value(), b.Min, b.Max)
		if !meter.Bounded() {
			return fmt.Errorf("--meter needs both --min and --max")
		}
		fmt.Fprintln(cmd.ErrOrStderr(), meter.Render())
	}
	return nil
}

func orDash(v numeric.Value) string {
	if v.IsNone() {
		return "-"
	}
	return v.String()
}

// editCmd opens the interactive editor
var editCmd = &cobra.Command{
	Use:   "edit [text]",
	Short: "Open the interactive editor",
	Long: `Open a full-screen editor for a single value.

The field accepts text in the current notation. Up and down step the value
(or the octet under the cursor in ipv4 mode), tab switches notation and
enter commits. Text that does not decode is discarded. Press ? for all keys.

The committed value is printed when the editor closes.`,
	Example: `  numedit edit
  numedit edit 0xFF --mode hex
  numedit edit --preset rgb`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal() {
		return fmt.Errorf("the editor needs an interactive terminal; use encode, decode or step instead")
	}

	s, err := resolveSession(cmd.Flags())
	if err != nil {
		return err
	}

	c := s.control()
	if len(args) == 1 {
		if err := c.Commit(args[0]); err != nil {
			ui.NewPrinter(cmd.ErrOrStderr()).PrintError("Cannot open editor", err, decodeHints(err, s.settings.Mode))
			return fmt.Errorf("cannot decode %q as %s", args[0], s.settings.Mode)
		}
	}

	opts := tui.Options{
		Title:      s.preset,
		ShowSwatch: s.showSwatch(),
	}
	if err := tui.Run(c, opts); err != nil {
		return fmt.Errorf("editor error: %w", err)
	}

	if text := c.DisplayText(); text != "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}
	return nil
}
