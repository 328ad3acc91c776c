// Package ui provides terminal output components for the numedit CLI.
//
// These components follow a "print and exit" pattern: they render styled
// output with Lipgloss but never wait for input, except Confirm. The
// interactive editor lives in package tui and reuses the styles defined here.
//
// # Components
//
//   - Header: Command banner showing operation name and parameters
//   - Result: Success, failure and warning boxes
//   - ConversionTable: A value in every notation, aligned by display width
//   - Swatch: A block of the value's 24-bit colour with hex and HSL labels
//   - Meter: Where a value sits between its minimum and maximum
//
// Commands normally go through a Printer, which fixes the width once:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Conversion", "numedit convert 0xFF", ui.Param{Key: "Mode", Value: "hex"})
//	p.PrintTable(ui.NewConversionTable(rows...).WithSwatch(notation.Color(v)))
//
// # Logging Integration
//
// This package expects logging to be controlled via the NUMEDIT_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the styled output to be displayed cleanly.
package ui
