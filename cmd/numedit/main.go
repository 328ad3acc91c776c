// Numedit edits and converts numbers across decimal, hexadecimal, binary,
// octal, colour hex and IPv4 notations.
//
// Every command works on one canonical value. Text is decoded into that
// value and the value is rendered back out, so switching notations never
// changes the number.
//
// Usage:
//
//	numedit [command] [flags]
//
// Running without a command opens the interactive editor.
// See 'numedit --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/numedit/internal/logging"
	"github.com/muurk/numedit/internal/version"
)

// Global flags
var (
	logLevel   string
	presetName string
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		logging.Error("Command failed", zap.Error(err))
	}
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "numedit",
	Short: "Multi-notation number editor",
	Long: `Edit and convert numbers in decimal, hexadecimal, binary, octal,
colour hex and IPv4 notation.

A value is always stored as an exact decimal. Notations, prefixes, suffixes
and digit grouping only change how it is shown. Named presets bundle these
display settings with step bounds and can be saved to the configuration file.

If no command is specified, the interactive editor will launch automatically.`,
	Version: version.Version,
	Example: `  # Show 255 in hex with a base prefix
  numedit encode 255 --mode hex --show-prefix

  # Read a colour back as a number
  numedit decode '#FF5733' --mode color

  # Every notation at once
  numedit convert 192.168.1.1 --mode ipv4

  # Step the third octet of an address
  numedit step 192.168.1.1 --mode ipv4 --cursor 8 --up

  # Edit a price interactively
  numedit --preset currency`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Silent unless --log-level or NUMEDIT_LOG_LEVEL is set
		return logging.Initialize(logLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the editor when no subcommand provided
		return runEdit(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); logs go to stderr or $"+logging.LogFileEnvVar)
	rootCmd.PersistentFlags().StringVarP(&presetName, "preset", "p", "", "Named preset to start from (see 'numedit preset list')")
	rootCmd.Flags().AddFlagSet(displayFlagSet)

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "numedit %s\n", version.Full())
	},
}
