package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/numedit/internal/config"
	"github.com/muurk/numedit/internal/logging"
	"github.com/muurk/numedit/internal/ui"
)

// Preset command flags
var (
	presetDescription string
	presetInitial     string
	presetYes         bool
	presetClear       bool
)

func init() {
	presetSaveCmd.Flags().AddFlagSet(displayFlagSet)
	presetSaveCmd.Flags().StringVar(&presetDescription, "description", "", "Short description shown by 'preset list'")
	presetSaveCmd.Flags().StringVar(&presetInitial, "initial", "", "Starting value for the editor (decimal)")
	presetDeleteCmd.Flags().BoolVarP(&presetYes, "yes", "y", false, "Delete without asking")
	presetUseCmd.Flags().BoolVar(&presetClear, "clear", false, "Unset the default preset")

	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetShowCmd)
	presetCmd.AddCommand(presetSaveCmd)
	presetCmd.AddCommand(presetDeleteCmd)
	presetCmd.AddCommand(presetUseCmd)
	rootCmd.AddCommand(presetCmd)
}

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage named editor presets",
	Long: `Presets bundle a notation, decorations and step bounds under a name.

Built-in presets are always available. User presets live in the configuration
file and shadow built-in presets of the same name.`,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and user presets",
	Args:  cobra.NoArgs,
	RunE:  runPresetList,
}

func runPresetList(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	names := registry.PresetNames()
	nameWidth := 0
	for _, name := range names {
		if w := runewidth.StringWidth(name); w > nameWidth {
			nameWidth = w
		}
	}

	defaultName := ""
	if registry.Preferences != nil {
		defaultName = registry.Preferences.DefaultPreset
	}

	out := cmd.OutOrStdout()
	for _, name := range names {
		p := registry.GetPreset(name)

		marker := " "
		if name == defaultName {
			marker = ui.CurrentMarker
		}
		source := "built-in"
		if registry.IsUserPreset(name) {
			source = "user"
			if config.IsBuiltin(name) {
				source = "user, overrides built-in"
			}
		}

		fmt.Fprintf(out, "%s %s  %s  %s\n",
			marker,
			ui.ResultKeyStyle.Render(runewidth.FillRight(name, nameWidth)),
			ui.ResultValueStyle.Render(runewidth.FillRight(p.Mode, 7)),
			ui.HintItemStyle.Render(fmt.Sprintf("%s (%s)", p.Description, source)))
	}
	return nil
}

var presetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a preset as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetShow,
}

func runPresetShow(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	p := registry.GetPreset(args[0])
	if p == nil {
		return fmt.Errorf("unknown preset %q", args[0])
	}

	data, err := yaml.Marshal(map[string]*config.Preset{args[0]: p})
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current settings as a user preset",
	Long: `Save a user preset built from --preset (if given) plus any display and
bound flags. An existing user preset of the same name is replaced.`,
	Example: `  numedit preset save port --min 1 --max 65535 --description "TCP port"
  numedit preset save mask --preset ipv4 --initial 4294967040
  numedit preset save price --preset currency --prefix '$'`,
	Args: cobra.ExactArgs(1),
	RunE: runPresetSave,
}

func runPresetSave(cmd *cobra.Command, args []string) error {
	s, err := resolveSession(cmd.Flags())
	if err != nil {
		return err
	}

	name := args[0]
	description := presetDescription
	if description == "" && s.preset != "" {
		if base := s.registry.GetPreset(s.preset); base != nil {
			description = base.Description
		}
	}

	p := config.FromSettings(s.settings, description)
	switch {
	case presetInitial != "":
		if err := config.ValidateDecimal("initial", presetInitial); err != nil {
			return err
		}
		p.Initial = presetInitial
	case !s.initial.IsNone():
		p.Initial = s.initial.String()
	}

	previous := s.registry.Presets[name]
	if err := s.registry.SetPreset(name, p); err != nil {
		return err
	}
	if err := s.registry.Save(); err != nil {
		return err
	}
	logging.LogSettingChange("preset "+name, presetSummary(previous), presetSummary(p))
	logging.Info("Preset saved", zap.String("name", name), zap.String("mode", p.Mode))

	path, _ := config.GetConfigPath()
	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Preset saved",
		ui.Param{Key: "Name", Value: name},
		ui.Param{Key: "Mode", Value: p.Mode},
		ui.Param{Key: "Bounds", Value: boundsSummary(p)},
		ui.Param{Key: "File", Value: path},
	)
	return nil
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a user preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetDelete,
}

func runPresetDelete(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	name := args[0]
	if !registry.IsUserPreset(name) {
		if config.IsBuiltin(name) {
			return fmt.Errorf("%q is a built-in preset and cannot be deleted", name)
		}
		return fmt.Errorf("unknown preset %q", name)
	}

	if !presetYes {
		warnings := []string{
			fmt.Sprintf("The user preset %q will be removed from the configuration file", name),
		}
		if config.IsBuiltin(name) {
			warnings = append(warnings, "The built-in preset of the same name will apply again")
		}
		if !ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Delete preset", warnings, name) {
			return nil
		}
	}

	registry.DeletePreset(name)
	if err := registry.Save(); err != nil {
		return err
	}
	logging.LogSettingChange("preset "+name, "defined", "deleted")

	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Preset deleted", ui.Param{Key: "Name", Value: name})
	return nil
}

var presetUseCmd = &cobra.Command{
	Use:   "use [name]",
	Short: "Set the preset used when --preset is not given",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPresetUse,
}

func runPresetUse(cmd *cobra.Command, args []string) error {
	if presetClear == (len(args) == 1) {
		return fmt.Errorf("give a preset name or --clear")
	}

	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	name := ""
	if len(args) == 1 {
		name = args[0]
		if registry.GetPreset(name) == nil {
			return fmt.Errorf("unknown preset %q", name)
		}
	}

	if registry.Preferences == nil {
		registry.Preferences = &config.Preferences{ShowSwatch: true}
	}
	previous := registry.Preferences.DefaultPreset
	registry.Preferences.DefaultPreset = name
	if err := registry.Save(); err != nil {
		return err
	}
	logging.LogSettingChange("default preset", previous, name)

	if name == "" {
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Default preset cleared")
		return nil
	}
	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Default preset set", ui.Param{Key: "Name", Value: name})
	return nil
}

func presetSummary(p *config.Preset) string {
	if p == nil {
		return ""
	}
	parts := []string{p.Mode}
	if p.Prefix != "" || p.Suffix != "" {
		parts = append(parts, fmt.Sprintf("%q…%q", p.Prefix, p.Suffix))
	}
	parts = append(parts, boundsSummary(p))
	return strings.Join(parts, " ")
}

func boundsSummary(p *config.Preset) string {
	lo, hi, inc := p.Min, p.Max, p.Increment
	if lo == "" {
		lo = "-∞"
	}
	if hi == "" {
		hi = "+∞"
	}
	if inc == "" {
		inc = "1"
	}
	return fmt.Sprintf("[%s, %s] step %s", lo, hi, inc)
}
