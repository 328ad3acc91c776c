// Package config provides user configuration management for numedit.
//
// This package manages a YAML-based configuration file that stores named
// editor presets and application preferences. The configuration follows
// OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/numedit/config.yaml or $HOME/.config/numedit/config.yaml
//   - macOS: $HOME/.config/numedit/config.yaml
//   - Windows: %LOCALAPPDATA%\numedit\config.yaml
//
// NUMEDIT_CONFIG names a different file. Unknown keys are rejected on load,
// and every invalid preset is reported, not just the first.
//
// # Presets
//
// A preset names a notation, its decorations and its bounds. Six presets are
// built in (percent, currency, rgb, flags8, unix-perms, ipv4); a user preset
// with the same name shadows the built-in one. Numbers are kept as decimal
// text so that an increment of 0.01 stays exact.
//
//	version: 1
//	presets:
//	  temperature:
//	    mode: decimal
//	    suffix: " °C"
//	    min: "-40"
//	    max: "125"
//	    increment: "0.5"
//	preferences:
//	  default_preset: temperature
//	  show_swatch: true
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	settings, err := registry.GetPreset("percent").Settings()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	control := editor.NewWithSettings(numeric.FromInt64(50), settings)
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
