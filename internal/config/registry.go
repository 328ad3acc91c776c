package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName         = "numedit"
	configFile      = "config.yaml"
	registryVersion = 1
)

// ConfigEnvVar overrides the configuration file location.
const ConfigEnvVar = "NUMEDIT_CONFIG"

var (
	// Global registry instance (loaded lazily)
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
	globalRegistryErr  error

	// Serialises writers within this process
	fileMutex sync.Mutex
)

// GetConfigDir returns the per-user configuration directory:
//   - Linux and other Unix: $XDG_CONFIG_HOME/numedit, else ~/.config/numedit
//   - macOS: ~/.config/numedit
//   - Windows: %LOCALAPPDATA%\numedit
func GetConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, appName), nil
		}
		profile := os.Getenv("USERPROFILE")
		if profile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(profile, "AppData", "Local", appName), nil
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" && runtime.GOOS != "darwin" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// GetConfigPath returns the configuration file path. NUMEDIT_CONFIG wins
// over the per-user directory.
func GetConfigPath() (string, error) {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return path, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// LoadRegistry loads the configuration registry once per process.
// A missing file yields the default registry.
func LoadRegistry() (*Registry, error) {
	globalRegistryOnce.Do(func() {
		var path string
		path, globalRegistryErr = GetConfigPath()
		if globalRegistryErr != nil {
			globalRegistryErr = fmt.Errorf("failed to get config path: %w", globalRegistryErr)
			return
		}
		globalRegistry, globalRegistryErr = loadRegistryFromFile(path)
	})
	return globalRegistry, globalRegistryErr
}

// loadRegistryFromFile reads and validates the registry at path.
// Unknown keys are rejected so that a misspelt option is not silently ignored.
func loadRegistryFromFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var registry Registry
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&registry); err != nil {
		if errors.Is(err, io.EOF) {
			return NewRegistry(), nil
		}
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if registry.Version != registryVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", registry.Version, registryVersion)
	}
	if registry.Presets == nil {
		registry.Presets = make(map[string]*Preset)
	}
	if registry.Preferences == nil {
		registry.Preferences = defaultPreferences()
	}

	if err := registry.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &registry, nil
}

// validate checks every user preset and the default preset reference.
func (r *Registry) validate() error {
	names := make([]string, 0, len(r.Presets))
	for name := range r.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		if err := ValidatePresetName(name); err != nil {
			errs = append(errs, fmt.Errorf("preset %q: %w", name, err))
		}
		for _, err := range ValidatePreset(r.Presets[name]) {
			errs = append(errs, fmt.Errorf("preset %q: %w", name, err))
		}
	}
	if def := r.Preferences.DefaultPreset; def != "" && r.GetPreset(def) == nil {
		errs = append(errs, NewValidationError("default_preset", fmt.Sprintf("no preset named %q", def)))
	}
	return errors.Join(errs...)
}

// Save writes the registry to the configuration file atomically.
func (r *Registry) Save() error {
	path, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return r.saveToFile(path)
}

// saveToFile writes the registry next to path and renames it into place,
// so a crash never leaves a half-written file.
func (r *Registry) saveToFile(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `# numedit configuration file
# Named editor presets and preferences. Bounds, increments and initial
# values are exact decimal text; quote them or not as you like.
#
# Location: %s

`, path)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+configFile+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary config file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to save config file: %w", err)
	}
	return nil
}

// ReloadRegistry discards the cached registry and reads the file again.
func ReloadRegistry() (*Registry, error) {
	fileMutex.Lock()
	globalRegistryOnce = sync.Once{}
	fileMutex.Unlock()
	return LoadRegistry()
}

// GetGlobalRegistry returns the global registry instance.
// This is a convenience wrapper around LoadRegistry().
func GetGlobalRegistry() (*Registry, error) {
	return LoadRegistry()
}

// SaveGlobal saves the global registry instance to disk.
func SaveGlobal() error {
	registry, err := LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	return registry.Save()
}
