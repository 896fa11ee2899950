package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BannedPenta01/Citron-Xbox-WIP/shell/style"
)

// detectPresentKeys unmarshals JSON bytes to determine which config keys
// are explicitly present in the file. Returns a flat set of dotted-path keys
// (e.g., "window.width", "core.args").
func detectPresentKeys(jsonBytes []byte) map[string]bool {
	present := make(map[string]bool)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(jsonBytes, &raw); err != nil {
		return present
	}

	for _, k := range []string{"version", "nativeDialogs", "theme"} {
		if _, ok := raw[k]; ok {
			present[k] = true
		}
	}

	nested := map[string][]string{
		"window": {"width", "height", "fullscreen"},
		"core":   {"executable", "args", "memoryLimitMB"},
	}
	for section, keys := range nested {
		sectionRaw, ok := raw[section]
		if !ok {
			continue
		}
		var fields map[string]json.RawMessage
		if json.Unmarshal(sectionRaw, &fields) != nil {
			continue
		}
		for _, k := range keys {
			if _, ok := fields[k]; ok {
				present[section+"."+k] = true
			}
		}
	}

	return present
}

// ApplyMissingDefaults fills fields that were absent from the JSON file with
// their default values. Fields that were present (even with zero values)
// are left untouched.
func ApplyMissingDefaults(config *FrontendConfig, presentKeys map[string]bool) {
	defaults := DefaultFrontendConfig()

	if !presentKeys["version"] {
		config.Version = defaults.Version
	}
	if !presentKeys["theme"] {
		config.Theme = defaults.Theme
	}
	if !presentKeys["window.width"] {
		config.Window.Width = defaults.Window.Width
	}
	if !presentKeys["window.height"] {
		config.Window.Height = defaults.Window.Height
	}
	if !presentKeys["window.fullscreen"] {
		config.Window.Fullscreen = defaults.Window.Fullscreen
	}
	if !presentKeys["core.args"] {
		config.Core.Args = defaults.Core.Args
	}
	if !presentKeys["core.memoryLimitMB"] {
		config.Core.MemoryLimitMB = defaults.Core.MemoryLimitMB
	}
}

// ValidateFrontendConfig checks all config fields against valid ranges and
// returns human-readable error descriptions. An empty slice means the config
// is valid.
func ValidateFrontendConfig(config *FrontendConfig) []string {
	var errors []string

	if config.Version != 1 {
		errors = append(errors, fmt.Sprintf("version: %d (valid: 1)", config.Version))
	}
	if config.Window.Width < 640 {
		errors = append(errors, fmt.Sprintf("window.width: %d (valid: >= 640)", config.Window.Width))
	}
	if config.Window.Height < 360 {
		errors = append(errors, fmt.Sprintf("window.height: %d (valid: >= 360)", config.Window.Height))
	}
	if config.Core.MemoryLimitMB != 0 && config.Core.MemoryLimitMB < 1024 {
		errors = append(errors, fmt.Sprintf("core.memoryLimitMB: %d (valid: 0 or >= 1024)", config.Core.MemoryLimitMB))
	}
	if !style.IsValidThemeName(config.Theme) {
		errors = append(errors, fmt.Sprintf("theme: %q (valid: %s)", config.Theme, strings.Join(style.ThemeNames(), ", ")))
	}

	return errors
}

// CorrectFrontendConfig resets any invalid fields to their defaults.
// Valid fields are preserved.
func CorrectFrontendConfig(config *FrontendConfig) *FrontendConfig {
	defaults := DefaultFrontendConfig()

	if config.Version != 1 {
		config.Version = defaults.Version
	}
	if config.Window.Width < 640 {
		config.Window.Width = defaults.Window.Width
	}
	if config.Window.Height < 360 {
		config.Window.Height = defaults.Window.Height
	}
	if config.Core.MemoryLimitMB != 0 && config.Core.MemoryLimitMB < 1024 {
		config.Core.MemoryLimitMB = defaults.Core.MemoryLimitMB
	}
	if !style.IsValidThemeName(config.Theme) {
		config.Theme = defaults.Theme
	}

	return config
}

// ValidateSettings checks system options against their enumeration ranges.
func ValidateSettings(settings *Settings) []string {
	var errors []string

	if settings.Language < 0 || int(settings.Language) >= LanguageCount {
		errors = append(errors, fmt.Sprintf("Language: %d (valid: 0-%d)", settings.Language, LanguageCount-1))
	}
	if settings.Region < 0 || int(settings.Region) >= RegionCount {
		errors = append(errors, fmt.Sprintf("Region: %d (valid: 0-%d)", settings.Region, RegionCount-1))
	}
	if settings.MemoryLayout < 0 || int(settings.MemoryLayout) >= MemoryLayoutCount {
		errors = append(errors, fmt.Sprintf("MemoryLayout: %d (valid: 0-%d)", settings.MemoryLayout, MemoryLayoutCount-1))
	}

	return errors
}

// CorrectSettings silently resets out-of-range options to their defaults.
// This runs on load so invalid values never reach the UI or core.
func CorrectSettings(settings *Settings) *Settings {
	defaults := DefaultSettings()

	if settings.Language < 0 || int(settings.Language) >= LanguageCount {
		settings.Language = defaults.Language
	}
	if settings.Region < 0 || int(settings.Region) >= RegionCount {
		settings.Region = defaults.Region
	}
	if settings.MemoryLayout < 0 || int(settings.MemoryLayout) >= MemoryLayoutCount {
		settings.MemoryLayout = defaults.MemoryLayout
	}

	return settings
}
