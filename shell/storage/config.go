package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// LoadFrontendConfig loads frontend.json.
// If the file doesn't exist, it returns default configuration.
// If the file is corrupted, it returns an error.
// Missing fields (absent from JSON) are silently defaulted.
func LoadFrontendConfig(fs afero.Fs, path string) (*FrontendConfig, error) {
	if _, err := fs.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultFrontendConfig(), nil
	}

	jsonBytes, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := &FrontendConfig{}
	if err := unmarshalJSON(jsonBytes, config); err != nil {
		return nil, err
	}

	// Apply defaults only for fields that are absent from the file
	ApplyMissingDefaults(config, detectPresentKeys(jsonBytes))

	return config, nil
}

// SaveFrontendConfig saves frontend.json atomically
func SaveFrontendConfig(fs afero.Fs, path string, config *FrontendConfig) error {
	return AtomicWriteJSON(fs, path, config)
}

// CreateFrontendConfigIfMissing creates a default frontend.json if it doesn't exist
func CreateFrontendConfigIfMissing(fs afero.Fs, path string) error {
	if _, err := fs.Stat(path); errors.Is(err, os.ErrNotExist) {
		return SaveFrontendConfig(fs, path, DefaultFrontendConfig())
	}
	return nil
}
