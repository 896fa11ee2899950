package storage

import (
	"errors"
	"fmt"
	"os"
)

// DataDirEnvVars are the names under which the resolved user directory is
// published. Different core builds look for different names.
var DataDirEnvVars = []string{
	"CITRON_DATA_DIR",
	"CITRON_HOME",
	"YUZU_DATA_DIR",
	"YUZU_HOME",
	"XDG_DATA_HOME",
	"XDG_CONFIG_HOME",
}

// PublishEnvironment exports dir under every name in DataDirEnvVars so the
// core resolves the same writable directory as the front-end. All names are
// attempted even if one fails.
func PublishEnvironment(dir string) error {
	var errs []error
	for _, name := range DataDirEnvVars {
		if err := os.Setenv(name, dir); err != nil {
			errs = append(errs, fmt.Errorf("set %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
