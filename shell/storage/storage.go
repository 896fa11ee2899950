package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
)

var appName = "Citron"

// Init sets the application data directory name. Must be called before
// any storage operations that resolve default paths.
func Init(dataDirName string) {
	if dataDirName != "" {
		appName = dataDirName
	}
}

const (
	userDirName        = "user"
	configFile         = "config.ini"
	frontendConfigFile = "frontend.json"
	keysDir            = "keys"
	prodKeysFile       = "prod.keys"
	nandDir            = "nand"
	configDir          = "config"
)

// Paths below the user directory that install actions copy into.
var (
	FirmwareSubdir = filepath.Join(nandDir, "system", "Contents", "registered")
	UpdateSubdir   = filepath.Join(nandDir, "user", "Contents", "registered")
	KeysSubdir     = keysDir
)

// GetBaseDir returns the base directory for application data.
// The directory name is set by Init(). Example paths:
// - Windows: %LOCALAPPDATA%/<appName>
// - macOS: ~/Library/Application Support/<appName>
// - Linux: ~/.local/share/<appName>
func GetBaseDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		baseDir = filepath.Join(home, "Library", "Application Support", appName)
	case "windows":
		// LocalState is the only writable location on console builds
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			return executableFallback()
		}
		baseDir = filepath.Join(localAppData, appName)
	default: // Linux and other Unix-like systems
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome != "" {
			baseDir = filepath.Join(dataHome, appName)
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return executableFallback()
			}
			baseDir = filepath.Join(home, ".local", "share", appName)
		}
	}

	return baseDir, nil
}

// executableFallback places data next to the executable for portable setups.
func executableFallback() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Dir(exe), nil
}

// UserDir returns the writable user directory. A non-empty override wins
// over the per-OS default.
func UserDir(override string) (string, error) {
	if override != "" {
		return filepath.Clean(override), nil
	}
	base, err := GetBaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, userDirName), nil
}

// EnsureDirectories creates the user directory and the subdirectories the
// core expects to find.
func EnsureDirectories(fs afero.Fs, userDir string) error {
	dirs := []string{
		userDir,
		filepath.Join(userDir, keysDir),
		filepath.Join(userDir, nandDir),
		filepath.Join(userDir, configDir),
	}

	for _, dir := range dirs {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ConfigPath returns the full path to config.ini
func ConfigPath(userDir string) string {
	return filepath.Join(userDir, configFile)
}

// FrontendConfigPath returns the full path to frontend.json
func FrontendConfigPath(userDir string) string {
	return filepath.Join(userDir, frontendConfigFile)
}

// ProdKeysPath returns the path the core reads production keys from
func ProdKeysPath(userDir string) string {
	return filepath.Join(userDir, keysDir, prodKeysFile)
}

// FirmwareDir returns the registered system content directory
func FirmwareDir(userDir string) string {
	return filepath.Join(userDir, FirmwareSubdir)
}

// AtomicWriteFile writes data to path atomically.
// It writes to a temporary file first, then renames to the target path.
// This ensures the file is never in a partially-written state.
func AtomicWriteFile(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tempFile := path + ".tmp"
	if err := afero.WriteFile(fs, tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := fs.Rename(tempFile, path); err != nil {
		fs.Remove(tempFile) // Clean up on failure
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// AtomicWriteJSON writes data to a JSON file atomically.
func AtomicWriteJSON(fs afero.Fs, path string, data interface{}) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return AtomicWriteFile(fs, path, jsonData)
}

// ReadJSON reads and unmarshals a JSON file
func ReadJSON(fs afero.Fs, path string, data interface{}) error {
	jsonData, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(jsonData, data); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}
