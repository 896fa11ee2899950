package shell

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/errdefs"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell/storage"
)

const firmwareExtension = ".nca"

// CheckPrerequisites verifies that production keys and at least one
// firmware content file are installed under userDir. Keys are checked
// first. Nothing is touched when either is missing.
func CheckPrerequisites(fs afero.Fs, userDir string) error {
	if err := checkKeys(fs, userDir); err != nil {
		return err
	}
	return checkFirmware(fs, userDir)
}

func checkKeys(fs afero.Fs, userDir string) error {
	keyPath := storage.ProdKeysPath(userDir)
	ok, err := afero.Exists(fs, keyPath)
	if err == nil && ok {
		return nil
	}
	msg := fmt.Sprintf("prod.keys MISSING!\nLocation:\n%s\n\nPlease use Settings > Install Prod Keys", keyPath)
	return &errdefs.CustomError{Type: errdefs.ErrTypeMissingKeys, Message: msg, Err: err}
}

func checkFirmware(fs afero.Fs, userDir string) error {
	dir := storage.FirmwareDir(userDir)
	if hasFirmware(fs, dir) {
		return nil
	}
	msg := fmt.Sprintf("Firmware MISSING!\nLocation:\n%s\n\nFolder must contain .nca files.\nPlease use Settings > Install Firmware", dir)
	return errdefs.NewCustomError(errdefs.ErrTypeMissingFirmware, msg)
}

// hasFirmware reports whether dir directly contains a .nca entry. Firmware
// dumps may store content as directories named *.nca, so both count.
func hasFirmware(fs afero.Fs, dir string) bool {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if strings.EqualFold(filepath.Ext(e.Name()), firmwareExtension) {
			return true
		}
	}
	return false
}
