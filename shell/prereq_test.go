package shell

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/errdefs"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell/storage"
)

const testUserDir = "/user"

func installKeys(t *testing.T, fs afero.Fs) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, storage.ProdKeysPath(testUserDir), []byte("keys"), 0644))
}

func installFirmware(t *testing.T, fs afero.Fs) {
	t.Helper()
	path := filepath.Join(storage.FirmwareDir(testUserDir), "0100000000000809.nca")
	require.NoError(t, afero.WriteFile(fs, path, []byte("nca"), 0644))
}

func TestCheckPrerequisites(t *testing.T) {
	tests := []struct {
		name     string
		keys     bool
		firmware bool
		want     errdefs.ErrorType
	}{
		{"nothing installed", false, false, errdefs.ErrTypeMissingKeys},
		{"firmware only", false, true, errdefs.ErrTypeMissingKeys},
		{"keys only", true, false, errdefs.ErrTypeMissingFirmware},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tc.keys {
				installKeys(t, fs)
			}
			if tc.firmware {
				installFirmware(t, fs)
			}

			err := CheckPrerequisites(fs, testUserDir)
			require.Error(t, err)
			assert.True(t, errdefs.IsType(err, tc.want), "got %v", err)
		})
	}
}

func TestCheckPrerequisitesSatisfied(t *testing.T) {
	fs := afero.NewMemMapFs()
	installKeys(t, fs)
	installFirmware(t, fs)

	assert.NoError(t, CheckPrerequisites(fs, testUserDir))
}

func TestFirmwareRequiresNCA(t *testing.T) {
	fs := afero.NewMemMapFs()
	installKeys(t, fs)
	dir := storage.FirmwareDir(testUserDir)
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "readme.txt"), nil, 0644))

	err := CheckPrerequisites(fs, testUserDir)
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypeMissingFirmware))
	assert.Contains(t, err.Error(), dir)

	require.NoError(t, fs.MkdirAll(filepath.Join(dir, "abc.NCA"), 0755))
	assert.NoError(t, CheckPrerequisites(fs, testUserDir))
}

func TestMissingKeysMessageNamesLocation(t *testing.T) {
	err := CheckPrerequisites(afero.NewMemMapFs(), testUserDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), storage.ProdKeysPath(testUserDir))
	assert.Contains(t, err.Error(), "Install Prod Keys")
	assert.Equal(t, "Missing Files", errdefs.TypeOf(err).String())
}
