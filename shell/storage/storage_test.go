package storage

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDirOverride(t *testing.T) {
	dir, err := UserDir(filepath.Join("tmp", "citron", "..", "data"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("tmp", "data"), dir)
}

func TestUserDirDefaultEndsInUser(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG resolution is linux-specific")
	}
	t.Setenv("XDG_DATA_HOME", "/xdg")
	Init("CitronTest")
	defer Init("Citron")

	dir, err := UserDir("")
	require.NoError(t, err)
	assert.Equal(t, "user", filepath.Base(dir))
	assert.Equal(t, filepath.Join("/xdg", "CitronTest", "user"), dir)
}

func TestEnsureDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	userDir := filepath.Join("/data", "user")

	require.NoError(t, EnsureDirectories(fs, userDir))

	for _, sub := range []string{"", "keys", "nand", "config"} {
		ok, err := afero.DirExists(fs, filepath.Join(userDir, sub))
		require.NoError(t, err)
		assert.True(t, ok, "missing %q", sub)
	}
}

func TestDerivedPaths(t *testing.T) {
	userDir := filepath.Join("/data", "user")

	assert.Equal(t, filepath.Join(userDir, "config.ini"), ConfigPath(userDir))
	assert.Equal(t, filepath.Join(userDir, "frontend.json"), FrontendConfigPath(userDir))
	assert.Equal(t, filepath.Join(userDir, "keys", "prod.keys"), ProdKeysPath(userDir))
	assert.Equal(t, filepath.Join(userDir, "nand", "system", "Contents", "registered"), FirmwareDir(userDir))
}

func TestAtomicWriteFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("/data", "nested", "file.txt")

	require.NoError(t, AtomicWriteFile(fs, path, []byte("hello")))

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	exists, err := afero.Exists(fs, path+".tmp")
	require.NoError(t, err)
	assert.False(t, exists, "temp file should be renamed away")
}

func TestReadJSONRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/data/frontend.json"

	in := DefaultFrontendConfig()
	in.Core.Executable = "/opt/citron/citron-cmd"
	require.NoError(t, AtomicWriteJSON(fs, path, in))

	out := &FrontendConfig{}
	require.NoError(t, ReadJSON(fs, path, out))
	assert.Equal(t, in, out)
}

func TestReadJSONInvalid(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.json", []byte("{not json"), 0644))

	err := ReadJSON(fs, "/bad.json", &FrontendConfig{})
	assert.ErrorContains(t, err, "failed to parse JSON")
}
