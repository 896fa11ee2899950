package storage

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPresentKeys(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected map[string]bool
	}{
		{
			name: "all keys present",
			json: `{
				"version": 1,
				"nativeDialogs": true,
				"window": {"width": 1280, "height": 720, "fullscreen": false},
				"core": {"executable": "x", "args": [], "memoryLimitMB": 0}
			}`,
			expected: map[string]bool{
				"version": true, "nativeDialogs": true,
				"window.width": true, "window.height": true, "window.fullscreen": true,
				"core.executable": true, "core.args": true, "core.memoryLimitMB": true,
			},
		},
		{
			name:     "empty object",
			json:     `{}`,
			expected: map[string]bool{},
		},
		{
			name:     "partial window",
			json:     `{"window": {"width": 800}}`,
			expected: map[string]bool{"window.width": true},
		},
		{
			name:     "invalid json",
			json:     `{`,
			expected: map[string]bool{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, detectPresentKeys([]byte(tc.json)))
		})
	}
}

func TestLoadFrontendConfigMissingFields(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/data/frontend.json"
	require.NoError(t, afero.WriteFile(fs, path, []byte(`{"window": {"fullscreen": false}, "core": {"memoryLimitMB": 0}}`), 0644))

	cfg, err := LoadFrontendConfig(fs, path)
	require.NoError(t, err)

	defaults := DefaultFrontendConfig()
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, defaults.Window.Width, cfg.Window.Width)
	assert.False(t, cfg.Window.Fullscreen, "present zero value is kept")
	assert.Equal(t, 0, cfg.Core.MemoryLimitMB, "present zero value is kept")
	assert.Equal(t, defaults.Core.Args, cfg.Core.Args)
}

func TestLoadFrontendConfigMissingFile(t *testing.T) {
	cfg, err := LoadFrontendConfig(afero.NewMemMapFs(), "/nope.json")
	require.NoError(t, err)
	assert.Equal(t, DefaultFrontendConfig(), cfg)
}

func TestLoadFrontendConfigCorrupt(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/f.json", []byte("{"), 0644))

	_, err := LoadFrontendConfig(fs, "/f.json")
	assert.ErrorContains(t, err, "failed to parse JSON")
}

func TestCreateFrontendConfigIfMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/data/frontend.json"

	require.NoError(t, CreateFrontendConfigIfMissing(fs, path))
	cfg, err := LoadFrontendConfig(fs, path)
	require.NoError(t, err)
	assert.Equal(t, DefaultFrontendConfig(), cfg)

	cfg.Core.Executable = "/bin/core"
	require.NoError(t, SaveFrontendConfig(fs, path, cfg))
	require.NoError(t, CreateFrontendConfigIfMissing(fs, path))

	again, err := LoadFrontendConfig(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "/bin/core", again.Core.Executable, "existing file is not overwritten")
}

func TestValidateFrontendConfig(t *testing.T) {
	assert.Empty(t, ValidateFrontendConfig(DefaultFrontendConfig()))

	cfg := DefaultFrontendConfig()
	cfg.Version = 2
	cfg.Window.Width = 100
	cfg.Window.Height = 100
	cfg.Core.MemoryLimitMB = 10
	cfg.Theme = "Pink"
	assert.Len(t, ValidateFrontendConfig(cfg), 5)

	CorrectFrontendConfig(cfg)
	assert.Empty(t, ValidateFrontendConfig(cfg))
	assert.Equal(t, DefaultFrontendConfig(), cfg)
}

func TestLoadFrontendConfigTheme(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a.json", []byte(`{"theme": "High Contrast"}`), 0644))
	require.NoError(t, afero.WriteFile(fs, "/b.json", []byte(`{}`), 0644))

	cfg, err := LoadFrontendConfig(fs, "/a.json")
	require.NoError(t, err)
	assert.Equal(t, "High Contrast", cfg.Theme)

	cfg, err = LoadFrontendConfig(fs, "/b.json")
	require.NoError(t, err)
	assert.Equal(t, "Default", cfg.Theme)
}

func TestValidateSettings(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
		errors int
	}{
		{"defaults", func(*Settings) {}, 0},
		{"last language", func(s *Settings) { s.Language = 17 }, 0},
		{"language too high", func(s *Settings) { s.Language = 18 }, 1},
		{"negative region", func(s *Settings) { s.Region = -1 }, 1},
		{"region too high", func(s *Settings) { s.Region = 6 }, 1},
		{"memory layout too high", func(s *Settings) { s.MemoryLayout = 2 }, 1},
		{"all invalid", func(s *Settings) { s.Language, s.Region, s.MemoryLayout = -3, 40, 9 }, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.modify(s)
			assert.Len(t, ValidateSettings(s), tc.errors)

			CorrectSettings(s)
			assert.Empty(t, ValidateSettings(s))
		})
	}
}
