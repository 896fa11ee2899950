package storage

import (
	"encoding/json"
	"fmt"

	"github.com/BannedPenta01/Citron-Xbox-WIP/shell/style"
)

// FrontendConfig holds front-end preferences stored in frontend.json.
// System options the core consumes live in config.ini instead.
type FrontendConfig struct {
	Version       int          `json:"version"`
	Window        WindowConfig `json:"window"`
	Core          CoreConfig   `json:"core"`
	NativeDialogs bool         `json:"nativeDialogs"` // Show modal dialogs for errors in addition to on-screen notices
	Theme         string       `json:"theme"`
}

// WindowConfig contains window size and mode
type WindowConfig struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Fullscreen bool `json:"fullscreen"`
}

// CoreConfig describes how to launch the external emulation core
type CoreConfig struct {
	Executable    string   `json:"executable"`    // Empty = no core configured
	Args          []string `json:"args"`          // "{path}" is replaced with the title path
	MemoryLimitMB int      `json:"memoryLimitMB"` // 0 = no limit
}

// DefaultFrontendConfig returns a new FrontendConfig with default values
func DefaultFrontendConfig() *FrontendConfig {
	return &FrontendConfig{
		Version: 1,
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: true,
		},
		Core: CoreConfig{
			Executable:    "",
			Args:          []string{"{path}"},
			MemoryLimitMB: 6 * 1024,
		},
		NativeDialogs: false,
		Theme:         style.ThemeDefault.Name,
	}
}

func unmarshalJSON(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	return nil
}
