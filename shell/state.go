package shell

// AppState represents the current top-level UI state
type AppState int

const (
	// StateLibrary is the game list
	StateLibrary AppState = iota
	// StateSettings shows the tabbed settings screen
	StateSettings
	// StateRunning means the core owns the session; menus are not processed
	StateRunning
)

// String returns the string representation of the state
func (s AppState) String() string {
	switch s {
	case StateLibrary:
		return "Library"
	case StateSettings:
		return "Settings"
	case StateRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// SettingsTab identifies a tab on the settings screen. Tabs are cyclic.
type SettingsTab int

const (
	TabGeneral SettingsTab = iota
	TabSystem
	TabGraphics
	TabAudio
	TabNetwork

	tabCount = 5
)

// AllTabs lists the tabs in display order
var AllTabs = []SettingsTab{TabGeneral, TabSystem, TabGraphics, TabAudio, TabNetwork}

// String returns the tab label
func (t SettingsTab) String() string {
	switch t {
	case TabGeneral:
		return "General"
	case TabSystem:
		return "System"
	case TabGraphics:
		return "Graphics"
	case TabAudio:
		return "Audio"
	case TabNetwork:
		return "Network"
	default:
		return "Unknown"
	}
}

// Next returns the following tab, wrapping after the last one
func (t SettingsTab) Next() SettingsTab {
	return SettingsTab((int(t) + 1) % tabCount)
}

// Prev returns the preceding tab, wrapping before the first one
func (t SettingsTab) Prev() SettingsTab {
	return SettingsTab((int(t) + tabCount - 1) % tabCount)
}
