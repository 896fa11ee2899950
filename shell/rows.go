package shell

import (
	emucore "github.com/BannedPenta01/Citron-Xbox-WIP/api"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell/storage"
)

// RowKind determines how a settings row reacts to Confirm
type RowKind int

const (
	// RowAction runs an ActionSpec on Confirm
	RowAction RowKind = iota
	// RowValue enters edit mode on Confirm
	RowValue
	// RowInfo is read-only
	RowInfo
)

// ActionKind selects what an action row does with the picked folder
type ActionKind int

const (
	// ActionInstall copies the picked folder into a managed directory
	ActionInstall ActionKind = iota
	// ActionAddDirectory registers the picked folder as a search root
	ActionAddDirectory
)

// ActionSpec describes a General tab action
type ActionSpec struct {
	Kind        ActionKind
	PickerTitle string
	// Subdir is relative to the user directory. Unused for ActionAddDirectory.
	Subdir string
	// Extensions restricts which files are copied. Empty copies everything.
	Extensions []string
}

// Row is one line of a settings tab
type Row struct {
	Label  string
	Kind   RowKind
	Action *ActionSpec

	// Value renders the current setting. Nil for action rows.
	Value func(s *storage.Settings) string
	// Cycle steps an editable value by delta, wrapping over its range.
	Cycle func(s *storage.Settings, delta int)
}

// Editable reports whether Confirm enters edit mode on this row
func (r Row) Editable() bool {
	return r.Kind == RowValue && r.Cycle != nil
}

// wrap returns (v+delta) mod n in [0, n)
func wrap(v, delta, n int) int {
	return ((v+delta)%n + n) % n
}

func enabled(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
}

func fixed(text string) func(*storage.Settings) string {
	return func(*storage.Settings) string { return text }
}

var generalRows = []Row{
	{
		Label: "Install Prod Keys",
		Kind:  RowAction,
		Action: &ActionSpec{
			Kind:        ActionInstall,
			PickerTitle: "Select Keys Folder",
			Subdir:      storage.KeysSubdir,
		},
	},
	{
		Label: "Install Firmware",
		Kind:  RowAction,
		Action: &ActionSpec{
			Kind:        ActionInstall,
			PickerTitle: "Select Firmware Folder",
			Subdir:      storage.FirmwareSubdir,
		},
	},
	{
		Label: "Add Game Directory",
		Kind:  RowAction,
		Action: &ActionSpec{
			Kind:        ActionAddDirectory,
			PickerTitle: "Add Game Directory",
		},
	},
	{
		Label: "Install Update (NSP)",
		Kind:  RowAction,
		Action: &ActionSpec{
			Kind:        ActionInstall,
			PickerTitle: "Select Update Folder (NSP)",
			Subdir:      storage.UpdateSubdir,
			Extensions:  []string{emucore.FormatNSP.Extension},
		},
	},
	{
		Label: "Install Update (XCI)",
		Kind:  RowAction,
		Action: &ActionSpec{
			Kind:        ActionInstall,
			PickerTitle: "Select Update Folder (XCI)",
			Subdir:      storage.UpdateSubdir,
			Extensions:  []string{emucore.FormatXCI.Extension},
		},
	},
}

var systemRows = []Row{
	{
		Label: "Language",
		Kind:  RowValue,
		Value: func(s *storage.Settings) string { return s.Language.String() },
		Cycle: func(s *storage.Settings, d int) {
			s.Language = storage.Language(wrap(int(s.Language), d, storage.LanguageCount))
		},
	},
	{
		Label: "Region",
		Kind:  RowValue,
		Value: func(s *storage.Settings) string { return s.Region.String() },
		Cycle: func(s *storage.Settings, d int) {
			s.Region = storage.Region(wrap(int(s.Region), d, storage.RegionCount))
		},
	},
	{Label: "Time Zone", Kind: RowInfo, Value: fixed("Auto")},
	{
		Label: "Device Name",
		Kind:  RowInfo,
		Value: func(s *storage.Settings) string { return s.DeviceName },
	},
	{
		Label: "Custom RTC",
		Kind:  RowValue,
		Value: func(s *storage.Settings) string { return enabled(s.CustomRTC) },
		Cycle: func(s *storage.Settings, _ int) { s.CustomRTC = !s.CustomRTC },
	},
	{Label: "RNG Seed", Kind: RowInfo, Value: fixed("00000000")},
	{
		Label: "Multicore CPU",
		Kind:  RowValue,
		Value: func(s *storage.Settings) string { return enabled(s.MultiCore) },
		Cycle: func(s *storage.Settings, _ int) { s.MultiCore = !s.MultiCore },
	},
	{
		Label: "Memory Layout",
		Kind:  RowValue,
		Value: func(s *storage.Settings) string { return s.MemoryLayout.String() },
		Cycle: func(s *storage.Settings, d int) {
			s.MemoryLayout = storage.MemoryLayout(wrap(int(s.MemoryLayout), d, storage.MemoryLayoutCount))
		},
	},
}

// RowsFor returns the ordered rows of a tab. Reserved tabs have none.
func RowsFor(tab SettingsTab) []Row {
	switch tab {
	case TabGeneral:
		return generalRows
	case TabSystem:
		return systemRows
	default:
		return nil
	}
}

// RowView is the rendered form of a row
type RowView struct {
	Label    string
	Value    string
	Kind     RowKind
	Editable bool
}

func viewRows(tab SettingsTab, s *storage.Settings) []RowView {
	rows := RowsFor(tab)
	views := make([]RowView, len(rows))
	for i, r := range rows {
		views[i] = RowView{Label: r.Label, Kind: r.Kind, Editable: r.Editable()}
		if r.Value != nil {
			views[i].Value = r.Value(s)
		}
	}
	return views
}
