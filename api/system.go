package emucore

// PackageFormat describes an installable title container.
type PackageFormat struct {
	Name      string // Display name, e.g. "NSP"
	Extension string // Lower-case extension including the dot
}

// Package formats recognised by the library scan and update installs.
var (
	FormatNSP = PackageFormat{Name: "NSP", Extension: ".nsp"}
	FormatXCI = PackageFormat{Name: "XCI", Extension: ".xci"}
)

// SystemInfo describes the emulated system for UI configuration.
type SystemInfo struct {
	Name        string
	CoreName    string
	CoreVersion string
	DataDirName string
	Formats     []PackageFormat
}

// DefaultSystemInfo returns the system description used by the front-end.
func DefaultSystemInfo() SystemInfo {
	return SystemInfo{
		Name:        "Switch",
		CoreName:    "Citron",
		DataDirName: "Citron",
		Formats:     []PackageFormat{FormatNSP, FormatXCI},
	}
}

// FormatForExtension returns the format whose extension matches ext
// (already lower-cased), and whether one was found.
func (si SystemInfo) FormatForExtension(ext string) (PackageFormat, bool) {
	for _, f := range si.Formats {
		if f.Extension == ext {
			return f, true
		}
	}
	return PackageFormat{}, false
}
