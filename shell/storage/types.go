package storage

import (
	"path/filepath"
	"slices"
)

// Language is the system language index passed to the core.
type Language int

// Region is the console region index passed to the core.
type Region int

// MemoryLayout selects the amount of emulated DRAM.
type MemoryLayout int

const (
	MemoryLayout4GB MemoryLayout = iota
	MemoryLayout6GB
)

var languageNames = []string{
	"Japanese",
	"American English",
	"French",
	"German",
	"Italian",
	"Spanish",
	"Chinese",
	"Korean",
	"Dutch",
	"Portuguese",
	"Russian",
	"Taiwanese",
	"British English",
	"Canadian French",
	"Latin American Spanish",
	"Simplified Chinese",
	"Traditional Chinese",
	"Brazilian Portuguese",
}

var regionNames = []string{
	"Japan",
	"USA",
	"Europe",
	"Australia",
	"China",
	"Korea",
}

var memoryLayoutNames = []string{"4GB", "6GB"}

// Enumeration sizes used for cyclic editing.
var (
	LanguageCount     = len(languageNames)
	RegionCount       = len(regionNames)
	MemoryLayoutCount = len(memoryLayoutNames)
)

// String returns the display name of the language
func (l Language) String() string {
	if l < 0 || int(l) >= len(languageNames) {
		return "Unknown"
	}
	return languageNames[l]
}

// String returns the display name of the region
func (r Region) String() string {
	if r < 0 || int(r) >= len(regionNames) {
		return "Unknown"
	}
	return regionNames[r]
}

// String returns the display name of the memory layout
func (m MemoryLayout) String() string {
	if m < 0 || int(m) >= len(memoryLayoutNames) {
		return "Unknown"
	}
	return memoryLayoutNames[m]
}

// Settings is the in-memory mirror of config.ini: system options plus the
// user-registered library search roots.
type Settings struct {
	Language     Language
	Region       Region
	CustomRTC    bool
	MultiCore    bool
	MemoryLayout MemoryLayout

	// DeviceName is shown read-only in the System tab and is not persisted.
	DeviceName string

	// Search roots, kept sorted and unique.
	roots []string
}

// DefaultSettings returns a new Settings with default values
func DefaultSettings() *Settings {
	return &Settings{
		Language:     1, // American English
		Region:       1, // USA
		CustomRTC:    false,
		MultiCore:    true,
		MemoryLayout: MemoryLayout4GB,
		DeviceName:   "Citron",
		roots:        []string{},
	}
}

// SearchRoots returns a copy of the registered search roots.
func (s *Settings) SearchRoots() []string {
	return slices.Clone(s.roots)
}

// AddSearchRoot registers a search root. Duplicates (after path cleaning)
// are suppressed on insertion; it returns false when path was empty or
// already present.
func (s *Settings) AddSearchRoot(path string) bool {
	if path == "" {
		return false
	}
	path = filepath.Clean(path)
	idx, found := slices.BinarySearch(s.roots, path)
	if found {
		return false
	}
	s.roots = slices.Insert(s.roots, idx, path)
	return true
}

// RemoveSearchRoot unregisters a search root. It returns false when the
// path was not registered.
func (s *Settings) RemoveSearchRoot(path string) bool {
	path = filepath.Clean(path)
	idx, found := slices.BinarySearch(s.roots, path)
	if !found {
		return false
	}
	s.roots = slices.Delete(s.roots, idx, idx+1)
	return true
}

// ClearSearchRoots removes every registered root.
func (s *Settings) ClearSearchRoots() {
	s.roots = s.roots[:0]
}

// normalizeRoots sorts roots and removes adjacent duplicates.
func normalizeRoots(roots []string) []string {
	out := slices.Clone(roots)
	slices.Sort(out)
	return slices.Compact(out)
}

// Clone returns a deep copy of the settings.
func (s *Settings) Clone() *Settings {
	c := *s
	c.roots = slices.Clone(s.roots)
	return &c
}
