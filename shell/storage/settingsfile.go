package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Config file keys. All option values are integer encoded.
const (
	keyLanguage     = "Language"
	keyRegion       = "Region"
	keyCustomRTC    = "CustomRTC"
	keyMultiCore    = "MultiCore"
	keyMemoryLayout = "MemoryLayout"
	keyGamePath     = "GamePath"

	sectionSystem = "System"
	sectionPaths  = "Paths"
)

// LoadSettings reads config.ini. A missing file yields defaults and no
// error. A file that exists but cannot be read yields defaults and the read
// error so the caller can log it. Unknown keys, malformed lines and
// unparsable values are ignored.
func LoadSettings(fs afero.Fs, path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := DecodeSettings(bytes.NewReader(data), settings); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to decode settings: %w", err)
	}

	CorrectSettings(settings)
	return settings, nil
}

// DecodeSettings parses config.ini content into settings. The search root
// list is cleared first and rebuilt from every GamePath line. The input may
// be UTF-8 or BOM-prefixed UTF-16.
func DecodeSettings(r io.Reader, settings *Settings) error {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	settings.ClearSearchRoots()

	scanner := bufio.NewScanner(decoded)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '[' || line[0] == ';' || line[0] == '#' {
			continue
		}

		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		if key == keyGamePath {
			settings.AddSearchRoot(val)
			continue
		}

		n, err := strconv.Atoi(val)
		if err != nil {
			continue
		}

		switch key {
		case keyLanguage:
			settings.Language = Language(n)
		case keyRegion:
			settings.Region = Region(n)
		case keyCustomRTC:
			settings.CustomRTC = n != 0
		case keyMultiCore:
			settings.MultiCore = n != 0
		case keyMemoryLayout:
			settings.MemoryLayout = MemoryLayout(n)
		}
	}

	return scanner.Err()
}

// EncodeSettings renders settings as UTF-8 config.ini text. Search roots are
// sorted and deduplicated before being written.
func EncodeSettings(settings *Settings) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s]\n", sectionSystem)
	fmt.Fprintf(&b, "%s=%d\n", keyLanguage, int(settings.Language))
	fmt.Fprintf(&b, "%s=%d\n", keyRegion, int(settings.Region))
	fmt.Fprintf(&b, "%s=%d\n", keyCustomRTC, boolToInt(settings.CustomRTC))
	fmt.Fprintf(&b, "%s=%d\n", keyMultiCore, boolToInt(settings.MultiCore))
	fmt.Fprintf(&b, "%s=%d\n", keyMemoryLayout, int(settings.MemoryLayout))

	fmt.Fprintf(&b, "\n[%s]\n", sectionPaths)
	for _, p := range normalizeRoots(settings.roots) {
		fmt.Fprintf(&b, "%s=%s\n", keyGamePath, p)
	}

	return b.String()
}

// SaveSettings writes config.ini atomically as UTF-16LE with a byte order
// mark, and normalizes the in-memory root list to match what was written.
func SaveSettings(fs afero.Fs, path string, settings *Settings) error {
	settings.roots = normalizeRoots(settings.roots)

	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(EncodeSettings(settings))
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	return AtomicWriteFile(fs, path, []byte(encoded))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
