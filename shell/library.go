package shell

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	emucore "github.com/BannedPenta01/Citron-Xbox-WIP/api"
	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/log"
)

// Title is one installable package found during a scan
type Title struct {
	DisplayName string
	InstallPath string
	Format      emucore.PackageFormat
}

// RootPlan describes where a scan looks besides the user-registered roots
type RootPlan struct {
	// Default is always included whether or not it exists
	Default string
	// Drives are probed and included only when they exist
	Drives []string
}

// DefaultRootPlan returns the platform search plan. Windows probes the
// conventional Games folder on D: and every drive from E: to Z:. Other
// systems use ~/Games and probe nothing.
func DefaultRootPlan(goos, home string) RootPlan {
	if goos == "windows" {
		plan := RootPlan{Default: `D:\Games`}
		for letter := 'E'; letter <= 'Z'; letter++ {
			plan.Drives = append(plan.Drives, string(letter)+`:\Games`)
		}
		return plan
	}
	return RootPlan{Default: filepath.Join(home, "Games")}
}

// Collect builds the ordered root list for a scan. Registered roots that
// exist are added unless already present in the list built so far.
func (p RootPlan) Collect(fs afero.Fs, registered []string) []string {
	roots := []string{p.Default}

	for _, r := range registered {
		if !dirExists(fs, r) {
			log.Debugf("Search root %s does not exist, skipping", r)
			continue
		}
		if slices.Contains(roots, r) {
			continue
		}
		roots = append(roots, r)
	}

	for _, d := range p.Drives {
		if dirExists(fs, d) {
			roots = append(roots, d)
		}
	}
	return roots
}

func dirExists(fs afero.Fs, path string) bool {
	ok, err := afero.DirExists(fs, path)
	return err == nil && ok
}

// LibraryIndex holds the titles found by the last scan. It is owned by the
// tick loop.
type LibraryIndex struct {
	fs       afero.Fs
	formats  []emucore.PackageFormat
	collator *collate.Collator
	titles   []Title
}

// NewLibraryIndex creates an empty index that recognises formats
func NewLibraryIndex(fs afero.Fs, formats []emucore.PackageFormat) *LibraryIndex {
	return &LibraryIndex{
		fs:       fs,
		formats:  formats,
		collator: collate.New(language.English, collate.IgnoreCase, collate.Loose),
	}
}

// Rescan discards the current titles and walks every root. A root that
// cannot be read is skipped; the others are still scanned.
func (l *LibraryIndex) Rescan(roots []string) {
	l.titles = l.titles[:0]

	for _, root := range roots {
		found := l.scanRoot(root)
		log.Debugf("Scanned %s: %d titles", root, found)
	}

	sort.SliceStable(l.titles, func(i, j int) bool {
		if c := l.collator.CompareString(l.titles[i].DisplayName, l.titles[j].DisplayName); c != 0 {
			return c < 0
		}
		return l.titles[i].InstallPath < l.titles[j].InstallPath
	})

	log.Infof("Library scan found %d titles in %d roots", len(l.titles), len(roots))
}

func (l *LibraryIndex) scanRoot(root string) int {
	found := 0

	walkFn := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Unreadable entries are skipped without aborting the walk
			log.Debugf("Skipping %s: %v", path, err)
			return nil
		}

		// Skip symlinks
		if info.Mode()&os.ModeSymlink != 0 {
			return nil
		}
		if info.IsDir() {
			return nil
		}

		format, ok := l.formatFor(path)
		if !ok {
			return nil
		}

		// The extension stays so dumps of one title in both formats differ
		l.titles = append(l.titles, Title{
			DisplayName: filepath.Base(path),
			InstallPath: path,
			Format:      format,
		})
		found++
		return nil
	}

	if err := afero.Walk(l.fs, root, walkFn); err != nil {
		log.Debugf("Scan of %s stopped: %v", root, err)
	}
	return found
}

func (l *LibraryIndex) formatFor(path string) (emucore.PackageFormat, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range l.formats {
		if f.Extension == ext {
			return f, true
		}
	}
	return emucore.PackageFormat{}, false
}

// Titles returns a copy of the current titles in display order
func (l *LibraryIndex) Titles() []Title {
	return slices.Clone(l.titles)
}

// Len returns the number of titles
func (l *LibraryIndex) Len() int {
	return len(l.titles)
}

// At returns the title at index i
func (l *LibraryIndex) At(i int) (Title, bool) {
	if i < 0 || i >= len(l.titles) {
		return Title{}, false
	}
	return l.titles[i], true
}
