package shell

import (
	"time"

	"github.com/spf13/afero"

	emucore "github.com/BannedPenta01/Citron-Xbox-WIP/api"
	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/errdefs"
	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/log"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell/storage"
)

// Options configures a Session
type Options struct {
	Fs      afero.Fs
	UserDir string
	// Settings as loaded from config.ini. Nil uses defaults.
	Settings *storage.Settings
	System   emucore.SystemInfo
	Roots    RootPlan

	Core      emucore.Core
	Picker    FolderPicker
	Notifiers []Notifier

	// Spawn starts background work. Nil means a new goroutine.
	Spawn func(func())
}

// Session is the state owned by one tick loop: settings, library, install
// worker, notices and the navigation state machine. Nothing here is global.
type Session struct {
	fs         afero.Fs
	userDir    string
	configPath string
	system     emucore.SystemInfo
	roots      RootPlan

	settings  *storage.Settings
	library   *LibraryIndex
	installer *InstallWorker
	notices   *Notification

	core   emucore.Core
	picker FolderPicker
	spawn  func(func())

	input *Interpreter
	nav   *Navigator
}

// NewSession builds a session and performs the initial library scan
func NewSession(opts Options) *Session {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Settings == nil {
		opts.Settings = storage.DefaultSettings()
	}
	if opts.Spawn == nil {
		opts.Spawn = func(f func()) { go f() }
	}
	if len(opts.System.Formats) == 0 {
		opts.System = emucore.DefaultSystemInfo()
	}

	s := &Session{
		fs:         opts.Fs,
		userDir:    opts.UserDir,
		configPath: storage.ConfigPath(opts.UserDir),
		system:     opts.System,
		roots:      opts.Roots,
		settings:   opts.Settings,
		library:    NewLibraryIndex(opts.Fs, opts.System.Formats),
		installer:  NewInstallWorker(opts.Fs, opts.Spawn),
		notices:    NewNotification(opts.Notifiers...),
		core:       opts.Core,
		picker:     opts.Picker,
		spawn:      opts.Spawn,
		input:      NewInterpreter(),
	}
	s.nav = newNavigator(s)
	s.Rescan()
	return s
}

// Tick runs one iteration: collect background results, interpret the
// input mask and apply the resulting intent. It never blocks.
func (s *Session) Tick(now time.Time, mask Signal) {
	s.nav.Poll(now)
	if s.nav.takeReturned() {
		s.input.HoldUntilRelease()
	}

	if intent, ok := s.input.Sample(now, mask); ok {
		s.nav.Handle(now, intent)
	}
}

// Rescan rebuilds the library from the current search roots
func (s *Session) Rescan() {
	s.library.Rescan(s.roots.Collect(s.fs, s.settings.SearchRoots()))
	s.nav.clampSelection()
}

// persist saves config.ini. Failures are logged and otherwise ignored so
// the menu stays usable without durable storage.
func (s *Session) persist() {
	if err := storage.SaveSettings(s.fs, s.configPath, s.settings); err != nil {
		log.Warnf("Failed to save settings: %v", err)
	}
}

// Settings returns the live settings
func (s *Session) Settings() *storage.Settings {
	return s.settings
}

// Library returns the live library index
func (s *Session) Library() *LibraryIndex {
	return s.library
}

// Installer returns the install worker
func (s *Session) Installer() *InstallWorker {
	return s.installer
}

// Navigator returns the state machine
func (s *Session) Navigator() *Navigator {
	return s.nav
}

// Notify shows a notice, e.g. from the host front-end
func (s *Session) Notify(now time.Time, n Notice) {
	s.notices.ShowDefault(n, now)
}

// Close flushes settings and releases the core
func (s *Session) Close() error {
	var err error
	if saveErr := storage.SaveSettings(s.fs, s.configPath, s.settings); saveErr != nil {
		err = errdefs.Wrap(errdefs.ErrTypePersistence, "failed to save settings", saveErr)
	}
	if c, ok := s.core.(emucore.Closer); ok {
		if closeErr := c.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}

// Snapshot is everything a renderer needs for one frame
type Snapshot struct {
	System emucore.SystemInfo

	State     AppState
	Tab       SettingsTab
	Cursor    int
	Editing   bool
	Rows      []RowView
	Settings  *storage.Settings
	Titles    []Title
	Selection int

	InstallBusy   bool
	InstallStatus string
	PickerOpen    bool
	RunningTitle  string

	Notice    Notice
	HasNotice bool
}

// Snapshot captures the session at now. The result shares nothing mutable
// with the session.
func (s *Session) Snapshot(now time.Time) Snapshot {
	n := s.nav
	snap := Snapshot{
		System:        s.system,
		State:         n.state,
		Tab:           n.tab,
		Cursor:        n.cursor,
		Editing:       n.editing,
		Rows:          viewRows(n.tab, s.settings),
		Settings:      s.settings.Clone(),
		Titles:        s.library.Titles(),
		Selection:     n.selection,
		InstallBusy:   s.installer.Busy(),
		InstallStatus: s.installer.Status(),
		PickerOpen:    n.pick != nil,
		RunningTitle:  n.runningTitle.DisplayName,
	}
	snap.Notice, snap.HasNotice = s.notices.Current(now)
	return snap
}

// FooterHint returns the controller hint line for the snapshot state
func (snap Snapshot) FooterHint() string {
	if snap.State == StateSettings {
		return "LB/RB: Tab | A: Select | B: Back"
	}
	return "A: Play | Start: Settings"
}
