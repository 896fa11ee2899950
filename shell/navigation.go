package shell

import (
	"path/filepath"
	"time"

	emucore "github.com/BannedPenta01/Citron-Xbox-WIP/api"
	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/errdefs"
	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/log"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell/storage"
)

// Navigator is the menu state machine. It is driven from the tick loop
// only: Handle for intents and Poll for background results.
//
// When several signals arrive in one intent a single one acts, in the
// order Cancel, Menu, Confirm, PrevTab, NextTab, Up, Down.
type Navigator struct {
	sess *Session

	state     AppState
	tab       SettingsTab
	cursor    int
	editing   bool
	selection int

	// Folder picker in flight
	pick    chan pickResult
	pending *ActionSpec

	// Core running in the background
	running      chan error
	runningTitle Title
	returned     bool
}

func newNavigator(sess *Session) *Navigator {
	return &Navigator{sess: sess, state: StateLibrary}
}

// State returns the current top-level state
func (n *Navigator) State() AppState {
	return n.state
}

// Handle applies one intent. Intents are dropped while a folder pick is
// pending or a title is running.
func (n *Navigator) Handle(now time.Time, in Intent) {
	if n.pick != nil {
		return
	}

	switch n.state {
	case StateLibrary:
		n.handleLibrary(now, in.Signals)
	case StateSettings:
		if n.editing {
			n.handleEdit(in.Signals)
		} else {
			n.handleSettings(now, in.Signals)
		}
	case StateRunning:
		// The core owns input until it returns
	}
}

func (n *Navigator) handleLibrary(now time.Time, sig Signal) {
	switch {
	case sig.Has(SignalMenu):
		n.state = StateSettings
		n.tab = TabGeneral
		n.cursor = 0
		n.editing = false
	case sig.Has(SignalConfirm):
		n.startSelected(now)
	case sig.Has(SignalUp):
		if n.selection > 0 {
			n.selection--
		}
	case sig.Has(SignalDown):
		if n.selection < n.sess.library.Len()-1 {
			n.selection++
		}
	}
}

func (n *Navigator) handleSettings(now time.Time, sig Signal) {
	rows := RowsFor(n.tab)

	switch {
	case sig.Has(SignalCancel), sig.Has(SignalMenu):
		n.state = StateLibrary
		n.sess.persist()
	case sig.Has(SignalConfirm):
		if n.cursor < len(rows) {
			n.activate(now, rows[n.cursor])
		}
	case sig.Has(SignalPrevTab):
		n.tab = n.tab.Prev()
		n.cursor = 0
	case sig.Has(SignalNextTab):
		n.tab = n.tab.Next()
		n.cursor = 0
	case sig.Has(SignalUp):
		if n.cursor > 0 {
			n.cursor--
		}
	case sig.Has(SignalDown):
		if n.cursor < len(rows)-1 {
			n.cursor++
		}
	}
}

func (n *Navigator) handleEdit(sig Signal) {
	rows := RowsFor(n.tab)
	if n.cursor >= len(rows) || !rows[n.cursor].Editable() {
		n.editing = false
		return
	}
	row := rows[n.cursor]

	switch {
	case sig.Has(SignalCancel), sig.Has(SignalConfirm):
		n.editing = false
	case sig.Has(SignalUp), sig.Has(SignalNextTab):
		row.Cycle(n.sess.settings, +1)
	case sig.Has(SignalDown), sig.Has(SignalPrevTab):
		row.Cycle(n.sess.settings, -1)
	}
}

func (n *Navigator) activate(now time.Time, row Row) {
	switch {
	case row.Kind == RowAction && row.Action != nil:
		n.beginAction(now, row.Action)
	case row.Editable():
		n.editing = true
	}
}

func (n *Navigator) beginAction(now time.Time, act *ActionSpec) {
	if act.Kind == ActionInstall && n.sess.installer.Busy() {
		n.sess.notices.ShowError(errdefs.ErrInstallBusy, now)
		return
	}
	if n.sess.picker == nil {
		n.sess.notices.ShowError(errdefs.NewCustomError(errdefs.ErrTypeGeneric, "no folder picker available"), now)
		return
	}

	ch := make(chan pickResult, 1)
	n.pick = ch
	n.pending = act

	picker := n.sess.picker
	title := act.PickerTitle
	n.sess.spawn(func() {
		path, err := picker.PickFolder(title)
		ch <- pickResult{path: path, err: err}
	})
}

func (n *Navigator) finishAction(now time.Time, act *ActionSpec, res pickResult) {
	if res.err != nil {
		if errdefs.IsType(res.err, errdefs.ErrTypePickerCancelled) {
			log.Debugf("%s cancelled", act.PickerTitle)
			return
		}
		n.sess.notices.ShowError(res.err, now)
		return
	}
	if res.path == "" {
		return
	}

	switch act.Kind {
	case ActionAddDirectory:
		if !n.sess.settings.AddSearchRoot(res.path) {
			n.sess.notices.ShowDefault(Notice{Title: "Citron", Message: "Game Directory Already Added"}, now)
			return
		}
		n.sess.persist()
		n.sess.Rescan()
		n.sess.notices.ShowDefault(Notice{Title: "Citron", Message: "Game Directory Saved!"}, now)
	case ActionInstall:
		req := InstallRequest{
			Source:      res.path,
			Destination: filepath.Join(n.sess.userDir, act.Subdir),
			Extensions:  act.Extensions,
		}
		if !n.sess.installer.RequestInstall(req) {
			n.sess.notices.ShowError(errdefs.ErrInstallBusy, now)
		}
	}
}

func (n *Navigator) startSelected(now time.Time) {
	title, ok := n.sess.library.At(n.selection)
	if !ok {
		return
	}

	if err := CheckPrerequisites(n.sess.fs, n.sess.userDir); err != nil {
		log.Warnf("Cannot start %s: %v", title.DisplayName, err)
		n.sess.notices.ShowError(err, now)
		return
	}

	core := n.sess.core
	if core == nil {
		n.sess.notices.ShowError(errdefs.NewCustomError(errdefs.ErrTypeBootFailed, "no emulation core configured"), now)
		return
	}

	if err := core.Initialize(); err != nil {
		err = errdefs.Wrap(errdefs.ErrTypeBootFailed, "core initialization failed", err)
		log.Errorf("Cannot start %s: %v", title.DisplayName, err)
		n.sess.notices.ShowError(err, now)
		return
	}

	status := core.Load(title.InstallPath, LaunchParamsFor(n.sess.settings))
	if !status.OK() {
		log.Errorf("Load of %s failed: %s", title.InstallPath, status)
		n.sess.notices.ShowError(errdefs.NewBootError(int(status)), now)
		return
	}

	log.Infof("Running %s", title.DisplayName)
	n.state = StateRunning
	n.runningTitle = title

	ch := make(chan error, 1)
	n.running = ch
	n.sess.spawn(func() { ch <- core.Run() })
}

// Poll collects results produced off the tick loop: folder picks, install
// completion and the core returning.
func (n *Navigator) Poll(now time.Time) {
	if n.pick != nil {
		select {
		case res := <-n.pick:
			act := n.pending
			n.pick = nil
			n.pending = nil
			n.finishAction(now, act, res)
		default:
		}
	}

	if inst := n.sess.installer; !inst.Busy() {
		job := inst.Job()
		switch job.State {
		case InstallDone:
			n.sess.notices.ShowDefault(Notice{Title: "Success", Message: "Files Copied!"}, now)
			inst.Acknowledge()
		case InstallFailed:
			n.sess.notices.ShowDefault(Notice{
				Title:   "Error",
				Message: "Failed: " + errorDetail(job.Err),
				Level:   NoticeError,
			}, now)
			inst.Acknowledge()
		}
	}

	if n.running != nil {
		select {
		case err := <-n.running:
			n.running = nil
			n.state = StateLibrary
			n.returned = true
			if err != nil {
				log.Errorf("%s exited with error: %v", n.runningTitle.DisplayName, err)
				n.sess.notices.ShowError(errdefs.Wrap(errdefs.ErrTypeBootFailed, n.runningTitle.DisplayName, err), now)
			} else {
				log.Infof("%s exited", n.runningTitle.DisplayName)
			}
			n.runningTitle = Title{}
		default:
		}
	}
}

// takeReturned reports once that the core handed control back
func (n *Navigator) takeReturned() bool {
	r := n.returned
	n.returned = false
	return r
}

func (n *Navigator) clampSelection() {
	if last := n.sess.library.Len() - 1; n.selection > last {
		n.selection = max(last, 0)
	}
}

// LaunchParamsFor builds front-end initiated boot parameters carrying the
// current system options
func LaunchParamsFor(s *storage.Settings) emucore.LaunchParams {
	return emucore.LaunchParams{
		Type:         emucore.LaunchFrontendInitiated,
		Language:     int(s.Language),
		Region:       int(s.Region),
		CustomRTC:    s.CustomRTC,
		MultiCore:    s.MultiCore,
		MemoryLayout: int(s.MemoryLayout),
	}
}
