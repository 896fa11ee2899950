package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/atomic"

	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/errdefs"
	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/log"
)

// InstallState is the lifecycle of an install job
type InstallState int

const (
	InstallIdle InstallState = iota
	InstallRunning
	InstallDone
	InstallFailed
)

// String returns the string representation of the state
func (s InstallState) String() string {
	switch s {
	case InstallIdle:
		return "Idle"
	case InstallRunning:
		return "Running"
	case InstallDone:
		return "Done"
	case InstallFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Status text published while and after a job runs
const (
	StatusCopying = "Copying files..."
	StatusDone    = "Done!"
)

// InstallRequest asks for Source to be copied recursively into Destination
type InstallRequest struct {
	Source      string
	Destination string
	// Extensions limits copied files (case-insensitive, with dot). Empty
	// copies everything. Directories are always traversed.
	Extensions []string
}

// InstallJob is an immutable snapshot of the current job
type InstallJob struct {
	InstallRequest
	State InstallState
	Err   error
}

// copyFunc performs one install. Replaced in tests.
type copyFunc func(fs afero.Fs, req InstallRequest) error

// InstallWorker runs at most one copy job in the background. The worker
// goroutine is the only writer while busy; the tick loop only reads until
// the job is acknowledged.
type InstallWorker struct {
	fs    afero.Fs
	spawn func(func())
	copy  copyFunc

	busy   *atomic.Bool
	status *atomic.String
	job    *atomic.Pointer[InstallJob]
}

// NewInstallWorker creates a worker that copies on fs. spawn starts the
// background task; nil means a new goroutine.
func NewInstallWorker(fs afero.Fs, spawn func(func())) *InstallWorker {
	if spawn == nil {
		spawn = func(f func()) { go f() }
	}
	return &InstallWorker{
		fs:     fs,
		spawn:  spawn,
		copy:   CopyTree,
		busy:   atomic.NewBool(false),
		status: atomic.NewString(""),
		job:    atomic.NewPointer(&InstallJob{State: InstallIdle}),
	}
}

// RequestInstall starts a job. It returns false and changes nothing if a
// job is already running.
func (w *InstallWorker) RequestInstall(req InstallRequest) bool {
	if !w.busy.CompareAndSwap(false, true) {
		log.Debugf("Install already running, ignoring request for %s", req.Source)
		return false
	}

	w.job.Store(&InstallJob{InstallRequest: req, State: InstallRunning})
	w.status.Store(StatusCopying)
	log.Infof("Installing %s into %s", req.Source, req.Destination)

	w.spawn(func() { w.run(req) })
	return true
}

func (w *InstallWorker) run(req InstallRequest) {
	err := w.copy(w.fs, req)

	if err != nil {
		err = errdefs.Wrap(errdefs.ErrTypeInstallFailed, "install failed", err)
		log.Errorf("Install from %s failed: %v", req.Source, err)
		w.job.Store(&InstallJob{InstallRequest: req, State: InstallFailed, Err: err})
		w.status.Store("Error: " + errorDetail(err))
	} else {
		log.Infof("Install from %s complete", req.Source)
		w.job.Store(&InstallJob{InstallRequest: req, State: InstallDone})
		w.status.Store(StatusDone)
	}

	// Status must be visible before busy clears
	w.busy.Store(false)
}

// Busy reports whether a job is running
func (w *InstallWorker) Busy() bool {
	return w.busy.Load()
}

// Status returns the last published status line
func (w *InstallWorker) Status() string {
	return w.status.Load()
}

// Job returns a snapshot of the current job
func (w *InstallWorker) Job() InstallJob {
	return *w.job.Load()
}

// Acknowledge resets a finished job to Idle. It does nothing while a job is
// running or when there is nothing to acknowledge.
func (w *InstallWorker) Acknowledge() {
	if w.busy.Load() {
		return
	}
	switch w.job.Load().State {
	case InstallDone, InstallFailed:
		w.job.Store(&InstallJob{State: InstallIdle})
		w.status.Store("")
	}
}

// errorDetail strips the wrapper message so the status line shows the cause
func errorDetail(err error) string {
	var ce *errdefs.CustomError
	if errors.As(err, &ce) && ce.Err != nil {
		return ce.Err.Error()
	}
	return err.Error()
}

// CopyTree copies the contents of req.Source into req.Destination,
// creating directories as needed and overwriting existing files.
func CopyTree(fs afero.Fs, req InstallRequest) error {
	info, err := fs.Stat(req.Source)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source %s is not a directory", req.Source)
	}
	if err := fs.MkdirAll(req.Destination, 0755); err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	return afero.Walk(fs, req.Source, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(req.Source, path)
		if err != nil {
			return err
		}
		target := filepath.Join(req.Destination, rel)

		if info.IsDir() {
			return fs.MkdirAll(target, 0755)
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if len(req.Extensions) > 0 && !hasExtension(path, req.Extensions) {
			return nil
		}
		return copyFile(fs, path, target, info.Mode().Perm())
	})
}

func hasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.ContainsFunc(exts, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}

func copyFile(fs afero.Fs, src, dst string, perm os.FileMode) error {
	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if perm == 0 {
		perm = 0644
	}
	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", filepath.Base(src), err)
	}
	return out.Close()
}
