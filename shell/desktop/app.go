// Package desktop hosts a Session in an ebiten window with gamepad and
// keyboard input and native dialogs.
package desktop

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/afero"

	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/log"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell/storage"
)

const (
	minWindowWidth  = 640
	minWindowHeight = 360
)

// Options configures the desktop host
type Options struct {
	Fs      afero.Fs
	UserDir string
	Config  *storage.FrontendConfig
	// Now is the tick clock. Nil uses time.Now.
	Now func() time.Time
}

// App implements ebiten.Game around a Session
type App struct {
	sess   *shell.Session
	fs     afero.Fs
	config *storage.FrontendConfig
	path   string
	now    func() time.Time
	shots  *ScreenshotWriter

	pads []shell.PadState

	dpiScale           float64
	lastFullscreen     bool
	lastWindowedWidth  int
	lastWindowedHeight int

	// Set in Update, processed in Draw once the frame is complete
	screenshotPending bool
}

// NewApp wraps sess. The session must have been built with the same user
// directory.
func NewApp(sess *shell.Session, opts Options) *App {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Config == nil {
		opts.Config = storage.DefaultFrontendConfig()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &App{
		sess:     sess,
		fs:       opts.Fs,
		config:   opts.Config,
		path:     storage.FrontendConfigPath(opts.UserDir),
		now:      opts.Now,
		shots:    NewScreenshotWriter(opts.Fs, opts.UserDir),
		dpiScale: 1,
	}
}

// Run configures the window, runs the loop until the window closes and then
// saves window state and closes the session.
func Run(sess *shell.Session, opts Options) error {
	app := NewApp(sess, opts)
	w := app.config.Window

	ebiten.SetWindowTitle("Citron")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(minWindowWidth, minWindowHeight, -1, -1)
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(max(w.Width, minWindowWidth), max(w.Height, minWindowHeight))
	if w.Fullscreen {
		ebiten.SetFullscreen(true)
	}
	app.lastFullscreen = w.Fullscreen

	runErr := ebiten.RunGame(app)
	app.saveWindowState()
	return errors.Join(runErr, sess.Close())
}

// Update implements ebiten.Game
func (a *App) Update() error {
	// macOS leaves native fullscreen before exit, so track it per tick
	a.lastFullscreen = ebiten.IsFullscreen()

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		a.lastFullscreen = ebiten.IsFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		a.screenshotPending = true
	}

	a.pads = pollPads(a.pads)
	a.sess.Tick(a.now(), shell.Reduce(a.pads))
	return nil
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	now := a.now()
	shell.Paint(newCanvas(screen, a.dpiScale), a.sess.Snapshot(now))

	if a.screenshotPending {
		a.screenshotPending = false
		path, err := a.shots.Save(screen, now)
		if err != nil {
			log.Errorf("Screenshot failed: %v", err)
			return
		}
		log.Infof("Screenshot saved to %s", path)
	}
}

// Layout implements ebiten.Game. It returns physical pixels so text stays
// sharp on HiDPI displays.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := 1.0
	if m := ebiten.Monitor(); m != nil {
		s = m.DeviceScaleFactor()
	}
	a.dpiScale = s

	w := int(float64(outsideWidth) * s)
	h := int(float64(outsideHeight) * s)
	if !ebiten.IsFullscreen() {
		a.lastWindowedWidth = outsideWidth
		a.lastWindowedHeight = outsideHeight
	}
	return w, h
}

func (a *App) saveWindowState() {
	if a.lastWindowedWidth > 0 && a.lastWindowedHeight > 0 {
		a.config.Window.Width = a.lastWindowedWidth
		a.config.Window.Height = a.lastWindowedHeight
	}
	a.config.Window.Fullscreen = a.lastFullscreen
	if err := storage.SaveFrontendConfig(a.fs, a.path, a.config); err != nil {
		log.Warnf("Failed to save window state: %v", err)
	}
}
