package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/errdefs"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell"
)

type harness struct {
	t      *testing.T
	fs     afero.Fs
	sess   *shell.Session
	picker *Picker
	m      *Model
	now    time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/games", 0755))
	require.NoError(t, afero.WriteFile(fs, "/games/zelda.nsp", []byte("x"), 0644))

	picker := NewPicker()
	t.Cleanup(picker.Close)

	h := &harness{t: t, fs: fs, picker: picker, now: time.Unix(1000, 0)}
	h.sess = shell.NewSession(shell.Options{
		Fs:      fs,
		UserDir: "/user",
		Roots:   shell.RootPlan{Default: "/games"},
		Picker:  picker,
	})
	h.m = NewModel(h.sess, picker, Options{Fs: fs, Now: func() time.Time { return h.now }})
	return h
}

func (h *harness) tick() {
	h.now = h.now.Add(TickInterval)
	h.m.Update(tickMsg(h.now))
}

func (h *harness) key(msg tea.KeyMsg) {
	h.m.Update(msg)
	h.tick()
	h.tick()
}

func TestInitStartsTicking(t *testing.T) {
	h := newHarness(t)
	assert.NotNil(t, h.m.Init())
}

func TestKeysDriveNavigation(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, shell.StateLibrary, h.sess.Navigator().State())

	h.key(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, shell.StateSettings, h.sess.Navigator().State())

	h.key(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, shell.TabSystem, h.sess.Snapshot(h.now).Tab)

	h.key(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, shell.StateLibrary, h.sess.Navigator().State())
}

func TestPendingSignalsLastOneTick(t *testing.T) {
	h := newHarness(t)
	h.m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, shell.SignalDown, h.m.pending)
	h.tick()
	assert.Zero(t, h.m.pending)
}

func TestWindowSize(t *testing.T) {
	h := newHarness(t)
	h.m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, Viewport{120, 40}, h.m.vp)
	assert.Contains(t, h.m.View(), "zelda")
}

func TestQuit(t *testing.T) {
	h := newHarness(t)
	_, cmd := h.m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

// openAddDirectory moves to General > Add Game Directory and waits for
// the prompt to open
func openAddDirectory(h *harness) {
	h.key(tea.KeyMsg{Type: tea.KeyTab})
	h.key(tea.KeyMsg{Type: tea.KeyDown})
	h.key(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(h.t, 2, h.sess.Snapshot(h.now).Cursor)

	h.key(tea.KeyMsg{Type: tea.KeyEnter})
	require.Eventually(h.t, func() bool {
		h.tick()
		return h.m.prompt != nil
	}, time.Second, time.Millisecond)
	assert.Contains(h.t, h.m.View(), "Add Game Directory")
}

func TestPromptAddsDirectory(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.fs.MkdirAll("/more", 0755))
	require.NoError(t, afero.WriteFile(h.fs, "/more/mario.xci", []byte("x"), 0644))

	openAddDirectory(h)
	h.m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/more")})
	h.m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, h.m.prompt)

	require.Eventually(t, func() bool {
		h.tick()
		return h.sess.Library().Len() == 2
	}, time.Second, time.Millisecond)
	assert.Equal(t, []string{"/more"}, h.sess.Settings().SearchRoots())
}

func TestPromptRejectsNonFolder(t *testing.T) {
	h := newHarness(t)
	openAddDirectory(h)

	h.m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/missing")})
	h.m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, h.m.prompt)
	assert.Contains(t, h.m.View(), "Not a folder: /missing")

	h.m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, h.m.prompt)
	require.Eventually(t, func() bool {
		h.tick()
		return !h.sess.Snapshot(h.now).PickerOpen
	}, time.Second, time.Millisecond)
	assert.Empty(t, h.sess.Settings().SearchRoots())
}

func TestPickerCloseCancels(t *testing.T) {
	p := NewPicker()
	p.Close()
	_, err := p.PickFolder("Select Keys Folder")
	assert.ErrorIs(t, err, errdefs.ErrPickerCancelled)
}

func TestKeyMapSignals(t *testing.T) {
	k := defaultKeyMap()
	cases := map[string]shell.Signal{
		"k":      shell.SignalUp,
		"j":      shell.SignalDown,
		"q":      shell.SignalPrevTab,
		"e":      shell.SignalNextTab,
		" ":      shell.SignalConfirm,
		"x":      0,
		"home":   shell.SignalMenu,
		"pgdown": shell.SignalNextTab,
	}
	for s, want := range cases {
		var msg tea.KeyMsg
		switch s {
		case "home":
			msg = tea.KeyMsg{Type: tea.KeyHome}
		case "pgdown":
			msg = tea.KeyMsg{Type: tea.KeyPgDown}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
		}
		assert.Equal(t, want, k.signal(msg), "key %q", s)
	}
}
