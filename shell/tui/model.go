// Package tui hosts a Session in a terminal using bubbletea.
package tui

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/errdefs"
	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/log"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell/style"
)

// TickInterval matches the 60 Hz graphical loop
const TickInterval = 16 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Options configures the terminal host
type Options struct {
	// Fs validates folders typed into the picker prompt
	Fs  afero.Fs
	Now func() time.Time
}

// Model is the bubbletea model driving a Session
type Model struct {
	sess   *shell.Session
	picker *Picker
	fs     afero.Fs
	now    func() time.Time

	keys keyMap
	help help.Model

	// Signals pressed since the last tick
	pending shell.Signal

	prompt      *pickRequest
	input       textinput.Model
	promptError string

	vp Viewport
}

func NewModel(sess *shell.Session, picker *Picker, opts Options) *Model {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "/path/to/folder"
	ti.CharLimit = 4096

	return &Model{
		sess:   sess,
		picker: picker,
		fs:     opts.Fs,
		now:    opts.Now,
		keys:   defaultKeyMap(),
		help:   help.New(),
		input:  ti,
		vp:     DefaultViewport,
	}
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp = Viewport{Width: msg.Width, Height: msg.Height}
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.closePrompt(pickReply{err: errdefs.ErrPickerCancelled})
			return m, tea.Quit
		}
		if m.prompt != nil {
			return m, m.updatePrompt(msg)
		}
		m.pending |= m.keys.signal(msg)
		return m, nil

	case tickMsg:
		m.sess.Tick(time.Time(msg), m.pending)
		m.pending = 0

		if m.prompt == nil && m.picker != nil {
			if req, ok := m.picker.next(); ok {
				return m, tea.Batch(m.openPrompt(req), tick())
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) openPrompt(req pickRequest) tea.Cmd {
	m.prompt = &req
	m.promptError = ""
	m.input.Reset()
	return m.input.Focus()
}

func (m *Model) closePrompt(r pickReply) {
	if m.prompt == nil {
		return
	}
	m.prompt.reply <- r
	m.prompt = nil
	m.input.Blur()
}

func (m *Model) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.closePrompt(pickReply{err: errdefs.ErrPickerCancelled})
		return nil
	case tea.KeyEnter:
		path := expandHome(strings.TrimSpace(m.input.Value()))
		if path == "" {
			m.closePrompt(pickReply{err: errdefs.ErrPickerCancelled})
			return nil
		}
		if ok, _ := afero.IsDir(m.fs, path); !ok {
			m.promptError = "Not a folder: " + path
			return nil
		}
		log.Debugf("Picked %s", path)
		m.closePrompt(pickReply{path: path})
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}

func (m *Model) View() string {
	frame := View(m.sess.Snapshot(m.now()), m.vp)

	if m.prompt != nil {
		box := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(hex(style.Accent)).
			Padding(0, 1)
		body := m.prompt.title + "\n" + m.input.View()
		if m.promptError != "" {
			body += "\n" + lipgloss.NewStyle().Foreground(hex(style.Error)).Render(m.promptError)
		}
		body += "\n" + lipgloss.NewStyle().Foreground(hex(style.TextDim)).Render("enter: choose | esc: cancel")
		frame = lipgloss.JoinVertical(lipgloss.Left, frame, box.Render(body))
	}

	return lipgloss.JoinVertical(lipgloss.Left, frame, m.help.View(m.keys))
}

// Run drives sess in the terminal until ctrl+c, then closes the session
func Run(sess *shell.Session, picker *Picker, opts Options) error {
	p := tea.NewProgram(NewModel(sess, picker, opts), tea.WithAltScreen())
	_, err := p.Run()
	if picker != nil {
		picker.Close()
	}
	return errors.Join(err, sess.Close())
}
