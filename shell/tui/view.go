package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BannedPenta01/Citron-Xbox-WIP/shell"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell/style"
)

// Viewport is the terminal size in cells
type Viewport struct {
	Width, Height int
}

// DefaultViewport is used until the terminal reports its size
var DefaultViewport = Viewport{Width: 80, Height: 24}

// Lines used by the header and footer around the library list
const reservedLines = 6

const labelWidth = 20

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// View renders one frame of snap as text. Like shell.Paint it is total and
// keeps no state between frames.
func View(snap shell.Snapshot, vp Viewport) string {
	if vp.Width <= 0 || vp.Height <= 0 {
		vp = DefaultViewport
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(hex(style.Accent)).
		Width(vp.Width).Align(lipgloss.Center).Render("CITRON")
	text := lipgloss.NewStyle().Foreground(hex(style.Text))

	switch {
	case snap.InstallBusy:
		return lipgloss.JoinVertical(lipgloss.Left, title, "", text.Render(snap.InstallStatus))
	case snap.State == shell.StateRunning:
		return lipgloss.JoinVertical(lipgloss.Left, title, "", text.Render("Running "+snap.RunningTitle))
	}

	var body string
	if snap.State == shell.StateSettings {
		body = viewSettings(snap, vp)
	} else {
		body = viewLibrary(snap, vp)
	}

	parts := []string{title, body}
	if snap.HasNotice {
		parts = append(parts, viewNotice(snap.Notice, vp))
	}
	footer := lipgloss.NewStyle().Foreground(hex(style.TextDim)).Render(snap.FooterHint())
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func viewLibrary(snap shell.Snapshot, vp Viewport) string {
	if len(snap.Titles) == 0 {
		return lipgloss.NewStyle().Foreground(hex(style.Text)).Render(shell.EmptyLibraryMessage)
	}

	normal := lipgloss.NewStyle().Foreground(hex(style.Text))
	selected := lipgloss.NewStyle().Foreground(hex(style.TextSelected)).Background(hex(style.ItemSelected))

	visible := max(1, vp.Height-reservedLines)
	start, end := shell.WindowAround(len(snap.Titles), snap.Selection, visible)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		name, _ := style.TruncateEnd(snap.Titles[i].DisplayName, max(vp.Width-4, 1))
		if i == snap.Selection {
			lines = append(lines, "> "+selected.Render(name))
		} else {
			lines = append(lines, "  "+normal.Render(name))
		}
	}
	return strings.Join(lines, "\n")
}

func viewSettings(snap shell.Snapshot, vp Viewport) string {
	active := lipgloss.NewStyle().Bold(true).Padding(0, 1).
		Foreground(hex(style.TextSelected)).Background(hex(style.Accent))
	inactive := lipgloss.NewStyle().Padding(0, 1).
		Foreground(hex(style.Text)).Background(hex(style.TabInactive))

	tabs := make([]string, len(shell.AllTabs))
	for i, tab := range shell.AllTabs {
		if tab == snap.Tab {
			tabs[i] = active.Render(tab.String())
		} else {
			tabs[i] = inactive.Render(tab.String())
		}
	}

	label := lipgloss.NewStyle().Width(labelWidth)
	focus := lipgloss.NewStyle().Background(hex(style.Highlight))
	editing := lipgloss.NewStyle().Background(hex(style.Editing)).Foreground(hex(style.TextSelected))

	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, tabs...), ""}
	for i, row := range snap.Rows {
		var line string
		if row.Kind == shell.RowAction {
			line = "[ " + row.Label + " ]"
		} else {
			value := row.Value
			if i == snap.Cursor && snap.Editing {
				value = "< " + value + " >"
			}
			line = label.Render(row.Label) + value
		}
		line, _ = style.TruncateEnd(line, max(vp.Width-2, 1))

		switch {
		case i != snap.Cursor:
			lines = append(lines, "  "+line)
		case snap.Editing:
			lines = append(lines, "> "+editing.Render(line))
		default:
			lines = append(lines, "> "+focus.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

func viewNotice(n shell.Notice, vp Viewport) string {
	fg := style.Text
	if n.Level == shell.NoticeError {
		fg = style.Error
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(hex(fg)).
		Foreground(hex(fg)).
		Padding(0, 1).
		Width(max(vp.Width-4, 10))

	msg := n.Message
	if n.Title != "" {
		msg = lipgloss.NewStyle().Bold(true).Render(n.Title) + "\n" + msg
	}
	return box.Render(msg)
}
