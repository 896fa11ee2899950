package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/BannedPenta01/Citron-Xbox-WIP/shell"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func renderLibrary(roots []string, titles []shell.Title) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Search roots"))
	b.WriteString("\n")
	for _, r := range roots {
		b.WriteString("  " + r + "\n")
	}
	b.WriteString("\n")

	if len(titles) == 0 {
		b.WriteString(dimStyle.Render("No games found."))
		return b.String()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers("#", "Title", "Format", "Path")
	for i, title := range titles {
		t.Row(fmt.Sprint(i+1), title.DisplayName, title.Format.Name, title.InstallPath)
	}
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d titles", len(titles))))
	return b.String()
}

func renderConfig(env *environment) string {
	s := env.settings
	fc := env.frontend

	core := fc.Core.Executable
	if core == "" {
		core = "(none)"
	}
	limit := "unlimited"
	if fc.Core.MemoryLimitMB > 0 {
		limit = fmt.Sprintf("%d MiB", fc.Core.MemoryLimitMB)
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return dimStyle
			}
			return lipgloss.NewStyle()
		}).
		Row("Data directory", env.userDir).
		Row("Language", s.Language.String()).
		Row("Region", s.Region.String()).
		Row("Custom RTC", onOff(s.CustomRTC)).
		Row("Multicore CPU", onOff(s.MultiCore)).
		Row("Memory Layout", s.MemoryLayout.String()).
		Row("Core", core).
		Row("Core arguments", strings.Join(fc.Core.Args, " ")).
		Row("Core memory limit", limit).
		Row("Window", fmt.Sprintf("%dx%d fullscreen=%t", fc.Window.Width, fc.Window.Height, fc.Window.Fullscreen)).
		Row("Native dialogs", onOff(fc.NativeDialogs)).
		Row("Theme", fc.Theme)

	var b strings.Builder
	b.WriteString(headingStyle.Render("Settings"))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("Registered search roots"))
	b.WriteString("\n")
	roots := s.SearchRoots()
	if len(roots) == 0 {
		b.WriteString(dimStyle.Render("  (none)") + "\n")
	}
	for _, r := range roots {
		b.WriteString("  " + r + "\n")
	}
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Prerequisites"))
	b.WriteString("\n")
	if err := shell.CheckPrerequisites(env.fs, env.userDir); err != nil {
		b.WriteString(badStyle.Render(err.Error()))
	} else {
		b.WriteString(okStyle.Render("Keys and firmware installed"))
	}
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "Enabled"
	}
	return "Disabled"
}
