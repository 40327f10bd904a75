package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	accent  lipgloss.Color
	text    lipgloss.Color
	muted   lipgloss.Color
	success lipgloss.Color
	danger  lipgloss.Color
	warn    lipgloss.Color
	border  lipgloss.Color
}

var (
	lightPalette = palette{
		accent:  lipgloss.Color("#4285F4"),
		text:    lipgloss.Color("#202124"),
		muted:   lipgloss.Color("#5F6368"),
		success: lipgloss.Color("#34A853"),
		danger:  lipgloss.Color("#EA4335"),
		warn:    lipgloss.Color("#FBBC05"),
		border:  lipgloss.Color("#DADCE0"),
	}
	darkPalette = palette{
		accent:  lipgloss.Color("#8AB4F8"),
		text:    lipgloss.Color("#E8EAED"),
		muted:   lipgloss.Color("#9AA0A6"),
		success: lipgloss.Color("#81C995"),
		danger:  lipgloss.Color("#F28B82"),
		warn:    lipgloss.Color("#FDD663"),
		border:  lipgloss.Color("#5F6368"),
	}
)

// styles is rebuilt whenever dark mode flips.
type styles struct {
	dark bool

	title       lipgloss.Style
	subtitle    lipgloss.Style
	section     lipgloss.Style
	tab         lipgloss.Style
	activeTab   lipgloss.Style
	text        lipgloss.Style
	muted       lipgloss.Style
	done        lipgloss.Style
	cursor      lipgloss.Style
	selected    lipgloss.Style
	status      lipgloss.Style
	errorLine   lipgloss.Style
	highlight   lipgloss.Style
	clock       lipgloss.Style
	marked      lipgloss.Style
	today       lipgloss.Style
	dialog      lipgloss.Style
	dialogError lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return styles{
		dark:        dark,
		title:       lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		subtitle:    lipgloss.NewStyle().Foreground(p.muted),
		section:     lipgloss.NewStyle().Bold(true).Foreground(p.text).MarginTop(1),
		tab:         lipgloss.NewStyle().Padding(0, 1).Foreground(p.muted),
		activeTab:   lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(p.accent).Underline(true),
		text:        lipgloss.NewStyle().Foreground(p.text),
		muted:       lipgloss.NewStyle().Foreground(p.muted),
		done:        lipgloss.NewStyle().Foreground(p.muted).Strikethrough(true),
		cursor:      lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		selected:    lipgloss.NewStyle().Foreground(p.accent),
		status:      lipgloss.NewStyle().Foreground(p.success),
		errorLine:   lipgloss.NewStyle().Foreground(p.danger).Bold(true),
		highlight:   lipgloss.NewStyle().Foreground(p.warn).Bold(true),
		clock:       lipgloss.NewStyle().Bold(true).Foreground(p.accent).Padding(1, 4).Border(lipgloss.RoundedBorder()).BorderForeground(p.border),
		marked:      lipgloss.NewStyle().Foreground(p.success).Bold(true),
		today:       lipgloss.NewStyle().Foreground(p.warn),
		dialog:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(0, 1),
		dialogError: lipgloss.NewStyle().Foreground(p.danger),
	}
}

func (s styles) formTheme() *huh.Theme {
	if s.dark {
		return huh.ThemeDracula()
	}
	return huh.ThemeBase()
}
