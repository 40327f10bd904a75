package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/ajanda/internal/logger"
	"github.com/faizmokh/ajanda/internal/pomodoro"
)

const pomodoroInfo = "Pomodoro Tekniği, 25 dakikalık çalışma ve 5 dakikalık mola periyotlarından oluşan bir zaman yönetimi yöntemidir. Her 4 pomodoro'dan sonra 15-30 dakikalık uzun bir mola verilir."

func (m Model) handlePomodoroKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		if m.engine.Toggle() {
			// A countdown started by hand supersedes the pending proposal.
			m.proposal = nil
			m.statusLine = "Zamanlayıcı başladı."
		} else {
			m.statusLine = "Zamanlayıcı durdu."
		}
	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset()
		m.proposal = nil
		m.statusLine = "Zamanlayıcı sıfırlandı."
	case key.Matches(msg, m.keys.Work):
		m.switchMode(pomodoro.Work)
	case key.Matches(msg, m.keys.Short):
		m.switchMode(pomodoro.ShortBreak)
	case key.Matches(msg, m.keys.Long):
		m.switchMode(pomodoro.LongBreak)
	case m.proposal != nil && key.Matches(msg, m.keys.Accept):
		m.acceptProposal(*m.proposal)
	case m.proposal != nil && key.Matches(msg, m.keys.Decline):
		m.proposal = nil
		m.statusLine = "Öneri ertelendi."
	}
	return m, nil
}

func (m *Model) switchMode(mode pomodoro.Mode) {
	m.engine.SwitchMode(mode)
	m.proposal = nil
	m.statusLine = mode.Label()
}

func (m *Model) acceptProposal(p pomodoro.Proposal) {
	m.engine.Accept(p)
	m.proposal = nil
	m.statusLine = fmt.Sprintf("%s hazır.", p.Next.Label())
}

// handleTimerDone surfaces a finished countdown. With notifications on the
// proposal opens as a dialog; otherwise it waits quietly on the pomodoro tab.
func (m Model) handleTimerDone(p pomodoro.Proposal) (tea.Model, tea.Cmd) {
	settings := m.stores.Settings
	if settings.SoundEnabled {
		if _, err := fmt.Fprint(m.bell, "\a"); err != nil {
			logger.Debug("bell failed", "error", err)
		}
	}

	m.proposal = &p
	if settings.Notifications && m.dialog == nil {
		m.statusLine = p.Title()
		return m.openDialog(newProposalDialog(p, m.styles.formTheme()))
	}
	m.statusLine = fmt.Sprintf("%s (Pomodoro sekmesinde enter: %s)", p.Title(), p.AcceptLabel())
	return m, nil
}

func (m Model) viewPomodoro() string {
	var b strings.Builder
	s := m.styles
	snap := m.engine.Snapshot()

	b.WriteString(s.section.Render("Pomodoro Zamanlayıcı"))
	b.WriteString("\n\n")

	modes := make([]string, 0, len(pomodoro.Modes))
	for _, mode := range pomodoro.Modes {
		if mode == snap.Mode {
			modes = append(modes, s.activeTab.Render(mode.Label()))
		} else {
			modes = append(modes, s.tab.Render(mode.Label()))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, modes...))
	b.WriteByte('\n')

	b.WriteString(s.clock.Render(snap.Clock()))
	b.WriteByte('\n')

	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(32))
	b.WriteString(bar.ViewAs(snap.Progress()))
	b.WriteByte('\n')

	state := "Durduruldu"
	if snap.Running {
		state = "Çalışıyor"
	}
	b.WriteString(s.muted.Render(state))
	b.WriteByte('\n')
	b.WriteString(s.text.Render(fmt.Sprintf("Tamamlanan Pomodoro: %d", snap.Completed)))
	b.WriteByte('\n')

	if m.proposal != nil {
		b.WriteByte('\n')
		b.WriteString(s.highlight.Render(m.proposal.Title() + " " + m.proposal.Message()))
		b.WriteByte('\n')
		b.WriteString(s.muted.Render(fmt.Sprintf("enter: %s · esc: %s", m.proposal.AcceptLabel(), pomodoro.DeclineLabel)))
		b.WriteByte('\n')
	}

	b.WriteString(s.section.Render("Pomodoro Tekniği Nedir?"))
	b.WriteByte('\n')
	width := 60
	if m.width > 0 && m.width < width {
		width = m.width
	}
	b.WriteString(s.muted.Width(width).Render(pomodoroInfo))
	b.WriteByte('\n')
	return b.String()
}
