package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.stores.Tasks.All()

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.homeCursor < len(tasks)-1 {
			m.homeCursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.homeCursor > 0 {
			m.homeCursor--
		}
	case key.Matches(msg, m.keys.Toggle):
		if len(tasks) == 0 {
			return m, nil
		}
		if task, ok := m.stores.Tasks.Toggle(tasks[m.homeCursor].ID); ok {
			m.statusLine = toggledStatus(task.Title, task.Completed)
		}
	case key.Matches(msg, m.keys.Add):
		return m.openDialog(newDialog(dialogAddTask, "Yeni Görev", nil, m.styles.formTheme()))
	case key.Matches(msg, m.keys.AddNote):
		return m.openDialog(newDialog(dialogAddNote, "Yeni Not", nil, m.styles.formTheme()))
	case key.Matches(msg, m.keys.AddReminder):
		values := &formValues{Date: m.now().Format(dateLayout)}
		return m.openDialog(newDialog(dialogAddReminder, "Yeni Hatırlatıcı", values, m.styles.formTheme()))
	}
	return m, nil
}

func (m Model) viewHome() string {
	var b strings.Builder
	s := m.styles

	b.WriteString(s.subtitle.Render("Hoş Geldiniz · " + m.now().Format("02.01.2006")))
	b.WriteByte('\n')

	tasks := m.stores.Tasks.All()
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	b.WriteString(s.section.Render(fmt.Sprintf("Bugünkü Görevler (%d/%d)", done, len(tasks))))
	b.WriteByte('\n')
	if len(tasks) == 0 {
		b.WriteString(s.muted.Render("Henüz görev eklenmemiş"))
		b.WriteByte('\n')
	}
	for i, t := range tasks {
		b.WriteString(m.renderTaskLine(t, i == m.homeCursor, false))
		b.WriteByte('\n')
	}

	b.WriteString(s.section.Render("Yaklaşan Etkinlikler"))
	b.WriteByte('\n')
	reminders := m.stores.Notebook.Reminders()
	if len(reminders) == 0 {
		b.WriteString(s.muted.Render("Henüz etkinlik eklenmemiş"))
		b.WriteByte('\n')
	}
	soon := make(map[string]bool)
	for _, r := range m.stores.Notebook.Upcoming(m.now(), m.stores.Settings.ReminderLead()) {
		soon[r.ID] = true
	}
	for _, r := range reminders {
		line := fmt.Sprintf("  %s  %s  %s", r.Time, r.Title, s.muted.Render(r.Date))
		if soon[r.ID] {
			line = s.highlight.Render(fmt.Sprintf("• %s  %s  %s", r.Time, r.Title, r.Date)) + s.highlight.Render("  yakında")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString(s.section.Render("Notlar"))
	b.WriteByte('\n')
	notes := m.stores.Notebook.Notes()
	if len(notes) == 0 {
		b.WriteString(s.muted.Render("Henüz not eklenmemiş"))
		b.WriteByte('\n')
	}
	for _, n := range notes {
		b.WriteString("  " + s.text.Render(n.Title))
		b.WriteByte('\n')
	}

	return b.String()
}

func toggledStatus(title string, completed bool) string {
	if completed {
		return fmt.Sprintf("%q tamamlandı.", title)
	}
	return fmt.Sprintf("%q yeniden açıldı.", title)
}
