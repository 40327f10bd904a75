package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/ajanda/internal/agenda"
)

func (m Model) visibleTasks() []agenda.Task {
	return m.filter.Apply(m.stores.Tasks.All(), m.now())
}

func (m Model) visibleTaskCount() int {
	return len(m.visibleTasks())
}

func (m Model) selectedTask() (agenda.Task, bool) {
	tasks := m.visibleTasks()
	if m.taskCursor < 0 || m.taskCursor >= len(tasks) {
		return agenda.Task{}, false
	}
	return tasks[m.taskCursor], true
}

func (m Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	theme := m.styles.formTheme()

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.taskCursor < m.visibleTaskCount()-1 {
			m.taskCursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.taskCursor > 0 {
			m.taskCursor--
		}
	case key.Matches(msg, m.keys.Toggle):
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		if updated, ok := m.stores.Tasks.Toggle(task.ID); ok {
			m.statusLine = toggledStatus(updated.Title, updated.Completed)
		}
		m.clampCursors()
	case key.Matches(msg, m.keys.Add):
		return m.openDialog(newDialog(dialogAddTask, "Yeni Görev", nil, theme))
	case key.Matches(msg, m.keys.Edit):
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		d := newDialog(dialogEditTask, "Görevi Düzenle", &formValues{Title: task.Title}, theme)
		d.targetID = task.ID
		return m.openDialog(d)
	case key.Matches(msg, m.keys.Delete):
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		d := newChoiceDialog(dialogDeleteTask, agenda.DeleteChoice(), theme)
		d.targetID = task.ID
		return m.openDialog(d)
	case key.Matches(msg, m.keys.Filter):
		values := &formValues{ShowCompleted: m.filter.ShowCompleted, DateFilter: m.filter.Date}
		return m.openDialog(newDialog(dialogFilter, "Filtreler", values, theme))
	case key.Matches(msg, m.keys.ShowCompleted):
		m.filter.ShowCompleted = !m.filter.ShowCompleted
		if m.filter.ShowCompleted {
			m.statusLine = "Tamamlanan görevler gösteriliyor."
		} else {
			m.statusLine = "Tamamlanan görevler gizlendi."
		}
		m.clampCursors()
	}
	return m, nil
}

func (m Model) viewTasks() string {
	var b strings.Builder
	s := m.styles

	header := "Görevler · " + m.filter.Date.Label()
	if !m.filter.ShowCompleted {
		header += " · tamamlananlar gizli"
	}
	b.WriteString(s.section.Render(header))
	b.WriteByte('\n')

	tasks := m.visibleTasks()
	if len(tasks) == 0 {
		b.WriteString(s.muted.Render("Görev bulunamadı"))
		b.WriteByte('\n')
		return b.String()
	}
	for i, t := range tasks {
		b.WriteString(m.renderTaskLine(t, i == m.taskCursor, true))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) renderTaskLine(t agenda.Task, selected, details bool) string {
	s := m.styles

	cursor := "  "
	if selected {
		cursor = s.cursor.Render("> ")
	}
	box := "[ ] "
	title := s.text.Render(t.Title)
	if t.Completed {
		box = "[x] "
		title = s.done.Render(t.Title)
	}

	line := cursor + box + title
	if !details {
		return line
	}
	if t.Date != "" || t.Time != "" {
		line += "  " + s.muted.Render(strings.TrimSpace(t.Date+" "+t.Time))
	}
	if t.Description != "" {
		line += "\n      " + s.muted.Render(t.Description)
	}
	return line
}
