package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	monthNames = [...]string{"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran", "Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık"}
	weekHeader = "Pt Sa Ça Pe Cu Ct Pz"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		return m.moveCalendar(m.calendarDate.AddDate(0, 0, -1)), nil
	case key.Matches(msg, m.keys.Right):
		return m.moveCalendar(m.calendarDate.AddDate(0, 0, 1)), nil
	case key.Matches(msg, m.keys.Up):
		return m.moveCalendar(m.calendarDate.AddDate(0, 0, -7)), nil
	case key.Matches(msg, m.keys.Down):
		return m.moveCalendar(m.calendarDate.AddDate(0, 0, 7)), nil
	case key.Matches(msg, m.keys.PrevMonth):
		return m.moveCalendar(m.calendarDate.AddDate(0, -1, 0)), nil
	case key.Matches(msg, m.keys.NextMonth):
		return m.moveCalendar(m.calendarDate.AddDate(0, 1, 0)), nil
	case key.Matches(msg, m.keys.Today):
		return m.moveCalendar(startOfDay(m.now())), nil
	case key.Matches(msg, m.keys.Add), key.Matches(msg, m.keys.Enter):
		title := "Yeni Etkinlik · " + m.calendarDate.Format("02.01.2006")
		return m.openDialog(newDialog(dialogAddEvent, title, nil, m.styles.formTheme()))
	}
	return m, nil
}

func (m Model) moveCalendar(date time.Time) Model {
	m.calendarDate = date
	m.stores.Calendar.Select(date.Format(dateLayout))
	m.statusLine = date.Format("02.01.2006")
	m.errorLine = ""
	return m
}

func (m Model) viewCalendar() string {
	var b strings.Builder
	s := m.styles
	sel := m.calendarDate

	b.WriteString(s.section.Render(fmt.Sprintf("%s %d", monthNames[sel.Month()-1], sel.Year())))
	b.WriteByte('\n')
	b.WriteString(s.muted.Render(weekHeader))
	b.WriteByte('\n')

	first := time.Date(sel.Year(), sel.Month(), 1, 0, 0, 0, 0, sel.Location())
	// Weeks start on Monday.
	offset := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("   ", offset))

	marked := make(map[string]bool)
	for _, date := range m.stores.Calendar.Dates() {
		marked[date] = true
	}

	today := startOfDay(m.now())
	days := first.AddDate(0, 1, -1).Day()
	for day := 1; day <= days; day++ {
		date := time.Date(sel.Year(), sel.Month(), day, 0, 0, 0, 0, sel.Location())
		cell := fmt.Sprintf("%2d", day)
		switch {
		case day == sel.Day():
			cell = s.cursor.Reverse(true).Render(cell)
		case marked[date.Format(dateLayout)]:
			cell = s.marked.Render(cell)
		case date.Equal(today):
			cell = s.today.Render(cell)
		}
		b.WriteString(cell)
		if (offset+day)%7 == 0 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteString("\n")

	bucket := sel.Format(dateLayout)
	b.WriteString(s.section.Render(sel.Format("02.01.2006") + " etkinlikleri"))
	b.WriteByte('\n')
	events := m.stores.Calendar.EventsFor(bucket)
	if len(events) == 0 {
		b.WriteString(s.muted.Render("Bu tarihte etkinlik bulunmuyor"))
		b.WriteByte('\n')
		return b.String()
	}
	for _, e := range events {
		b.WriteString(s.selected.Render(e.Time) + "  " + s.text.Render(e.Title))
		if e.Description != "" {
			b.WriteString("\n       " + s.muted.Render(e.Description))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
