package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/ajanda/internal/agenda"
	"github.com/faizmokh/ajanda/internal/logger"
	"github.com/faizmokh/ajanda/internal/pomodoro"
)

type tab uint8

const (
	tabHome tab = iota
	tabCalendar
	tabTasks
	tabPomodoro
	tabSettings
	tabCount
)

var tabTitles = [tabCount]string{"Ana Sayfa", "Takvim", "Görevler", "Pomodoro", "Ayarlar"}

// dateLayout is how the calendar keys its buckets and how new reminders are
// prefilled.
const dateLayout = "2006-01-02"

// Options wires the model's collaborators. Zero values pick production
// defaults.
type Options struct {
	Stores    *agenda.Stores
	Scheduler pomodoro.Scheduler
	Now       func() time.Time
	// Bell receives the terminal bell when a countdown finishes and sound is on.
	Bell io.Writer
}

// Model owns Bubble Tea state for the whole app. Stores and the timer engine
// are shared pointers; everything else is copied with the model.
type Model struct {
	ctx    context.Context
	stores *agenda.Stores
	engine *pomodoro.Engine
	ticks  chan pomodoro.Snapshot
	done   chan pomodoro.Proposal
	now    func() time.Time
	bell   io.Writer

	keys   KeyMap
	help   help.Model
	styles styles
	width  int

	active tab
	dialog *dialog

	homeCursor     int
	taskCursor     int
	filter         agenda.Filter
	calendarDate   time.Time
	settingsCursor int
	proposal       *pomodoro.Proposal

	statusLine string
	errorLine  string
	quitting   bool
}

type timerTickMsg struct {
	snapshot pomodoro.Snapshot
}

type timerDoneMsg struct {
	proposal pomodoro.Proposal
}

// NewModel builds the app model around the given stores.
func NewModel(ctx context.Context, opts Options) Model {
	if opts.Stores == nil {
		opts.Stores = agenda.NewStores(nil, agenda.DefaultSettings())
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Bell == nil {
		opts.Bell = os.Stderr
	}

	ticks := make(chan pomodoro.Snapshot, 1)
	done := make(chan pomodoro.Proposal, 1)
	engineOpts := []pomodoro.Option{
		pomodoro.OnTick(func(s pomodoro.Snapshot) {
			// Ticks only refresh the clock; dropping one when the UI lags
			// is harmless because View reads the engine directly.
			select {
			case ticks <- s:
			default:
			}
		}),
		pomodoro.OnComplete(func(p pomodoro.Proposal) {
			select {
			case done <- p:
			case <-ctx.Done():
			}
		}),
	}
	if opts.Scheduler != nil {
		engineOpts = append(engineOpts, pomodoro.WithScheduler(opts.Scheduler))
	}

	st := newStyles(opts.Stores.Settings.DarkMode)
	h := help.New()

	return Model{
		ctx:          ctx,
		stores:       opts.Stores,
		engine:       pomodoro.New(engineOpts...),
		ticks:        ticks,
		done:         done,
		now:          opts.Now,
		bell:         opts.Bell,
		keys:         DefaultKeyMap(),
		help:         h,
		styles:       st,
		filter:       agenda.DefaultFilter(),
		calendarDate: startOfDay(opts.Now()),
		statusLine:   "Hoş Geldiniz",
	}
}

// Close stops the pomodoro tick source. Safe to call more than once.
func (m Model) Close() {
	m.engine.Close()
}

// Init starts listening for timer events.
func (m Model) Init() tea.Cmd {
	m.stores.Calendar.Select(m.calendarDate.Format(dateLayout))
	return m.waitForTimer()
}

// waitForTimer blocks until the engine reports a tick or a completion.
func (m Model) waitForTimer() tea.Cmd {
	ticks, done := m.ticks, m.done
	return func() tea.Msg {
		select {
		case s := <-ticks:
			return timerTickMsg{snapshot: s}
		case p := <-done:
			return timerDoneMsg{proposal: p}
		}
	}
}

// Update routes messages to the open dialog or the active tab.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case timerTickMsg:
		return m, m.waitForTimer()
	case timerDoneMsg:
		next, cmd := m.handleTimerDone(msg.proposal)
		return next, tea.Batch(cmd, m.waitForTimer())
	}

	if m.dialog != nil {
		return m.updateDialog(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	return m.handleKey(keyMsg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.engine.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab((m.active + 1) % tabCount), nil
	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab((m.active + tabCount - 1) % tabCount), nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.active {
	case tabHome:
		return m.handleHomeKey(msg)
	case tabCalendar:
		return m.handleCalendarKey(msg)
	case tabTasks:
		return m.handleTasksKey(msg)
	case tabPomodoro:
		return m.handlePomodoroKey(msg)
	case tabSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

func (m Model) switchTab(t tab) Model {
	m.active = t
	m.statusLine = tabTitles[t]
	m.errorLine = ""
	return m
}

func (m Model) openDialog(d *dialog) (tea.Model, tea.Cmd) {
	m.dialog = d
	m.errorLine = ""
	return m, d.form.Init()
}

func (m Model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return m.dismissDialog()
		case tea.KeyCtrlC:
			m.quitting = true
			m.engine.Close()
			return m, tea.Quit
		}
	}

	form, cmd := m.dialog.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.dialog.form = f
	}

	switch m.dialog.form.State {
	case huh.StateCompleted:
		next, submitCmd := m.submitDialog()
		return next, tea.Batch(cmd, submitCmd)
	case huh.StateAborted:
		return m.dismissDialog()
	}
	return m, cmd
}

// dismissDialog closes the modal and discards whatever was typed into it.
func (m Model) dismissDialog() (tea.Model, tea.Cmd) {
	if m.dialog != nil && m.dialog.kind == dialogProposal {
		m.statusLine = "Öneri ertelendi."
	} else {
		m.statusLine = "Vazgeçildi."
	}
	m.dialog = nil
	m.errorLine = ""
	return m, nil
}

// submitDialog applies a completed dialog. Validation failures reopen the
// same dialog with the input intact and the message shown above it.
func (m Model) submitDialog() (tea.Model, tea.Cmd) {
	d := m.dialog
	v := d.values

	var err error
	switch d.kind {
	case dialogAddTask:
		_, err = m.stores.Tasks.Add(agenda.TaskInput{
			Title:       v.Title,
			Description: v.Description,
			Date:        v.Date,
			Time:        v.Time,
		})
		if err == nil {
			m.statusLine = "Görev eklendi."
			m.taskCursor = m.visibleTaskCount() - 1
		}
	case dialogEditTask:
		_, err = m.stores.Tasks.EditTitle(d.targetID, v.Title)
		if err == nil {
			m.statusLine = "Görev güncellendi."
		}
	case dialogDeleteTask:
		if opt, ok := d.picked(); ok && !opt.Cancel {
			if m.stores.Tasks.Remove(d.targetID) {
				m.statusLine = "Görev silindi."
			}
		} else {
			m.statusLine = "Silme iptal edildi."
		}
	case dialogFilter:
		m.filter = agenda.Filter{ShowCompleted: v.ShowCompleted, Date: v.DateFilter}
		m.statusLine = fmt.Sprintf("Filtre: %s", m.filter.Date.Label())
	case dialogAddEvent:
		_, err = m.stores.Calendar.AddEvent(m.calendarDate.Format(dateLayout), agenda.EventInput{
			Title:       v.Title,
			Time:        v.Time,
			Description: v.Description,
		})
		if err == nil {
			m.statusLine = "Etkinlik eklendi."
		}
	case dialogAddNote:
		_, err = m.stores.Notebook.AddNote(v.Content)
		if err == nil {
			m.statusLine = "Not kaydedildi."
		}
	case dialogAddReminder:
		_, err = m.stores.Notebook.AddReminder(agenda.ReminderInput{
			Title: v.Title,
			Date:  v.Date,
			Time:  v.Time,
		})
		if err == nil {
			m.statusLine = "Hatırlatıcı kaydedildi."
		}
	case dialogReminderTime:
		err = m.stores.Settings.SetReminderTime(v.ReminderTime)
		if err == nil {
			m.statusLine = fmt.Sprintf("Hatırlatıcı zamanı: %s", agenda.ReminderTimeLabel(v.ReminderTime))
		}
	case dialogProposal:
		if opt, ok := d.picked(); ok && !opt.Cancel {
			m.acceptProposal(d.proposal)
		} else {
			m.statusLine = "Öneri ertelendi."
		}
		m.proposal = nil
	case dialogAlert:
	}

	if err != nil {
		var verr *agenda.ValidationError
		if !errors.As(err, &verr) {
			logger.Error("dialog submit failed", "error", err)
		}
		d.err = err.Error()
		d.rebuild(m.styles.formTheme())
		m.errorLine = d.err
		return m, d.form.Init()
	}

	m.dialog = nil
	m.errorLine = ""
	m.clampCursors()
	return m, nil
}

func (m *Model) clampCursors() {
	m.taskCursor = clamp(m.taskCursor, m.visibleTaskCount())
	m.homeCursor = clamp(m.homeCursor, m.stores.Tasks.Len())
}

func clamp(cursor, length int) int {
	if cursor >= length {
		cursor = length - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// View renders the frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("Akıllı Ajanda"))
	b.WriteByte('\n')
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.dialog != nil {
		b.WriteString(m.renderDialog())
	} else {
		switch m.active {
		case tabHome:
			b.WriteString(m.viewHome())
		case tabCalendar:
			b.WriteString(m.viewCalendar())
		case tabTasks:
			b.WriteString(m.viewTasks())
		case tabPomodoro:
			b.WriteString(m.viewPomodoro())
		case tabSettings:
			b.WriteString(m.viewSettings())
		}
	}

	b.WriteByte('\n')
	if m.errorLine != "" {
		b.WriteString(m.styles.errorLine.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString(m.styles.status.Render(m.statusLine))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.help.View(m.currentKeys()))
	b.WriteByte('\n')
	return b.String()
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for i, title := range tabTitles {
		if tab(i) == m.active {
			parts = append(parts, m.styles.activeTab.Render(title))
		} else {
			parts = append(parts, m.styles.tab.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderDialog() string {
	var b strings.Builder
	if m.dialog.title != "" && m.dialog.kind != dialogAlert && m.dialog.kind != dialogProposal && m.dialog.kind != dialogDeleteTask {
		b.WriteString(m.styles.section.Render(m.dialog.title))
		b.WriteByte('\n')
	}
	if m.dialog.err != "" {
		b.WriteString(m.styles.dialogError.Render("Hata: " + m.dialog.err))
		b.WriteByte('\n')
	}
	b.WriteString(m.dialog.form.View())
	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render("esc: vazgeç"))
	return m.styles.dialog.Render(b.String())
}

func (m Model) currentKeys() help.KeyMap {
	k := m.keys
	switch m.active {
	case tabHome:
		return tabKeys{global: k, bindings: []key.Binding{k.Up, k.Down, k.Toggle, k.Add, k.AddNote, k.AddReminder}}
	case tabCalendar:
		return tabKeys{global: k, bindings: []key.Binding{k.Left, k.Right, k.Up, k.Down, k.PrevMonth, k.NextMonth, k.Today, k.Add}}
	case tabTasks:
		return tabKeys{global: k, bindings: []key.Binding{k.Up, k.Down, k.Toggle, k.Add, k.Edit, k.Delete, k.Filter, k.ShowCompleted}}
	case tabPomodoro:
		bindings := []key.Binding{k.Toggle, k.Reset, k.Work, k.Short, k.Long}
		if m.proposal != nil {
			bindings = append(bindings, k.Accept, k.Decline)
		}
		return tabKeys{global: k, bindings: bindings}
	case tabSettings:
		return tabKeys{global: k, bindings: []key.Binding{k.Up, k.Down, k.Enter}}
	}
	return k
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
