package agenda

import (
	"sort"
	"strings"
	"time"

	"github.com/faizmokh/ajanda/internal/logger"
)

const (
	// UntitledNote is the title given to notes whose first line is blank.
	UntitledNote = "Yeni Not"

	msgNoteEmpty        = "Not boş olamaz"
	msgReminderRequired = "Tüm alanları doldurun"
)

// Notebook holds the dashboard's notes and reminders. Both lists only grow.
type Notebook struct {
	ids       IDSource
	notes     []Note
	reminders []Reminder
}

// NewNotebook returns an empty notebook.
func NewNotebook(ids IDSource) *Notebook {
	if ids == nil {
		ids = UUIDSource{}
	}
	return &Notebook{ids: ids}
}

// AddNote stores content as a new note titled after its first line.
func (n *Notebook) AddNote(content string) (Note, error) {
	if strings.TrimSpace(content) == "" {
		err := &ValidationError{Field: "Content", Message: msgNoteEmpty}
		logger.Warn("note rejected", "error", err)
		return Note{}, err
	}

	note := Note{
		ID:      n.ids.NewID(),
		Title:   NoteTitle(content),
		Content: content,
	}
	n.notes = append(n.notes, note)
	logger.Debug("note added", "id", note.ID)
	return note, nil
}

// NoteTitle derives a note title from the first line of content.
func NoteTitle(content string) string {
	first, _, _ := strings.Cut(content, "\n")
	first = strings.TrimRight(first, "\r")
	if strings.TrimSpace(first) == "" {
		return UntitledNote
	}
	return first
}

// AddReminder stores a reminder. Title, date and time are all required.
func (n *Notebook) AddReminder(input ReminderInput) (Reminder, error) {
	input = trimFields(input)
	if err := checkRequired(input, msgReminderRequired); err != nil {
		logger.Warn("reminder rejected", "error", err)
		return Reminder{}, err
	}

	reminder := Reminder{
		ID:    n.ids.NewID(),
		Title: input.Title,
		Date:  input.Date,
		Time:  input.Time,
	}
	n.reminders = append(n.reminders, reminder)
	logger.Debug("reminder added", "id", reminder.ID)
	return reminder, nil
}

// Notes returns a copy of all notes.
func (n *Notebook) Notes() []Note {
	out := make([]Note, len(n.notes))
	copy(out, n.notes)
	return out
}

// Reminders returns a copy of all reminders.
func (n *Notebook) Reminders() []Reminder {
	out := make([]Reminder, len(n.reminders))
	copy(out, n.reminders)
	return out
}

// At resolves the reminder's date and time in loc.
func (r Reminder) At(loc *time.Location) (time.Time, bool) {
	day, ok := ParseDate(r.Date, loc)
	if !ok {
		return time.Time{}, false
	}
	clock, err := time.ParseInLocation("15:04", strings.TrimSpace(r.Time), loc)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), true
}

// Upcoming returns reminders due between now and now+lead, soonest first.
// Reminders whose date or time cannot be read are skipped.
func (n *Notebook) Upcoming(now time.Time, lead time.Duration) []Reminder {
	type due struct {
		at       time.Time
		reminder Reminder
	}

	var hits []due
	limit := now.Add(lead)
	for _, r := range n.reminders {
		at, ok := r.At(now.Location())
		if !ok || at.Before(now) || at.After(limit) {
			continue
		}
		hits = append(hits, due{at: at, reminder: r})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].at.Before(hits[j].at) })

	out := make([]Reminder, len(hits))
	for i, h := range hits {
		out[i] = h.reminder
	}
	return out
}
