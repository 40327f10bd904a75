package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteTitleIsFirstLine(t *testing.T) {
	assert.Equal(t, "Alışveriş", NoteTitle("Alışveriş\nSüt"))
	assert.Equal(t, "tek satır", NoteTitle("tek satır"))
	assert.Equal(t, "Windows", NoteTitle("Windows\r\nsatır"))
	assert.Equal(t, UntitledNote, NoteTitle("\nikinci satır"))
	assert.Equal(t, UntitledNote, NoteTitle("   \nikinci satır"))
}

func TestAddNote(t *testing.T) {
	nb := NewNotebook(&SequenceSource{Prefix: "n"})

	note, err := nb.AddNote("Plan\n- madde")
	require.NoError(t, err)
	assert.Equal(t, "Plan", note.Title)
	assert.Equal(t, "Plan\n- madde", note.Content)

	_, err = nb.AddNote(" \n ")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Not boş olamaz", verr.Message)
	assert.Len(t, nb.Notes(), 1)
}

func TestAddReminderRequiresAllFields(t *testing.T) {
	nb := NewNotebook(nil)

	for _, input := range []ReminderInput{
		{Date: "2024-05-01", Time: "09:00"},
		{Title: "x", Time: "09:00"},
		{Title: "x", Date: "2024-05-01"},
	} {
		_, err := nb.AddReminder(input)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Tüm alanları doldurun", verr.Message)
	}
	assert.Empty(t, nb.Reminders())

	r, err := nb.AddReminder(ReminderInput{Title: "Doktor", Date: "2024-05-01", Time: "09:00"})
	require.NoError(t, err)
	assert.Equal(t, "Doktor", r.Title)
	assert.Len(t, nb.Reminders(), 1)
}

func TestUpcomingReminders(t *testing.T) {
	nb := NewNotebook(nil)
	now := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)

	_, _ = nb.AddReminder(ReminderInput{Title: "later", Date: "2024-05-01", Time: "09:14"})
	_, _ = nb.AddReminder(ReminderInput{Title: "soon", Date: "01.05.2024", Time: "09:05"})
	_, _ = nb.AddReminder(ReminderInput{Title: "too-late", Date: "2024-05-01", Time: "09:30"})
	_, _ = nb.AddReminder(ReminderInput{Title: "past", Date: "2024-05-01", Time: "08:59"})
	_, _ = nb.AddReminder(ReminderInput{Title: "bad", Date: "2024-05-01", Time: "sabah"})

	got := nb.Upcoming(now, 15*time.Minute)
	require.Len(t, got, 2)
	assert.Equal(t, "soon", got[0].Title)
	assert.Equal(t, "later", got[1].Title)
}
