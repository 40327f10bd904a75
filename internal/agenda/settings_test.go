package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.Notifications)
	assert.False(t, s.DarkMode)
	assert.True(t, s.SoundEnabled)
	assert.True(t, s.AutoSync)
	assert.Equal(t, 15, s.ReminderTime)
	assert.Equal(t, 15*time.Minute, s.ReminderLead())
}

func TestSettingsToggleIsInvolution(t *testing.T) {
	for _, key := range ToggleKeys {
		s := DefaultSettings()
		before, err := s.Get(key)
		require.NoError(t, err)

		after, err := s.Toggle(key)
		require.NoError(t, err)
		assert.Equal(t, !before, after, key)

		after, err = s.Toggle(key)
		require.NoError(t, err)
		assert.Equal(t, before, after, key)
		assert.Equal(t, DefaultSettings(), s)
	}
}

func TestSettingsUnknownKey(t *testing.T) {
	s := DefaultSettings()
	_, err := s.Toggle("volume")
	assert.ErrorIs(t, err, ErrUnknownSetting)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSetReminderTime(t *testing.T) {
	s := DefaultSettings()

	require.NoError(t, s.SetReminderTime(30))
	assert.Equal(t, 30, s.ReminderTime)

	err := s.SetReminderTime(7)
	assert.ErrorIs(t, err, ErrInvalidReminderTime)
	assert.Equal(t, 30, s.ReminderTime)
}

func TestReminderTimeLabel(t *testing.T) {
	assert.Equal(t, "5 dakika", ReminderTimeLabel(5))
	assert.Equal(t, "1 saat", ReminderTimeLabel(60))
}

func TestSeedSamples(t *testing.T) {
	stores := NewStores(&SequenceSource{Prefix: "s"}, DefaultSettings())
	stores.SeedSamples()

	tasks := stores.Tasks.All()
	require.Len(t, tasks, 5)
	for _, task := range tasks {
		assert.Equal(t, task.Title == "E-posta yanıtla", task.Completed, task.Title)
	}

	notes := stores.Notebook.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, "Alışveriş listesi", notes[0].Title)
	assert.Len(t, stores.Notebook.Reminders(), 2)
	assert.Empty(t, stores.Calendar.Dates())
}
