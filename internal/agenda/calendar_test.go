package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarAddKeepsInsertionOrder(t *testing.T) {
	cal := NewCalendar(&SequenceSource{Prefix: "e"})

	first, err := cal.AddEvent("2024-05-01", EventInput{Title: "Toplantı", Time: "10:00"})
	require.NoError(t, err)
	second, err := cal.AddEvent("2024-05-01", EventInput{Title: "Öğle", Time: "09:00", Description: "erken"})
	require.NoError(t, err)

	events := cal.EventsFor("2024-05-01")
	require.Len(t, events, 2)
	assert.Equal(t, first.ID, events[0].ID)
	assert.Equal(t, second.ID, events[1].ID)
	assert.Equal(t, "erken", events[1].Description)
	assert.True(t, cal.HasEvents("2024-05-01"))
}

func TestCalendarRejectsMissingFields(t *testing.T) {
	cal := NewCalendar(nil)

	for _, input := range []EventInput{
		{Title: "", Time: "10:00"},
		{Title: "Toplantı", Time: "  "},
	} {
		_, err := cal.AddEvent("2024-05-01", input)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Lütfen başlık ve saat alanlarını doldurun.", verr.Message)
	}

	assert.False(t, cal.HasEvents("2024-05-01"))
	assert.Empty(t, cal.Dates())
}

func TestCalendarDatesAreIsolated(t *testing.T) {
	cal := NewCalendar(nil)
	_, _ = cal.AddEvent("2024-05-02", EventInput{Title: "b", Time: "08:00"})
	_, _ = cal.AddEvent("2024-05-01", EventInput{Title: "a", Time: "08:00"})

	assert.Len(t, cal.EventsFor("2024-05-01"), 1)
	assert.Len(t, cal.EventsFor("2024-05-02"), 1)
	assert.Empty(t, cal.EventsFor("2024-05-03"))
	assert.Equal(t, []string{"2024-05-01", "2024-05-02"}, cal.Dates())
}

func TestCalendarSelect(t *testing.T) {
	cal := NewCalendar(nil)
	assert.Equal(t, "", cal.Selected())

	cal.Select(" 2024-05-01 ")
	assert.Equal(t, "2024-05-01", cal.Selected())
}

func TestCalendarTrimsDateKeys(t *testing.T) {
	cal := NewCalendar(&SequenceSource{Prefix: "e"})
	cal.Select(" 2024-05-01 ")

	_, err := cal.AddEvent(" 2024-05-01\n", EventInput{Title: "Toplantı", Time: "10:00"})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-05-01"}, cal.Dates())
	assert.True(t, cal.HasEvents(cal.Selected()))
	assert.Len(t, cal.EventsFor(cal.Selected()), 1)
	assert.Len(t, cal.EventsFor("2024-05-01 "), 1)
}
