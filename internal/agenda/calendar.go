package agenda

import (
	"sort"
	"strings"

	"github.com/faizmokh/ajanda/internal/logger"
)

const msgEventRequired = "Lütfen başlık ve saat alanlarını doldurun."

// Calendar maps a date string to the events planned on that day and keeps the
// date the user is looking at.
type Calendar struct {
	ids      IDSource
	selected string
	buckets  map[string][]Event
}

// NewCalendar returns an empty calendar.
func NewCalendar(ids IDSource) *Calendar {
	if ids == nil {
		ids = UUIDSource{}
	}
	return &Calendar{ids: ids, buckets: make(map[string][]Event)}
}

// Select moves the cursor to date.
func (c *Calendar) Select(date string) {
	c.selected = strings.TrimSpace(date)
}

// Selected returns the active date, or "" when nothing was picked yet.
func (c *Calendar) Selected() string {
	return c.selected
}

// AddEvent appends an event to the bucket for date, trimmed the same way
// Select trims it. Title and time are required; on failure the calendar is
// unchanged.
func (c *Calendar) AddEvent(date string, input EventInput) (Event, error) {
	date = strings.TrimSpace(date)
	input = trimFields(input)
	if err := checkRequired(input, msgEventRequired); err != nil {
		logger.Warn("event rejected", "date", date, "error", err)
		return Event{}, err
	}

	event := Event{
		ID:          c.ids.NewID(),
		Title:       input.Title,
		Time:        input.Time,
		Description: input.Description,
	}
	c.buckets[date] = append(c.buckets[date], event)
	logger.Debug("event added", "date", date, "id", event.ID)
	return event, nil
}

// EventsFor returns the events on date in insertion order.
func (c *Calendar) EventsFor(date string) []Event {
	bucket := c.buckets[strings.TrimSpace(date)]
	out := make([]Event, len(bucket))
	copy(out, bucket)
	return out
}

// HasEvents reports whether any event exists on date.
func (c *Calendar) HasEvents(date string) bool {
	return len(c.buckets[strings.TrimSpace(date)]) > 0
}

// Dates lists every date holding at least one event, sorted.
func (c *Calendar) Dates() []string {
	dates := make([]string, 0, len(c.buckets))
	for date, bucket := range c.buckets {
		if len(bucket) > 0 {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates
}
