package agenda

import (
	"strings"
	"time"
)

// DateFilter narrows tasks by their date relative to today.
type DateFilter string

const (
	DateAll   DateFilter = "all"
	DateToday DateFilter = "today"
	DateWeek  DateFilter = "week"
	DateMonth DateFilter = "month"
	DateYear  DateFilter = "year"
)

// DateFilters lists the filters in the order the UI offers them.
var DateFilters = []DateFilter{DateAll, DateToday, DateWeek, DateMonth, DateYear}

// Label returns the display name of the filter.
func (f DateFilter) Label() string {
	switch f {
	case DateToday:
		return "Bugün"
	case DateWeek:
		return "Bu Hafta"
	case DateMonth:
		return "Bu Ay"
	case DateYear:
		return "Bu Yıl"
	default:
		return "Tümü"
	}
}

// Filter controls which tasks the list shows.
type Filter struct {
	ShowCompleted bool
	Date          DateFilter
}

// DefaultFilter shows everything.
func DefaultFilter() Filter {
	return Filter{ShowCompleted: true, Date: DateAll}
}

// dateLayouts are the task date formats Filter understands.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02.01.2006",
	"2006/01/02",
}

// ParseDate reads a user-typed date in any supported layout, in loc.
func ParseDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, value, loc); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// Apply returns the tasks that pass f, evaluated against now. The input slice
// is not modified.
func (f Filter) Apply(tasks []Task, now time.Time) []Task {
	today := startOfDay(now)
	weekEnd := today.AddDate(0, 0, 7)

	out := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if !f.ShowCompleted && task.Completed {
			continue
		}
		if f.Date == "" || f.Date == DateAll {
			out = append(out, task)
			continue
		}

		date, ok := ParseDate(task.Date, now.Location())
		if !ok {
			continue
		}
		date = startOfDay(date)

		var keep bool
		switch f.Date {
		case DateToday:
			keep = date.Equal(today)
		case DateWeek:
			keep = !date.Before(today) && !date.After(weekEnd)
		case DateMonth:
			keep = date.Year() == today.Year() && date.Month() == today.Month()
		case DateYear:
			keep = date.Year() == today.Year()
		}
		if keep {
			out = append(out, task)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
