package agenda

// Task is a single to-do item on the task list.
type Task struct {
	ID          string
	Title       string
	Description string
	// Date and Time are free text as typed by the user; Filter parses Date
	// leniently and ignores values it cannot read.
	Date      string
	Time      string
	Completed bool
}

// Event is a calendar entry stored under a date key.
type Event struct {
	ID          string
	Title       string
	Time        string
	Description string
}

// Note is a dashboard note. Title is derived from the first line of Content.
type Note struct {
	ID      string
	Title   string
	Content string
}

// Reminder is a dashboard reminder with a date and time of day.
type Reminder struct {
	ID    string
	Title string
	Date  string
	Time  string
}

// TaskInput is the submission of the task creation form.
type TaskInput struct {
	Title       string `validate:"required"`
	Description string
	Date        string
	Time        string
}

// EventInput is the submission of the calendar event form.
type EventInput struct {
	Title       string `validate:"required"`
	Time        string `validate:"required"`
	Description string
}

// ReminderInput is the submission of the reminder form.
type ReminderInput struct {
	Title string `validate:"required"`
	Date  string `validate:"required"`
	Time  string `validate:"required"`
}
