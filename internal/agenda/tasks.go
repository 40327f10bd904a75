package agenda

import (
	"context"
	"errors"
	"strings"

	"github.com/faizmokh/ajanda/internal/logger"
	"github.com/faizmokh/ajanda/internal/prompt"
)

const (
	msgTaskTitleRequired = "Lütfen görev başlığını girin."
	msgTaskTitleEmpty    = "Görev boş olamaz"

	deleteTitle   = "Görevi Sil"
	deleteMessage = "Bu görevi silmek istediğinizden emin misiniz?"
	deleteYes     = "Sil"
	deleteNo      = "İptal"
)

// Tasks is the in-memory task list. Order is insertion order.
type Tasks struct {
	ids   IDSource
	items []Task
}

// NewTasks returns an empty task list drawing ids from ids, or UUIDv7 ids when nil.
func NewTasks(ids IDSource) *Tasks {
	if ids == nil {
		ids = UUIDSource{}
	}
	return &Tasks{ids: ids}
}

// All returns a copy of every task.
func (t *Tasks) All() []Task {
	out := make([]Task, len(t.items))
	copy(out, t.items)
	return out
}

// Len reports how many tasks exist.
func (t *Tasks) Len() int {
	return len(t.items)
}

// Get returns the task with the given id.
func (t *Tasks) Get(id string) (Task, bool) {
	if i := t.indexOf(id); i >= 0 {
		return t.items[i], true
	}
	return Task{}, false
}

// Add validates input and appends a new open task.
func (t *Tasks) Add(input TaskInput) (Task, error) {
	input = trimFields(input)
	if err := checkRequired(input, msgTaskTitleRequired); err != nil {
		logger.Warn("task rejected", "error", err)
		return Task{}, err
	}

	task := Task{
		ID:          t.ids.NewID(),
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Time:        input.Time,
	}
	t.items = append(t.items, task)
	logger.Debug("task added", "id", task.ID)
	return task, nil
}

// Toggle flips the completion flag. It reports false when id is unknown.
func (t *Tasks) Toggle(id string) (Task, bool) {
	i := t.indexOf(id)
	if i < 0 {
		return Task{}, false
	}
	t.items[i].Completed = !t.items[i].Completed
	logger.Debug("task toggled", "id", id, "completed", t.items[i].Completed)
	return t.items[i], true
}

// EditTitle renames a task. Blank titles are rejected.
func (t *Tasks) EditTitle(id, title string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		err := &ValidationError{Field: "Title", Message: msgTaskTitleEmpty}
		logger.Warn("task edit rejected", "id", id, "error", err)
		return Task{}, err
	}
	i := t.indexOf(id)
	if i < 0 {
		return Task{}, ErrNotFound
	}
	t.items[i].Title = title
	logger.Debug("task renamed", "id", id)
	return t.items[i], nil
}

// Delete asks for confirmation through c and removes the task when the user
// agrees. It reports whether the task was removed.
func (t *Tasks) Delete(ctx context.Context, c prompt.Chooser, id string) (bool, error) {
	if t.indexOf(id) < 0 {
		return false, ErrNotFound
	}
	picked, err := c.Choose(ctx, DeleteChoice())
	if err != nil {
		if errors.Is(err, prompt.ErrNoChoice) {
			return false, nil
		}
		return false, err
	}
	if picked.Cancel {
		return false, nil
	}
	return t.Remove(id), nil
}

// Remove deletes the task without asking. Callers are expected to have
// collected confirmation already.
func (t *Tasks) Remove(id string) bool {
	i := t.indexOf(id)
	if i < 0 {
		return false
	}
	t.items = append(t.items[:i], t.items[i+1:]...)
	logger.Debug("task deleted", "id", id)
	return true
}

// DeleteChoice is the confirmation shown before a task is removed.
func DeleteChoice() prompt.Choice {
	return prompt.Choice{
		Title:   deleteTitle,
		Message: deleteMessage,
		Options: []prompt.Option{{Label: deleteNo, Cancel: true}, {Label: deleteYes}},
	}
}

func (t *Tasks) indexOf(id string) int {
	for i := range t.items {
		if t.items[i].ID == id {
			return i
		}
	}
	return -1
}
