// Package prompt models the confirmation and alert capability the stores use to
// ask the user something. The caller gets back the option that was picked and
// decides what to do with it; the widget that collected the answer stays out of
// the decision.
package prompt

import (
	"context"
	"errors"
)

// ErrNoChoice is returned when the prompt was dismissed without picking an option.
var ErrNoChoice = errors.New("no option chosen")

// Option is one selectable answer.
type Option struct {
	Label string
	// Cancel marks the option that leaves everything untouched.
	Cancel bool
}

// Choice describes a question with a closed set of answers.
type Choice struct {
	Title   string
	Message string
	Options []Option
}

// CancelIndex returns the position of the option that leaves everything
// untouched, or 0 when none is marked. Prompts start on it so a stray enter
// never destroys anything.
func (c Choice) CancelIndex() int {
	for i, opt := range c.Options {
		if opt.Cancel {
			return i
		}
	}
	return 0
}

// Chooser presents a Choice and returns the selected option.
type Chooser interface {
	Choose(ctx context.Context, choice Choice) (Option, error)
}

// Alerter shows a message that only needs acknowledging.
type Alerter interface {
	Alert(ctx context.Context, title, message string) error
}

// Prompter is the full interaction capability.
type Prompter interface {
	Chooser
	Alerter
}
