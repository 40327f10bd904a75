package prompt

import (
	"context"
	"fmt"
	"sync"
)

// Scripted answers choices from a queue of labels and records every prompt it
// was shown. An empty queue dismisses the prompt.
type Scripted struct {
	mu      sync.Mutex
	answers []string
	Choices []Choice
	Alerts  []string
}

// NewScripted returns a Scripted prompter that will answer with labels in order.
func NewScripted(labels ...string) *Scripted {
	return &Scripted{answers: labels}
}

// Choose pops the next scripted label and returns the matching option.
func (s *Scripted) Choose(_ context.Context, choice Choice) (Option, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Choices = append(s.Choices, choice)
	if len(s.answers) == 0 {
		return Option{}, ErrNoChoice
	}
	label := s.answers[0]
	s.answers = s.answers[1:]

	for _, opt := range choice.Options {
		if opt.Label == label {
			return opt, nil
		}
	}
	return Option{}, fmt.Errorf("scripted answer %q not among options", label)
}

// Alert records the message.
func (s *Scripted) Alert(_ context.Context, title, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Alerts = append(s.Alerts, title+": "+message)
	return nil
}
