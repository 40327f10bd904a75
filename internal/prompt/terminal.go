package prompt

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
)

// Terminal asks questions on the controlling terminal using huh forms.
type Terminal struct {
	Theme *huh.Theme
}

// NewTerminal returns a Terminal prompter using the given theme, or the base
// theme when nil.
func NewTerminal(theme *huh.Theme) *Terminal {
	if theme == nil {
		theme = huh.ThemeBase()
	}
	return &Terminal{Theme: theme}
}

// Choose renders the options as a select list.
func (t *Terminal) Choose(ctx context.Context, choice Choice) (Option, error) {
	if len(choice.Options) == 0 {
		return Option{}, ErrNoChoice
	}

	opts := make([]huh.Option[int], 0, len(choice.Options))
	for i, opt := range choice.Options {
		opts = append(opts, huh.NewOption(opt.Label, i))
	}

	selected := choice.CancelIndex()
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(choice.Title).
				Description(choice.Message).
				Options(opts...).
				Value(&selected),
		),
	).WithTheme(t.Theme)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return Option{}, ErrNoChoice
		}
		return Option{}, err
	}
	return choice.Options[selected], nil
}

// Alert shows the message and waits for acknowledgement.
func (t *Terminal) Alert(ctx context.Context, title, message string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(title).
				Description(message).
				Next(true).
				NextLabel("Tamam"),
		),
	).WithTheme(t.Theme)

	if err := form.RunWithContext(ctx); err != nil && !errors.Is(err, huh.ErrUserAborted) {
		return err
	}
	return nil
}
