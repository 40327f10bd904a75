package agenda

import "errors"

// ErrValidation marks rejected user input. Use errors.As with *ValidationError
// to recover the message shown to the user.
var ErrValidation = errors.New("validation failed")

// ErrNotFound is returned when the referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrInvalidReminderTime indicates a reminder lead time outside the offered choices.
var ErrInvalidReminderTime = errors.New("reminder time must be one of 5, 10, 15, 30, 60")

// ErrUnknownSetting is returned when toggling a key that is not a boolean preference.
var ErrUnknownSetting = errors.New("unknown setting")

// ValidationError carries the alert text for a rejected submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
