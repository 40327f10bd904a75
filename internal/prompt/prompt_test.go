package prompt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCancelIndex(t *testing.T) {
	assert.Equal(t, 0, yesNo.CancelIndex())

	later := Choice{Options: []Option{{Label: "Kısa Mola"}, {Label: "Daha Sonra", Cancel: true}}}
	assert.Equal(t, 1, later.CancelIndex())

	plain := Choice{Options: []Option{{Label: "Tamam"}, {Label: "Sil"}}}
	assert.Equal(t, 0, plain.CancelIndex())
}

func TestTerminalChooseWithoutOptions(t *testing.T) {
	_, err := NewTerminal(nil).Choose(context.Background(), Choice{Title: "Boş"})
	assert.ErrorIs(t, err, ErrNoChoice)
}
