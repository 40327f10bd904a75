package prompt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var yesNo = Choice{
	Title:   "Soru",
	Message: "Devam?",
	Options: []Option{{Label: "Hayır", Cancel: true}, {Label: "Evet"}},
}

func TestScriptedAnswersInOrder(t *testing.T) {
	s := NewScripted("Evet", "Hayır")

	got, err := s.Choose(context.Background(), yesNo)
	require.NoError(t, err)
	assert.Equal(t, "Evet", got.Label)
	assert.False(t, got.Cancel)

	got, err = s.Choose(context.Background(), yesNo)
	require.NoError(t, err)
	assert.True(t, got.Cancel)

	_, err = s.Choose(context.Background(), yesNo)
	assert.ErrorIs(t, err, ErrNoChoice)
	assert.Len(t, s.Choices, 3)
}

func TestScriptedUnknownLabel(t *testing.T) {
	s := NewScripted("Belki")
	_, err := s.Choose(context.Background(), yesNo)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoChoice)
}

func TestScriptedRecordsAlerts(t *testing.T) {
	s := NewScripted()
	require.NoError(t, s.Alert(context.Background(), "Hata", "Not boş olamaz"))
	assert.Equal(t, []string{"Hata: Not boş olamaz"}, s.Alerts)
}
