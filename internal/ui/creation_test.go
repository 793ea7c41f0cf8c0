package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"please enter a name for your character", "Please enter a name for your character"},
		{"name cannot be purely numeric", "Name cannot be purely numeric"},
		{"Already capitalized", "Already capitalized"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := sentence(tt.input); got != tt.expected {
			t.Errorf("sentence(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSubmitCreationRejectsInvalidName(t *testing.T) {
	m := newTestModel(t)
	m.screen = screenNameGender
	m.nameInput.SetValue("12345")

	_, cmd := m.submitCreation()

	require.True(t, m.modalKindIs(ModalAlert), "invalid name must alert, not dispatch")
	assert.Equal(t, "Name cannot be purely numeric. Please try again.", m.modal.Body,
		"only the first letter is uppercased")
	assert.NotNil(t, cmd, "input regains focus")
}

func TestSubmitCreationEmptyName(t *testing.T) {
	m := newTestModel(t)
	m.screen = screenNameGender
	m.nameInput.SetValue("   ")

	_, _ = m.submitCreation()

	require.True(t, m.modalKindIs(ModalAlert))
	assert.Equal(t, "Please enter a name for your character. Please try again.", m.modal.Body)
}
