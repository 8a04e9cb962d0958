package view

import (
	"terminaldiary/meta"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func newTestInputManager() *inputManager {
	inputs := []input{
		newTextInput(20),
		&displayInput{placeholder: "nothing"},
		newTextArea(20, meta.ENTRIESCOLOURS),
	}

	return newInputManager(inputs, []string{"Name", "Shown", "Notes"})
}

func typeText(im *inputManager, text string) {
	for _, char := range text {
		im.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{char}})
	}
}

func TestInputManagerTyping(t *testing.T) {
	im := newTestInputManager()

	typeText(im, "abc")

	assert.Equal(t, "abc", im.value(0))
	assert.Equal(t, "", im.value(2))
}

func TestInputManagerSkipsReadOnlyInputs(t *testing.T) {
	im := newTestInputManager()

	im.Update(meta.SwitchFocusMsg{Direction: meta.NEXT})
	assert.Equal(t, activeInput(2), im.activeInput)

	typeText(im, "notes")
	assert.Equal(t, "notes", im.value(2))

	// Wraps around
	im.Update(meta.SwitchFocusMsg{Direction: meta.NEXT})
	assert.Equal(t, activeInput(0), im.activeInput)

	im.Update(meta.SwitchFocusMsg{Direction: meta.PREVIOUS})
	assert.Equal(t, activeInput(2), im.activeInput)

	im.Update(meta.SwitchFocusMsg{Direction: meta.PREVIOUS})
	assert.Equal(t, activeInput(0), im.activeInput)
}

func TestInputManagerReset(t *testing.T) {
	im := newTestInputManager()

	typeText(im, "abc")
	im.setValue(1, "shown value")
	im.Update(meta.SwitchFocusMsg{Direction: meta.NEXT})
	typeText(im, "notes")

	assert.Contains(t, im.View("#FFFFFF"), "shown value")

	im.reset()

	for i := range im.inputs {
		assert.Equal(t, "", im.value(i))
	}
	assert.Equal(t, activeInput(0), im.activeInput)
	assert.Contains(t, im.View("#FFFFFF"), "nothing")

	// Focus is back on the first input
	typeText(im, "x")
	assert.Equal(t, "x", im.value(0))
}
