package view

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"terminaldiary/meta"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// A single field of a form
type input interface {
	Update(tea.Msg) (input, tea.Cmd)
	View() string

	focus() tea.Cmd
	blur()

	value() string
	setValue(string)

	// Whether the field takes keyboard input. Read-only fields are skipped when switching focus.
	editable() bool
}

type textInput struct {
	model textinput.Model
}

func newTextInput(width int) *textInput {
	model := textinput.New()
	// -2 because of the prompt, -1 because of the cursor
	model.Width = width - 2 - 1
	model.Cursor.SetMode(cursor.CursorStatic)

	return &textInput{model: model}
}

func (ti *textInput) Update(message tea.Msg) (input, tea.Cmd) {
	var cmd tea.Cmd
	ti.model, cmd = ti.model.Update(message)

	return ti, cmd
}

func (ti *textInput) View() string { return ti.model.View() }
func (ti *textInput) focus() tea.Cmd { return ti.model.Focus() }
func (ti *textInput) blur() { ti.model.Blur() }
func (ti *textInput) value() string { return ti.model.Value() }
func (ti *textInput) setValue(value string) { ti.model.SetValue(value) }
func (ti *textInput) editable() bool { return true }

type textArea struct {
	model textarea.Model
}

func newTextArea(width int, colours meta.AppColours) *textArea {
	model := textarea.New()
	model.Cursor.SetMode(cursor.CursorStatic)
	model.SetWidth(width)
	model.ShowLineNumbers = false

	focusStyle := lipgloss.NewStyle().Foreground(colours.Foreground)
	model.FocusedStyle.Prompt = focusStyle
	model.FocusedStyle.Text = focusStyle
	model.FocusedStyle.CursorLine = focusStyle

	return &textArea{model: model}
}

func (ta *textArea) Update(message tea.Msg) (input, tea.Cmd) {
	var cmd tea.Cmd
	ta.model, cmd = ta.model.Update(message)

	return ta, cmd
}

func (ta *textArea) View() string { return ta.model.View() }
func (ta *textArea) focus() tea.Cmd { return ta.model.Focus() }
func (ta *textArea) blur() { ta.model.Blur() }
func (ta *textArea) value() string { return ta.model.Value() }
func (ta *textArea) setValue(value string) { ta.model.SetValue(value) }
func (ta *textArea) editable() bool { return true }

// Shows a value that is set by other means than typing, e.g. the attached image
type displayInput struct {
	placeholder string
	current     string
}

func (di *displayInput) Update(tea.Msg) (input, tea.Cmd) { return di, nil }
func (di *displayInput) focus() tea.Cmd { return nil }
func (di *displayInput) blur() {}
func (di *displayInput) value() string { return di.current }
func (di *displayInput) setValue(value string) { di.current = value }
func (di *displayInput) editable() bool { return false }

func (di *displayInput) View() string {
	if di.current == "" {
		return lipgloss.NewStyle().Italic(true).Faint(true).Render(di.placeholder)
	}

	return di.current
}

type inputManager struct {
	activeInput activeInput

	inputs []input
	names  []string
}

func newInputManager(inputs []input, names []string) *inputManager {
	if len(inputs) != len(names) {
		panic(fmt.Sprintf("got %d inputs but %d names", len(inputs), len(names)))
	}

	result := &inputManager{
		inputs: inputs,
		names:  names,
	}

	result.inputs[0].focus()

	return result
}

func (im *inputManager) Update(message tea.Msg) (*inputManager, tea.Cmd) {
	switch message := message.(type) {
	case meta.SwitchFocusMsg:
		im.inputs[im.activeInput].blur()

		// Skip over the read-only inputs, there is at least one editable one
		for {
			switch message.Direction {
			case meta.PREVIOUS:
				im.activeInput.previous(len(im.inputs))

			case meta.NEXT:
				im.activeInput.next(len(im.inputs))

			default:
				panic(fmt.Sprintf("unexpected meta.Sequence: %#v", message.Direction))
			}

			if im.inputs[im.activeInput].editable() {
				break
			}
		}

		return im, im.inputs[im.activeInput].focus()

	case tea.WindowSizeMsg:
		return im, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		im.inputs[im.activeInput], cmd = im.inputs[im.activeInput].Update(message)

		return im, cmd

	default:
		panic(fmt.Sprintf("unexpected tea.Msg: %#v", message))
	}
}

func (im *inputManager) value(index int) string {
	return im.inputs[index].value()
}

func (im *inputManager) setValue(index int, value string) {
	im.inputs[index].setValue(value)
}

// Empties every input and puts focus back on the first one
func (im *inputManager) reset() tea.Cmd {
	for _, input := range im.inputs {
		input.setValue("")
		input.blur()
	}

	im.activeInput = 0

	return im.inputs[0].focus()
}

func (im *inputManager) View(highlightColour lipgloss.Color) string {
	var result strings.Builder

	sectionStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		UnsetWidth().
		Align(lipgloss.Left)
	highlightStyle := sectionStyle.BorderForeground(highlightColour)

	// +2 for padding
	maxNameColWidth := len(slices.MaxFunc(im.names, func(name string, other string) int {
		return cmp.Compare(len(name), len(other))
	})) + 2

	for i := range im.names {
		style := sectionStyle
		if i == int(im.activeInput) {
			style = highlightStyle
		}

		result.WriteString(lipgloss.JoinHorizontal(
			lipgloss.Top,
			sectionStyle.Width(maxNameColWidth).Render(im.names[i]),
			" ",
			style.Render(im.inputs[i].View()),
		))

		result.WriteString("\n")
	}

	return result.String()
}
