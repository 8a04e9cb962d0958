// Package itempicker is a single-line picker cycling through a fixed set of items.
package itempicker

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Item interface {
	fmt.Stringer

	CompareId() int
}

type Model struct {
	Label string
	Items []Item

	activeItem int

	ActiveStyle   lipgloss.Style
	InactiveStyle lipgloss.Style
}

func New(label string, items []Item) Model {
	return Model{
		Label: label,
		Items: items,

		ActiveStyle:   lipgloss.NewStyle().Bold(true).Underline(true),
		InactiveStyle: lipgloss.NewStyle().Faint(true),
	}
}

func (m Model) Update(message tea.Msg) (Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		switch message.String() {
		case "ctrl+n", "j", "l":
			m.Next()

		case "ctrl+p", "k", "h":
			m.Previous()
		}
	}

	return m, nil
}

// Moves to the next item, wrapping around at the end.
func (m *Model) Next() {
	if len(m.Items) == 0 {
		return
	}

	m.activeItem = (m.activeItem + 1) % len(m.Items)
}

func (m *Model) Previous() {
	if len(m.Items) == 0 {
		return
	}

	m.activeItem = (m.activeItem - 1 + len(m.Items)) % len(m.Items)
}

func (m Model) View() string {
	var result strings.Builder

	if m.Label != "" {
		result.WriteString(m.Label)
		result.WriteString(": ")
	}

	if len(m.Items) == 0 {
		result.WriteString(lipgloss.NewStyle().Italic(true).Render("No items"))
		return result.String()
	}

	for i, item := range m.Items {
		if i != 0 {
			result.WriteString(" | ")
		}

		if i == m.activeItem {
			result.WriteString(m.ActiveStyle.Render(item.String()))
		} else {
			result.WriteString(m.InactiveStyle.Render(item.String()))
		}
	}

	return result.String()
}

// Allows to manually retrieve the currently selected value.
func (m Model) Value() Item {
	if len(m.Items) == 0 {
		return nil
	}

	return m.Items[m.activeItem]
}

// Sets the currently selected item to the given value.
// Errors if the value isn't in the set of selectable items.
func (m *Model) SetValue(value Item) error {
	index := slices.IndexFunc(m.Items, func(item Item) bool {
		return item.CompareId() == value.CompareId()
	})

	if index == -1 {
		return fmt.Errorf("setting itempicker value to %q but only valid choices are %v", value, m.Items)
	}

	m.activeItem = index

	return nil
}
