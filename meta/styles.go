package meta

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

type AppColours struct {
	Foreground, Accent, Background lipgloss.Color
}

var ENTRIESCOLOURS = AppColours{
	Foreground: "#F0F1B2D0",
	Accent:     "#F0F1B280",
	Background: "#EBECABFF",
}

var CALENDARCOLOURS = AppColours{
	Foreground: "#A1EEBDD0",
	Accent:     "#A1EEBD60",
	Background: "#A1EEBDFF",
}

// Width of a tab's label, excluding its borders
const TABWIDTH = 12

// The active tab is open at the bottom, so it flows into the app below it
func TabStyle(accent lipgloss.Color, active bool) lipgloss.Style {
	border := lipgloss.RoundedBorder()
	style := lipgloss.NewStyle().Width(TABWIDTH).AlignHorizontal(lipgloss.Center)

	if active {
		border.Bottom = " "
		border.BottomLeft = "┘"
		border.BottomRight = "└"

		return style.Border(border).BorderForeground(accent)
	}

	border.BottomLeft = "┴"
	border.BottomRight = "┴"

	return style.Border(border).BorderBottomForeground(accent)
}

func BodyStyle(width, height int) lipgloss.Style {
	return lipgloss.NewStyle().Width(width).Height(height)
}

var (
	CommandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FFFF")).
			Background(lipgloss.Color("240"))

	StatusLineStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("252"))

	StatusLineErrorStyle = StatusLineStyle.Foreground(lipgloss.Color("9"))

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 2)
)

// A list delegate highlighting the selected item in the app's colours
func NewListDelegate(colours AppColours) list.DefaultDelegate {
	delegate := list.NewDefaultDelegate()

	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(colours.Foreground).
		BorderForeground(colours.Background)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(colours.Foreground).
		BorderForeground(colours.Background)

	return delegate
}

func ListTitleStyle(colours AppColours) lipgloss.Style {
	return list.DefaultStyles().Title.Background(colours.Accent)
}
