package meta

import tea "github.com/charmbracelet/bubbletea"

// A tab in the interface, e.g. the calendar or the list of entries.
type App interface {
	tea.Model

	Name() string
	Type() AppType
	Colours() AppColours

	CurrentViewType() ViewType
	CurrentViewAllowsInsertMode() bool
	CurrentMotionSet() MotionSet
	CurrentCommandSet() CommandSet

	AcceptedModels() map[ModelType]struct{}

	ReloadView() tea.Cmd
}
