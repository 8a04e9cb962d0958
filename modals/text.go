package modals

import (
	"terminaldiary/meta"
	"terminaldiary/view"

	tea "github.com/charmbracelet/bubbletea"
)

type textModal struct {
	message string
}

func NewTextModal(message string) *textModal {
	return &textModal{
		message: message,
	}
}

func (tm *textModal) Init() tea.Cmd {
	return nil
}

func (tm *textModal) Update(message tea.Msg) (view.View, tea.Cmd) {
	return tm, nil
}

func (tm *textModal) View() string {
	return tm.message
}

func (tm *textModal) AllowsInsertMode() bool {
	return false
}

func (tm *textModal) AcceptedModels() map[meta.ModelType]struct{} {
	return make(map[meta.ModelType]struct{})
}

func (tm *textModal) MotionSet() meta.MotionSet {
	var normalMotions meta.Trie[tea.Msg]

	normalMotions.Insert(meta.Motion{"g", "l"}, meta.CloseModalMsg{})
	normalMotions.Insert(meta.Motion{"esc"}, meta.CloseModalMsg{})
	normalMotions.Insert(meta.Motion{"q"}, meta.CloseModalMsg{})

	return meta.MotionSet{Normal: normalMotions}
}

func (tm *textModal) CommandSet() meta.CommandSet {
	return meta.CommandSet{}
}

func (tm *textModal) Reload() view.View {
	return tm
}
