package view

import (
	"fmt"
	"strings"
	"terminaldiary/database"
	"terminaldiary/meta"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type DetailView struct {
	modelId int
	model   database.Entry

	width int

	state   *EntriesState
	colours meta.AppColours
}

func NewDetailView(state *EntriesState, modelId int, colours meta.AppColours) *DetailView {
	return &DetailView{
		modelId: modelId,

		width: 80,

		state:   state,
		colours: colours,
	}
}

func (dv *DetailView) Init() tea.Cmd {
	return dv.state.Store.MakeLoadEntryDetailCmd(dv.modelId, meta.ENTRIESAPP)
}

func (dv *DetailView) Update(message tea.Msg) (View, tea.Cmd) {
	switch message := message.(type) {
	case meta.DataLoadedMsg:
		if message.Model != meta.ENTRYMODEL {
			panic(fmt.Sprintf("Expected an Entry, but got %v", message.Model))
		}

		// The list might still be loading from before switching here
		entry, ok := message.Data.(database.Entry)
		if !ok {
			return dv, nil
		}

		dv.model = entry

		return dv, nil

	case tea.WindowSizeMsg:
		dv.width = message.Width

		return dv, nil

	case meta.NavigateMsg:
		return dv, nil

	default:
		panic(fmt.Sprintf("unexpected tea.Msg: %#v", message))
	}
}

func (dv *DetailView) View() string {
	var result strings.Builder

	titleStyle := lipgloss.NewStyle().Background(dv.colours.Background).Padding(0, 1)
	result.WriteString(titleStyle.Render(dv.model.Title))
	result.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(dv.colours.Foreground).Bold(true)

	result.WriteString(labelStyle.Render("Date: "))
	result.WriteString(dv.model.Date)
	result.WriteString("\n")

	result.WriteString(labelStyle.Render("Image: "))
	if dv.model.HasImage() {
		result.WriteString(dv.model.AttachedImagePath)
	} else {
		result.WriteString(lipgloss.NewStyle().Italic(true).Render("None"))
	}
	result.WriteString("\n\n")

	// -4 for the margins
	contentStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(max(dv.width-4, 20))
	result.WriteString(contentStyle.Render(dv.model.Content))

	return lipgloss.NewStyle().MarginLeft(2).Render(result.String())
}

func (dv *DetailView) AllowsInsertMode() bool {
	return false
}

func (dv *DetailView) AcceptedModels() map[meta.ModelType]struct{} {
	return map[meta.ModelType]struct{}{
		meta.ENTRYMODEL: {},
	}
}

func (dv *DetailView) MotionSet() meta.MotionSet {
	var normalMotions meta.Trie[tea.Msg]

	normalMotions.Insert(meta.Motion{"g", "l"}, meta.SwitchViewMsg{ViewType: meta.LISTVIEWTYPE})

	return meta.MotionSet{Normal: normalMotions}
}

func (dv *DetailView) CommandSet() meta.CommandSet {
	return meta.CommandSet{}
}

func (dv *DetailView) Reload() View {
	return NewDetailView(dv.state, dv.modelId, dv.colours)
}
