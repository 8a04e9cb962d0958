package view

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"terminaldiary/database"
	"terminaldiary/meta"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Renders name/value pairs of something about to be deleted
func renderDeleteConfirmation(title string, names, values []string, colours meta.AppColours) string {
	var result strings.Builder

	titleStyle := lipgloss.NewStyle().Background(colours.Background).Padding(0, 1)

	result.WriteString(titleStyle.Render(title))
	result.WriteString("\n\n")

	sectionStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Align(lipgloss.Left)

	if len(names) != len(values) {
		panic(fmt.Sprintf("got %d names but %d values", len(names), len(values)))
	}

	if len(names) > 0 {
		// +2 for padding
		maxNameColWidth := len(slices.MaxFunc(names, func(name string, other string) int {
			return cmp.Compare(len(name), len(other))
		})) + 2

		for i := range names {
			result.WriteString(lipgloss.JoinHorizontal(
				lipgloss.Top,
				sectionStyle.Width(maxNameColWidth).Render(names[i]),
				" ",
				sectionStyle.Render(values[i]),
			))

			result.WriteString("\n")
		}

		result.WriteString("\n")
	}

	result.WriteString(lipgloss.NewStyle().Italic(true).Render("Run the `:w` command to confirm"))

	return lipgloss.NewStyle().MarginLeft(2).Render(result.String())
}

type DeleteView struct {
	// Index into the displayed entries
	index int
	entry database.Entry

	loadErr error

	state   *EntriesState
	colours meta.AppColours
}

func NewDeleteView(state *EntriesState, index int, colours meta.AppColours) *DeleteView {
	entry, err := state.Controller.ItemAt(index)

	return &DeleteView{
		index: index,
		entry: entry,

		loadErr: err,

		state:   state,
		colours: colours,
	}
}

func (dv *DeleteView) Init() tea.Cmd {
	if dv.loadErr != nil {
		return tea.Batch(
			meta.MessageCmd(fmt.Errorf("FAILED TO LOAD ENTRY TO DELETE: %w", dv.loadErr)),
			meta.MessageCmd(meta.SwitchViewMsg{ViewType: meta.LISTVIEWTYPE}),
		)
	}

	return nil
}

func (dv *DeleteView) Update(message tea.Msg) (View, tea.Cmd) {
	switch message.(type) {
	case meta.CommitMsg:
		err := dv.state.Store.DeleteEntry(context.Background(), dv.entry.Id)
		if err != nil {
			return dv, meta.MessageCmd(fmt.Errorf("FAILED TO DELETE ENTRY: %w", err))
		}

		_, err = dv.state.Controller.RemoveAt(dv.index)
		if err != nil {
			return dv, meta.MessageCmd(err)
		}

		var cmds []tea.Cmd

		cmds = append(cmds, meta.MessageCmd(meta.NotificationMessageMsg{Message: fmt.Sprintf(
			"Successfully deleted entry %q", dv.entry.Title,
		)}))
		cmds = append(cmds, meta.MessageCmd(meta.SwitchViewMsg{ViewType: meta.LISTVIEWTYPE}))

		return dv, tea.Batch(cmds...)

	case tea.WindowSizeMsg, meta.NavigateMsg, meta.DataLoadedMsg:
		return dv, nil

	default:
		panic(fmt.Sprintf("unexpected tea.Msg: %#v", message))
	}
}

func (dv *DeleteView) View() string {
	names := []string{"Title", "Date", "Image", "Content"}
	values := []string{dv.entry.Title, dv.entry.Date, dv.entry.AttachedImagePath, dv.entry.Content}

	return renderDeleteConfirmation("Delete entry", names, values, dv.colours)
}

func (dv *DeleteView) AllowsInsertMode() bool {
	return false
}

func (dv *DeleteView) AcceptedModels() map[meta.ModelType]struct{} {
	return map[meta.ModelType]struct{}{}
}

func (dv *DeleteView) MotionSet() meta.MotionSet {
	var normalMotions meta.Trie[tea.Msg]

	normalMotions.Insert(meta.Motion{"g", "l"}, meta.SwitchViewMsg{ViewType: meta.LISTVIEWTYPE})
	normalMotions.Insert(meta.Motion{"g", "d"}, meta.SwitchViewMsg{ViewType: meta.DETAILVIEWTYPE, Data: dv.entry.Id})

	return meta.MotionSet{Normal: normalMotions}
}

func (dv *DeleteView) CommandSet() meta.CommandSet {
	var commands meta.Trie[tea.Msg]

	commands.Insert(meta.NewCommand("w"), meta.CommitMsg{})
	commands.Insert(meta.NewCommand("write"), meta.CommitMsg{})

	return meta.CommandSet(commands)
}

func (dv *DeleteView) Reload() View {
	return NewDeleteView(dv.state, dv.index, dv.colours)
}

// Confirmation for deleting every entry, shown as a modal over the current app
type DeleteAllView struct {
	state *EntriesState
}

func NewDeleteAllView(state *EntriesState) *DeleteAllView {
	return &DeleteAllView{state: state}
}

func (dav *DeleteAllView) Init() tea.Cmd {
	return nil
}

func (dav *DeleteAllView) Update(message tea.Msg) (View, tea.Cmd) {
	switch message.(type) {
	case meta.CommitMsg:
		count := len(dav.state.Controller.Full())

		err := dav.state.Store.DeleteAllEntries(context.Background())
		if err != nil {
			return dav, meta.MessageCmd(fmt.Errorf("FAILED TO DELETE ALL ENTRIES: %w", err))
		}

		dav.state.Controller.ClearAll()

		var cmds []tea.Cmd

		cmds = append(cmds, meta.MessageCmd(meta.EntriesClearedMsg{}))
		cmds = append(cmds, meta.MessageCmd(meta.CloseModalMsg{}))
		cmds = append(cmds, meta.MessageCmd(meta.NotificationMessageMsg{Message: fmt.Sprintf(
			"Deleted all %d entries", count,
		)}))

		return dav, tea.Batch(cmds...)

	case tea.WindowSizeMsg, meta.NavigateMsg:
		return dav, nil

	default:
		panic(fmt.Sprintf("unexpected tea.Msg: %#v", message))
	}
}

func (dav *DeleteAllView) View() string {
	var result strings.Builder

	result.WriteString(lipgloss.NewStyle().Bold(true).Render("Delete ALL entries?"))
	result.WriteString("\n\n")
	result.WriteString(fmt.Sprintf("This removes %d entries and cannot be undone.", len(dav.state.Controller.Full())))
	result.WriteString("\n\n")
	result.WriteString(lipgloss.NewStyle().Italic(true).Render("Run the `:w` command to confirm, `gl` to cancel"))

	return result.String()
}

func (dav *DeleteAllView) AllowsInsertMode() bool {
	return false
}

func (dav *DeleteAllView) AcceptedModels() map[meta.ModelType]struct{} {
	return map[meta.ModelType]struct{}{}
}

func (dav *DeleteAllView) MotionSet() meta.MotionSet {
	var normalMotions meta.Trie[tea.Msg]

	normalMotions.Insert(meta.Motion{"g", "l"}, meta.CloseModalMsg{})
	normalMotions.Insert(meta.Motion{"esc"}, meta.CloseModalMsg{})

	return meta.MotionSet{Normal: normalMotions}
}

func (dav *DeleteAllView) CommandSet() meta.CommandSet {
	var commands meta.Trie[tea.Msg]

	commands.Insert(meta.NewCommand("w"), meta.CommitMsg{})
	commands.Insert(meta.NewCommand("write"), meta.CommitMsg{})

	return meta.CommandSet(commands)
}

func (dav *DeleteAllView) Reload() View {
	return NewDeleteAllView(dav.state)
}
