package view

import (
	"errors"
	"fmt"
	"terminaldiary/bubbles/itempicker"
	"terminaldiary/database"
	"terminaldiary/entrylist"
	"terminaldiary/meta"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type entryItem struct {
	database.Entry
}

func (ei entryItem) Title() string {
	return ei.Entry.Title
}

func (ei entryItem) Description() string {
	if ei.HasImage() {
		return ei.Date + "  [image]"
	}

	return ei.Date
}

func (ei entryItem) FilterValue() string {
	return ei.Entry.Title
}

type ListView struct {
	listModel  list.Model
	sortPicker itempicker.Model

	state   *EntriesState
	colours meta.AppColours
}

func NewListView(state *EntriesState, colours meta.AppColours) *ListView {
	// List dimensions will be updated according to tea.WindowSizeMsg
	model := list.New([]list.Item{}, meta.NewListDelegate(colours), 80, 16)
	model.Title = "Entries"
	model.Styles.Title = meta.ListTitleStyle(colours)
	model.SetShowHelp(false)
	// Filtering is done by the controller, so that it composes with sorting
	model.SetFilteringEnabled(false)

	sortModes := make([]itempicker.Item, len(entrylist.SortModes))
	for i, mode := range entrylist.SortModes {
		sortModes[i] = mode
	}

	sortPicker := itempicker.New("Sort", sortModes)
	sortPicker.ActiveStyle = sortPicker.ActiveStyle.Foreground(colours.Foreground)
	// Can't fail, every mode is in the picker
	sortPicker.SetValue(state.SortMode)

	result := &ListView{
		listModel:  model,
		sortPicker: sortPicker,

		state:   state,
		colours: colours,
	}

	result.refreshItems()

	return result
}

func (lv *ListView) Init() tea.Cmd {
	return lv.state.Store.MakeLoadEntriesCmd(meta.ENTRIESAPP)
}

func (lv *ListView) Update(message tea.Msg) (View, tea.Cmd) {
	switch message := message.(type) {
	case meta.DataLoadedMsg:
		entries, ok := message.Data.([]database.Entry)
		if !ok {
			return lv, nil
		}

		lv.state.Controller.ReplaceAll(entries)

		var err error
		if lv.state.SortMode != entrylist.SORTNONE {
			err = lv.state.Controller.ApplySort(lv.state.SortMode)
		}

		lv.refreshItems()

		return lv, meta.MessageCmd(err)

	case meta.NavigateMsg:
		keyMsg := meta.NavigateMessageToKeyMsg(message)

		var cmd tea.Cmd
		lv.listModel, cmd = lv.listModel.Update(keyMsg)

		return lv, cmd

	// Returning to prevent panic
	// Required because other views do accept these messages
	case tea.WindowSizeMsg:
		// -2 because of horizontal padding
		lv.listModel.SetWidth(message.Width - 2)

		// -1 to leave some bottom padding, -2 for the sort picker
		lv.listModel.SetHeight(message.Height - 1 - 2)

		return lv, nil

	case meta.UpdateSearchMsg:
		lv.state.Controller.FilterByTitle(message.Query)
		lv.refreshItems()

		return lv, nil

	case meta.SubmitSearchMsg:
		err := lv.state.Controller.Search(message.Query, lv.state.SortMode)
		lv.refreshItems()

		return lv, meta.MessageCmd(err)

	case meta.ResetSearchMsg:
		lv.state.Controller.FilterByTitle("")
		err := lv.state.Controller.ApplySort(lv.state.SortMode)
		lv.refreshItems()

		return lv, meta.MessageCmd(err)

	case meta.CycleSortModeMsg:
		switch message.Direction {
		case meta.NEXT:
			lv.sortPicker.Next()

		case meta.PREVIOUS:
			lv.sortPicker.Previous()

		default:
			panic(fmt.Sprintf("unexpected meta.Sequence: %#v", message.Direction))
		}

		lv.state.SortMode = lv.sortPicker.Value().(entrylist.SortMode)

		// Nothing to order with fewer than two entries
		if lv.state.Controller.Count() <= 1 {
			return lv, nil
		}

		err := lv.state.Controller.ApplySort(lv.state.SortMode)
		lv.refreshItems()

		return lv, meta.MessageCmd(err)

	case meta.EntriesClearedMsg:
		lv.refreshItems()

		return lv, nil

	default:
		panic(fmt.Sprintf("unexpected tea.Msg: %#v", message))
	}
}

func (lv *ListView) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.NewStyle().MarginLeft(2).Render(lv.sortPicker.View()),
		"",
		lv.listModel.View(),
	)
}

func (lv *ListView) AllowsInsertMode() bool {
	return false
}

func (lv *ListView) AcceptedModels() map[meta.ModelType]struct{} {
	return map[meta.ModelType]struct{}{
		meta.ENTRYMODEL: {},
	}
}

func (lv *ListView) MotionSet() meta.MotionSet {
	var normalMotions meta.Trie[tea.Msg]

	normalMotions.Insert(meta.Motion{"/"}, meta.SwitchModeMsg{InputMode: meta.COMMANDMODE, Data: true}) // true -> yes search mode

	normalMotions.Insert(meta.Motion{"h"}, meta.NavigateMsg{Direction: meta.LEFT})
	normalMotions.Insert(meta.Motion{"j"}, meta.NavigateMsg{Direction: meta.DOWN})
	normalMotions.Insert(meta.Motion{"k"}, meta.NavigateMsg{Direction: meta.UP})
	normalMotions.Insert(meta.Motion{"l"}, meta.NavigateMsg{Direction: meta.RIGHT})

	normalMotions.Insert(meta.Motion{"s"}, meta.CycleSortModeMsg{Direction: meta.NEXT})
	normalMotions.Insert(meta.Motion{"S"}, meta.CycleSortModeMsg{Direction: meta.PREVIOUS})

	normalMotions.Insert(meta.Motion{"g", "d"}, lv.makeGoToDetailViewCmd()) // [g]oto [d]etails
	normalMotions.Insert(meta.Motion{"g", "c"}, meta.SwitchViewMsg{
		ViewType: meta.CREATEVIEWTYPE,
	}) // [g]oto [c]reate view
	normalMotions.Insert(meta.Motion{"g", "x"}, lv.makeGoToDeleteViewCmd())

	return meta.MotionSet{Normal: normalMotions}
}

func (lv *ListView) CommandSet() meta.CommandSet {
	var commands meta.Trie[tea.Msg]

	commands.Insert(meta.NewCommand("deleteall"), lv.makeDeleteAllCmd())

	return meta.CommandSet(commands)
}

func (lv *ListView) Reload() View {
	return NewListView(lv.state, lv.colours)
}

func (lv *ListView) refreshItems() {
	entries := lv.state.Controller.Visible()

	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[i] = entryItem{Entry: entry}
	}

	lv.listModel.SetItems(items)
}

func (lv *ListView) makeGoToDetailViewCmd() tea.Cmd {
	return func() tea.Msg {
		item := lv.listModel.SelectedItem()

		if item == nil {
			return errors.New("no entry to goto detail view of")
		}

		return meta.SwitchViewMsg{ViewType: meta.DETAILVIEWTYPE, Data: item.(entryItem).Id}
	}
}

func (lv *ListView) makeDeleteAllCmd() tea.Cmd {
	return func() tea.Msg {
		if lv.state.Controller.Count() == 0 {
			return errors.New("no entries to delete")
		}

		return meta.ShowDeleteAllModalMsg{}
	}
}

func (lv *ListView) makeGoToDeleteViewCmd() tea.Cmd {
	return func() tea.Msg {
		if lv.listModel.SelectedItem() == nil {
			return errors.New("no entry to delete")
		}

		return meta.SwitchViewMsg{ViewType: meta.DELETEVIEWTYPE, Data: lv.listModel.Index()}
	}
}
