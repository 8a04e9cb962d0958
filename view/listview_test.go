package view

import (
	"terminaldiary/database"
	"terminaldiary/entrylist"
	"terminaldiary/images"
	"terminaldiary/meta"
	"terminaldiary/tat"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestListView(t *testing.T, entries ...database.Entry) (*ListView, *EntriesState) {
	t.Helper()

	DB := tat.SetupTestEnv(t)
	store := database.NewEntryStore(DB)
	tat.InsertEntries(t, store, entries...)

	state := NewEntriesState(store, images.NewStore(t.TempDir()))
	lv := NewListView(state, meta.ENTRIESCOLOURS)

	lv.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	loaded := lv.Init()()
	lv.Update(loaded)

	return lv, state
}

func visibleTitles(state *EntriesState) []string {
	var result []string
	for _, entry := range state.Controller.Visible() {
		result = append(result, entry.Title)
	}

	return result
}

func TestListViewLoads(t *testing.T) {
	lv, state := newTestListView(t,
		database.Entry{Title: "First", Date: "01/01/2024", Content: "a", AttachedImagePath: "images/a.jpg"},
		database.Entry{Title: "Second", Date: "02/01/2024", Content: "b"},
	)

	assert.Equal(t, []string{"First", "Second"}, visibleTitles(state))

	view := lv.View()
	assert.Contains(t, view, "First")
	assert.Contains(t, view, "01/01/2024  [image]")
	assert.Contains(t, view, "Second")
	assert.Contains(t, view, "Sort: None | Date | Z to A")
}

func TestListViewSearch(t *testing.T) {
	lv, state := newTestListView(t,
		database.Entry{Title: "Beach day", Date: "01/07/2024", Content: "a"},
		database.Entry{Title: "Work", Date: "03/07/2024", Content: "b"},
		database.Entry{Title: "beach cleanup", Date: "02/07/2024", Content: "c"},
	)

	lv.Update(meta.UpdateSearchMsg{Query: "bea"})
	assert.Equal(t, []string{"Beach day", "beach cleanup"}, visibleTitles(state))
	assert.NotContains(t, lv.View(), "Work")

	lv.Update(meta.ResetSearchMsg{})
	assert.Equal(t, []string{"Beach day", "Work", "beach cleanup"}, visibleTitles(state))

	// Submitting sorts according to the current mode
	state.SortMode = entrylist.SORTDATE
	_, cmd := lv.Update(meta.SubmitSearchMsg{Query: "BEACH"})
	assert.Nil(t, cmd())
	assert.Equal(t, []string{"beach cleanup", "Beach day"}, visibleTitles(state))
}

func TestListViewCycleSortMode(t *testing.T) {
	lv, state := newTestListView(t,
		database.Entry{Title: "Beach day", Date: "01/07/2024", Content: "a"},
		database.Entry{Title: "Work", Date: "03/07/2024", Content: "b"},
	)

	lv.Update(meta.CycleSortModeMsg{Direction: meta.NEXT})
	assert.Equal(t, entrylist.SORTDATE, state.SortMode)
	assert.Equal(t, []string{"Work", "Beach day"}, visibleTitles(state))

	lv.Update(meta.CycleSortModeMsg{Direction: meta.NEXT})
	assert.Equal(t, entrylist.SORTTITLEDESC, state.SortMode)
	assert.Equal(t, []string{"Work", "Beach day"}, visibleTitles(state))

	lv.Update(meta.CycleSortModeMsg{Direction: meta.NEXT})
	assert.Equal(t, entrylist.SORTNONE, state.SortMode)
	assert.Equal(t, []string{"Beach day", "Work"}, visibleTitles(state))

	// A new list view, e.g. after coming back from another view, keeps the mode
	state.SortMode = entrylist.SORTDATE
	reloaded := lv.Reload().(*ListView)
	assert.Equal(t, entrylist.SORTDATE, reloaded.sortPicker.Value())

	reloaded.Update(reloaded.Init()())
	assert.Equal(t, []string{"Work", "Beach day"}, visibleTitles(state))
}

func TestListViewSortSingleEntry(t *testing.T) {
	lv, state := newTestListView(t, database.Entry{Title: "Only", Date: "not a date", Content: "a"})

	// Nothing to order, so the bad date doesn't matter
	_, cmd := lv.Update(meta.CycleSortModeMsg{Direction: meta.NEXT})
	assert.Nil(t, cmd)
	assert.Equal(t, entrylist.SORTDATE, state.SortMode)
}

func TestListViewGoToCmds(t *testing.T) {
	lv, _ := newTestListView(t)

	motions := lv.MotionSet()

	detailCmd, ok := motions.Normal.Get(meta.Motion{"g", "d"})
	require.True(t, ok)
	assert.EqualError(t, detailCmd.(tea.Cmd)().(error), "no entry to goto detail view of")

	lv, _ = newTestListView(t, database.Entry{Title: "First", Date: "01/01/2024", Content: "a"})
	motions = lv.MotionSet()

	detailCmd, _ = motions.Normal.Get(meta.Motion{"g", "d"})
	switchMsg := detailCmd.(tea.Cmd)().(meta.SwitchViewMsg)
	assert.Equal(t, meta.DETAILVIEWTYPE, switchMsg.ViewType)
	assert.Equal(t, 1, switchMsg.Data)

	deleteCmd, _ := motions.Normal.Get(meta.Motion{"g", "x"})
	switchMsg = deleteCmd.(tea.Cmd)().(meta.SwitchViewMsg)
	assert.Equal(t, meta.DELETEVIEWTYPE, switchMsg.ViewType)
	assert.Equal(t, 0, switchMsg.Data)
}
