package view

import (
	"terminaldiary/database"
	"terminaldiary/entrylist"
	"terminaldiary/images"
	"terminaldiary/meta"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string

	AllowsInsertMode() bool

	AcceptedModels() map[meta.ModelType]struct{}

	MotionSet() meta.MotionSet
	CommandSet() meta.CommandSet

	// Returns a fresh instance of the same view, discarding any local state
	Reload() View
}

// What the entries views share. Lives as long as the app does,
// so the displayed list and sort mode survive switching views.
type EntriesState struct {
	Store      *database.EntryStore
	Controller *entrylist.Controller
	Images     *images.Store

	SortMode entrylist.SortMode

	// The date last picked in the calendar, prefilled when writing an entry
	SelectedDate time.Time
}

func NewEntriesState(store *database.EntryStore, imageStore *images.Store) *EntriesState {
	return &EntriesState{
		Store:      store,
		Controller: entrylist.New(),
		Images:     imageStore,

		SortMode: entrylist.SORTNONE,

		SelectedDate: time.Now(),
	}
}

type activeInput int

func (input *activeInput) previous(numInputs int) {
	*input--

	if *input < 0 {
		*input += activeInput(numInputs)
	}
}

func (input *activeInput) next(numInputs int) {
	*input++

	*input %= activeInput(numInputs)
}
